package mongo

import (
	"context"
	"errors"
	"regexp"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository"
)

const (
	mobilityCollectionName   = "mobility_exercises"
	assessmentCollectionName = "mobility_assessments"
)

type mongoMobilityRepository struct {
	collection *mongo.Collection
}

// NewMongoMobilityRepository creates a mobility catalog repository.
func NewMongoMobilityRepository(db *mongo.Database) repository.MobilityRepository {
	return &mongoMobilityRepository{collection: db.Collection(mobilityCollectionName)}
}

func (r *mongoMobilityRepository) List(ctx context.Context) ([]domain.MobilityExercise, error) {
	return findAll[domain.MobilityExercise](ctx, r.collection, bson.M{})
}

func (r *mongoMobilityRepository) GetByID(ctx context.Context, id string) (*domain.MobilityExercise, error) {
	return findByID[domain.MobilityExercise](ctx, r.collection, id)
}

func (r *mongoMobilityRepository) ListByDifficulty(ctx context.Context, difficulty string, limit int) ([]domain.MobilityExercise, error) {
	return findAll[domain.MobilityExercise](ctx, r.collection,
		bson.M{"difficulty": difficulty}, options.Find().SetLimit(int64(limit)))
}

// ListByArea matches area as a case-insensitive substring, so "hips" finds
// "Neck, Shoulders, Hips".
func (r *mongoMobilityRepository) ListByArea(ctx context.Context, area string, limit int) ([]domain.MobilityExercise, error) {
	filter := bson.M{"area": primitive.Regex{Pattern: regexp.QuoteMeta(area), Options: "i"}}
	return findAll[domain.MobilityExercise](ctx, r.collection, filter, options.Find().SetLimit(int64(limit)))
}

func (r *mongoMobilityRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.collection)
}

func (r *mongoMobilityRepository) InsertMany(ctx context.Context, items []domain.MobilityExercise) error {
	return insertMany(ctx, r.collection, items)
}

// EnsureMobilityIndexes creates indexes for the mobility catalog.
func EnsureMobilityIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "difficulty", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
	})
	return err
}

type mongoAssessmentRepository struct {
	collection *mongo.Collection
}

// NewMongoAssessmentRepository creates a mobility assessment repository.
func NewMongoAssessmentRepository(db *mongo.Database) repository.AssessmentRepository {
	return &mongoAssessmentRepository{collection: db.Collection(assessmentCollectionName)}
}

// Create inserts an assessment and returns its id.
func (r *mongoAssessmentRepository) Create(ctx context.Context, a *domain.MobilityAssessment) (string, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if _, err := r.collection.InsertOne(ctx, a); err != nil {
		return "", err
	}
	return a.ID, nil
}

func (r *mongoAssessmentRepository) ListByUser(ctx context.Context, userID string) ([]domain.MobilityAssessment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date_taken", Value: -1}})
	return findAll[domain.MobilityAssessment](ctx, r.collection, bson.M{"user_id": userID}, findOptions)
}

// LatestByUser returns the most recent assessment or repository.ErrNotFound.
func (r *mongoAssessmentRepository) LatestByUser(ctx context.Context, userID string) (*domain.MobilityAssessment, error) {
	var a domain.MobilityAssessment
	findOptions := options.FindOne().SetSort(bson.D{{Key: "date_taken", Value: -1}})
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}, findOptions).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// EnsureAssessmentIndexes creates the per-user history index.
func EnsureAssessmentIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date_taken", Value: -1}},
	})
	return err
}
