package mongo

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// List returns exercises matching the filter ordered by progression_order.
func (r *mongoExerciseRepository) List(ctx context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error) {
	query := bson.M{}
	if filter.Pillar != "" {
		query["pillar"] = filter.Pillar
	}
	if filter.SkillLevel != "" {
		query["skill_level"] = filter.SkillLevel
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "progression_order", Value: 1}})
	return findAll[domain.Exercise](ctx, r.collection, query, findOptions)
}

// GetByID retrieves an exercise by its ID.
func (r *mongoExerciseRepository) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	return findByID[domain.Exercise](ctx, r.collection, id)
}

// Pillars returns the distinct pillar names, sorted.
func (r *mongoExerciseRepository) Pillars(ctx context.Context) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "pillar", bson.M{})
	if err != nil {
		return nil, err
	}
	pillars := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			pillars = append(pillars, s)
		}
	}
	sort.Strings(pillars)
	return pillars, nil
}

func (r *mongoExerciseRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.collection)
}

func (r *mongoExerciseRepository) InsertMany(ctx context.Context, exercises []domain.Exercise) error {
	return insertMany(ctx, r.collection, exercises)
}

// EnsureExerciseIndexes creates indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "pillar", Value: 1}, {Key: "skill_level", Value: 1}, {Key: "progression_order", Value: 1}},
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
