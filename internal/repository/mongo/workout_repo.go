package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository"
)

const (
	workoutCollectionName  = "workouts"
	progressCollectionName = "user_progress"
)

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository backed by MongoDB.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// Create inserts a new workout.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (string, error) {
	if workout.Name == "" || workout.UserID == "" {
		return "", errors.New("workout name and user ID are required")
	}
	if workout.ID == "" {
		workout.ID = uuid.NewString()
	}
	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = time.Now().UTC()
	}
	if workout.Exercises == nil {
		workout.Exercises = []domain.WorkoutExercise{}
	}

	if _, err := r.collection.InsertOne(ctx, workout); err != nil {
		return "", err
	}
	return workout.ID, nil
}

// ListByUser retrieves the user's workouts, newest first.
func (r *mongoWorkoutRepository) ListByUser(ctx context.Context, userID string) ([]domain.Workout, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return findAll[domain.Workout](ctx, r.collection, bson.M{"user_id": userID}, findOptions)
}

// EnsureWorkoutIndexes creates necessary indexes for the workouts collection.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}

// mongoProgressRepository implements repository.ProgressRepository
type mongoProgressRepository struct {
	collection *mongo.Collection
}

// NewMongoProgressRepository creates a progress log repository.
func NewMongoProgressRepository(db *mongo.Database) repository.ProgressRepository {
	return &mongoProgressRepository{collection: db.Collection(progressCollectionName)}
}

// Create inserts a progress entry.
func (r *mongoProgressRepository) Create(ctx context.Context, p *domain.UserProgress) (string, error) {
	if p.UserID == "" {
		return "", errors.New("progress user ID is required")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if _, err := r.collection.InsertOne(ctx, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

func (r *mongoProgressRepository) ListByUser(ctx context.Context, userID string) ([]domain.UserProgress, error) {
	return findAll[domain.UserProgress](ctx, r.collection, bson.M{"user_id": userID}, byDate(-1))
}

func (r *mongoProgressRepository) ListByUserAndExercise(ctx context.Context, userID, exerciseID string) ([]domain.UserProgress, error) {
	filter := bson.M{"user_id": userID, "exercise_id": exerciseID}
	return findAll[domain.UserProgress](ctx, r.collection, filter, byDate(1))
}

func (r *mongoProgressRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]domain.UserProgress, error) {
	filter := bson.M{"user_id": userID, "date": bson.M{"$gte": since}}
	return findAll[domain.UserProgress](ctx, r.collection, filter, byDate(1))
}

func (r *mongoProgressRepository) RecentByUser(ctx context.Context, userID string, limit int) ([]domain.UserProgress, error) {
	return findAll[domain.UserProgress](ctx, r.collection, bson.M{"user_id": userID}, byDate(-1).SetLimit(int64(limit)))
}

func byDate(direction int) *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "date", Value: direction}})
}

// EnsureProgressIndexes creates the history indexes for user_progress.
func EnsureProgressIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "exercise_id", Value: 1}, {Key: "date", Value: 1}}},
	})
	return err
}
