package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/maroofsyyed/dominion1/internal/repository"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// ConnectDB establishes a connection to MongoDB using the provided URI.
// It returns the mongo.Client which can be used to access databases and collections.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// Connect succeeds lazily, so ping the primary to surface a dead server now.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}
	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureRequiredIndexes creates the indexes that enforce invariants, the unique
// user email. Registration is only safe once this has returned nil.
func EnsureRequiredIndexes(ctx context.Context, db *mongo.Database) error {
	if err := EnsureUserIndexes(ctx, db.Collection(userCollectionName)); err != nil {
		return fmt.Errorf("%s: %w", userCollectionName, err)
	}
	return nil
}

// EnsureIndexes creates the indexes for every collection. It keeps going after
// a failure and returns the errors joined.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	steps := []struct {
		collection string
		ensure     func(context.Context, *mongo.Collection) error
	}{
		{userCollectionName, EnsureUserIndexes},
		{exerciseCollectionName, EnsureExerciseIndexes},
		{mobilityCollectionName, EnsureMobilityIndexes},
		{assessmentCollectionName, EnsureAssessmentIndexes},
		{progressCollectionName, EnsureProgressIndexes},
		{workoutCollectionName, EnsureWorkoutIndexes},
		{messageCollectionName, EnsureMessageIndexes},
		{challengeCollectionName, EnsureChallengeIndexes},
		{connectionCollectionName, EnsureConnectionIndexes},
	}

	var errs []error
	for _, s := range steps {
		if err := s.ensure(ctx, db.Collection(s.collection)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.collection, err))
		}
	}
	return errors.Join(errs...)
}

// findAll runs a query and decodes every document. It never returns a nil slice.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx) // Ensure cursor is closed

	items := []T{}
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// findByID decodes the document with the given _id, mapping a miss to
// repository.ErrNotFound.
func findByID[T any](ctx context.Context, coll *mongo.Collection, id string) (*T, error) {
	var item T
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// insertMany bulk-inserts seed documents.
func insertMany[T any](ctx context.Context, coll *mongo.Collection, items []T) error {
	if len(items) == 0 {
		return nil
	}
	docs := make([]interface{}, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	_, err := coll.InsertMany(ctx, docs)
	return err
}

// addToSet adds value to an array field of the document with the given _id.
func addToSet(ctx context.Context, coll *mongo.Collection, id, field, value string) error {
	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$addToSet": bson.M{field: value}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func countAll(ctx context.Context, coll *mongo.Collection) (int64, error) {
	return coll.CountDocuments(ctx, bson.M{})
}
