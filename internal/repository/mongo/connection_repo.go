package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository"
)

const connectionCollectionName = "user_connections"

// mongoConnectionRepository stores the follow graph as one document per edge.
type mongoConnectionRepository struct {
	collection *mongo.Collection
}

// NewMongoConnectionRepository creates the follow edge repository.
func NewMongoConnectionRepository(db *mongo.Database) repository.ConnectionRepository {
	return &mongoConnectionRepository{collection: db.Collection(connectionCollectionName)}
}

func edgeFilter(followerID, followingID string) bson.M {
	return bson.M{"follower_id": followerID, "following_id": followingID}
}

// Upsert creates the edge if it does not exist. Repeating it changes nothing.
func (r *mongoConnectionRepository) Upsert(ctx context.Context, followerID, followingID string, at time.Time) error {
	update := bson.M{"$setOnInsert": bson.M{
		"_id":          uuid.NewString(),
		"follower_id":  followerID,
		"following_id": followingID,
		"created_at":   at,
	}}
	_, err := r.collection.UpdateOne(ctx, edgeFilter(followerID, followingID), update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// Lost an upsert race against the unique index; the edge exists.
		return nil
	}
	return err
}

// Delete removes the edge. Deleting a missing edge is not an error.
func (r *mongoConnectionRepository) Delete(ctx context.Context, followerID, followingID string) error {
	_, err := r.collection.DeleteOne(ctx, edgeFilter(followerID, followingID))
	return err
}

func (r *mongoConnectionRepository) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	n, err := r.collection.CountDocuments(ctx, edgeFilter(followerID, followingID), options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *mongoConnectionRepository) FollowerIDs(ctx context.Context, userID string) ([]string, error) {
	edges, err := r.edges(ctx, bson.M{"following_id": userID})
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.FollowerID
	}
	return ids, nil
}

func (r *mongoConnectionRepository) FollowingIDs(ctx context.Context, userID string) ([]string, error) {
	edges, err := r.edges(ctx, bson.M{"follower_id": userID})
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.FollowingID
	}
	return ids, nil
}

func (r *mongoConnectionRepository) edges(ctx context.Context, filter bson.M) ([]domain.UserConnection, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	return findAll[domain.UserConnection](ctx, r.collection, filter, findOptions)
}

func (r *mongoConnectionRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"following_id": userID})
}

func (r *mongoConnectionRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"follower_id": userID})
}

// EnsureConnectionIndexes makes (follower_id, following_id) unique and indexes
// the reverse direction for follower lookups.
func EnsureConnectionIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "follower_id", Value: 1}, {Key: "following_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "following_id", Value: 1}},
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
