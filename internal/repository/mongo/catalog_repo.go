package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository"
)

const (
	productCollectionName     = "products"
	challengeCollectionName   = "challenges"
	achievementCollectionName = "achievements"
)

type mongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates the shop catalog repository.
func NewMongoProductRepository(db *mongo.Database) repository.ProductRepository {
	return &mongoProductRepository{collection: db.Collection(productCollectionName)}
}

func (r *mongoProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	return findAll[domain.Product](ctx, r.collection, bson.M{})
}

func (r *mongoProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return findByID[domain.Product](ctx, r.collection, id)
}

func (r *mongoProductRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.collection)
}

func (r *mongoProductRepository) InsertMany(ctx context.Context, products []domain.Product) error {
	return insertMany(ctx, r.collection, products)
}

type mongoChallengeRepository struct {
	collection *mongo.Collection
}

// NewMongoChallengeRepository creates the challenge repository.
func NewMongoChallengeRepository(db *mongo.Database) repository.ChallengeRepository {
	return &mongoChallengeRepository{collection: db.Collection(challengeCollectionName)}
}

// ListActive returns challenges with status active whose window contains now.
func (r *mongoChallengeRepository) ListActive(ctx context.Context, now time.Time) ([]domain.Challenge, error) {
	filter := bson.M{
		"status":     domain.ChallengeActive,
		"start_date": bson.M{"$lte": now},
		"end_date":   bson.M{"$gte": now},
	}
	return findAll[domain.Challenge](ctx, r.collection, filter)
}

func (r *mongoChallengeRepository) GetByID(ctx context.Context, id string) (*domain.Challenge, error) {
	return findByID[domain.Challenge](ctx, r.collection, id)
}

func (r *mongoChallengeRepository) AddParticipant(ctx context.Context, challengeID, userID string) error {
	return addToSet(ctx, r.collection, challengeID, "participants", userID)
}

func (r *mongoChallengeRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.collection)
}

func (r *mongoChallengeRepository) InsertMany(ctx context.Context, challenges []domain.Challenge) error {
	return insertMany(ctx, r.collection, challenges)
}

// EnsureChallengeIndexes creates the active-window index.
func EnsureChallengeIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "start_date", Value: 1}, {Key: "end_date", Value: 1}},
	})
	return err
}

type mongoAchievementRepository struct {
	collection *mongo.Collection
}

// NewMongoAchievementRepository creates the achievement catalog repository.
func NewMongoAchievementRepository(db *mongo.Database) repository.AchievementRepository {
	return &mongoAchievementRepository{collection: db.Collection(achievementCollectionName)}
}

func (r *mongoAchievementRepository) List(ctx context.Context) ([]domain.Achievement, error) {
	return findAll[domain.Achievement](ctx, r.collection, bson.M{})
}

func (r *mongoAchievementRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.collection)
}

func (r *mongoAchievementRepository) InsertMany(ctx context.Context, achievements []domain.Achievement) error {
	return insertMany(ctx, r.collection, achievements)
}
