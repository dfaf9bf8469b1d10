package mongo

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository"
)

const (
	communityCollectionName = "communities"
	channelCollectionName   = "chat_channels"
	messageCollectionName   = "messages"
)

type mongoCommunityRepository struct {
	collection *mongo.Collection
}

// NewMongoCommunityRepository creates a community repository.
func NewMongoCommunityRepository(db *mongo.Database) repository.CommunityRepository {
	return &mongoCommunityRepository{collection: db.Collection(communityCollectionName)}
}

func (r *mongoCommunityRepository) List(ctx context.Context) ([]domain.Community, error) {
	return findAll[domain.Community](ctx, r.collection, bson.M{})
}

// AddMember is idempotent; it returns repository.ErrNotFound for an unknown id.
func (r *mongoCommunityRepository) AddMember(ctx context.Context, communityID, userID string) error {
	return addToSet(ctx, r.collection, communityID, "members", userID)
}

func (r *mongoCommunityRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.collection)
}

func (r *mongoCommunityRepository) InsertMany(ctx context.Context, communities []domain.Community) error {
	return insertMany(ctx, r.collection, communities)
}

type mongoChannelRepository struct {
	collection *mongo.Collection
}

// NewMongoChannelRepository creates a chat channel repository.
func NewMongoChannelRepository(db *mongo.Database) repository.ChannelRepository {
	return &mongoChannelRepository{collection: db.Collection(channelCollectionName)}
}

func (r *mongoChannelRepository) List(ctx context.Context) ([]domain.ChatChannel, error) {
	return findAll[domain.ChatChannel](ctx, r.collection, bson.M{})
}

func (r *mongoChannelRepository) AddMember(ctx context.Context, channelID, userID string) error {
	return addToSet(ctx, r.collection, channelID, "members", userID)
}

func (r *mongoChannelRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.collection)
}

func (r *mongoChannelRepository) InsertMany(ctx context.Context, channels []domain.ChatChannel) error {
	return insertMany(ctx, r.collection, channels)
}

type mongoMessageRepository struct {
	collection *mongo.Collection
}

// NewMongoMessageRepository creates the chat message store.
func NewMongoMessageRepository(db *mongo.Database) repository.MessageRepository {
	return &mongoMessageRepository{collection: db.Collection(messageCollectionName)}
}

func (r *mongoMessageRepository) Create(ctx context.Context, msg *domain.Message) (string, error) {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if _, err := r.collection.InsertOne(ctx, msg); err != nil {
		return "", err
	}
	return msg.ID, nil
}

// ListByRoom returns the latest messages of a room, newest first.
func (r *mongoMessageRepository) ListByRoom(ctx context.Context, roomID string, limit int) ([]domain.Message, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
	return findAll[domain.Message](ctx, r.collection, bson.M{"community_id": roomID}, findOptions)
}

// EnsureMessageIndexes creates the room history index.
func EnsureMessageIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "community_id", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}
