package mongo

import (
	"context"
	"errors" // Import the standard errors package
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository" // Import the repository interfaces package
)

const userCollectionName = "users"

// mongoUserRepository implements the repository.UserRepository interface using MongoDB.
type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new instance of mongoUserRepository.
// It expects a connected *mongo.Database instance.
func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{
		collection: db.Collection(userCollectionName),
	}
}

// Create inserts a new user into the database.
func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) (string, error) {
	if user.Email == "" || user.PasswordHash == "" {
		return "", errors.New("user email and password hash are required")
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		// The unique email index turns a concurrent duplicate into this error
		if mongo.IsDuplicateKeyError(err) {
			return "", repository.ErrDuplicate
		}
		return "", err
	}
	return user.ID, nil
}

// GetByEmail retrieves a user by their email address.
func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// GetByID retrieves a user by id.
func (r *mongoUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// IncrementPoints adds delta to the user's points with a single $inc.
func (r *mongoUserRepository) IncrementPoints(ctx context.Context, id string, delta int) error {
	update := bson.M{
		"$inc": bson.M{"points": delta},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SetProfilePhoto stores a photo URL (or data URL) on the user.
func (r *mongoUserRepository) SetProfilePhoto(ctx context.Context, id, photo string) error {
	update := bson.M{"$set": bson.M{"profile_photo": photo, "updated_at": time.Now().UTC()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Search finds users by name fragment and/or shared interests.
// The query text is escaped so it is matched literally.
func (r *mongoUserRepository) Search(ctx context.Context, search repository.UserSearch) ([]domain.User, error) {
	filter := bson.M{}
	if search.Query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search.Query), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"username": pattern},
			bson.M{"full_name": pattern},
		}
	}
	if len(search.Interests) > 0 {
		filter["interests"] = bson.M{"$in": search.Interests}
	}
	if search.ExcludeID != "" {
		filter["_id"] = bson.M{"$ne": search.ExcludeID}
	}

	findOptions := options.Find()
	if search.Limit > 0 {
		findOptions.SetLimit(int64(search.Limit))
	}
	return findAll[domain.User](ctx, r.collection, filter, findOptions)
}

// TopByPoints returns the highest scoring users, best first.
func (r *mongoUserRepository) TopByPoints(ctx context.Context, limit int) ([]domain.User, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "points", Value: -1}, {Key: "created_at", Value: 1}}).
		SetLimit(int64(limit))
	return findAll[domain.User](ctx, r.collection, bson.M{}, findOptions)
}

// EnsureUserIndexes creates necessary indexes for the users collection.
// Call this once during application startup.
func EnsureUserIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}}, // Create index on email
			Options: options.Index().SetUnique(true),  // Make email unique
		},
		{
			Keys:    bson.D{{Key: "points", Value: -1}}, // Leaderboard
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "interests", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
