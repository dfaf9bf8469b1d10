package repository

import (
	"context" // Standard for request-scoped deadlines, cancellation signals, etc.
	"time"

	"github.com/maroofsyyed/dominion1/internal/domain"
)

// Error constants for the repository layer. Implementations must return these
// so services can match them with errors.Is.
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserSearch describes a people search.
type UserSearch struct {
	Query     string   // Matched case-insensitively against username and full name
	Interests []string // Any overlap matches
	ExcludeID string
	Limit     int
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (string, error) // ErrDuplicate when the email is taken
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	IncrementPoints(ctx context.Context, id string, delta int) error
	SetProfilePhoto(ctx context.Context, id, photo string) error
	Search(ctx context.Context, search UserSearch) ([]domain.User, error)
	TopByPoints(ctx context.Context, limit int) ([]domain.User, error)
}

// ExerciseRepository defines the interface for the progression catalog.
type ExerciseRepository interface {
	List(ctx context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error) // Ordered by progression_order
	GetByID(ctx context.Context, id string) (*domain.Exercise, error)
	Pillars(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, exercises []domain.Exercise) error
}

// MobilityRepository defines the interface for the mobility catalog.
type MobilityRepository interface {
	List(ctx context.Context) ([]domain.MobilityExercise, error)
	GetByID(ctx context.Context, id string) (*domain.MobilityExercise, error)
	ListByDifficulty(ctx context.Context, difficulty string, limit int) ([]domain.MobilityExercise, error)
	ListByArea(ctx context.Context, area string, limit int) ([]domain.MobilityExercise, error) // Case-insensitive substring match
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, items []domain.MobilityExercise) error
}

// AssessmentRepository stores mobility assessments.
type AssessmentRepository interface {
	Create(ctx context.Context, a *domain.MobilityAssessment) (string, error)
	ListByUser(ctx context.Context, userID string) ([]domain.MobilityAssessment, error) // Newest first
	LatestByUser(ctx context.Context, userID string) (*domain.MobilityAssessment, error)
}

// ProgressRepository stores progress entries.
type ProgressRepository interface {
	Create(ctx context.Context, p *domain.UserProgress) (string, error)
	ListByUser(ctx context.Context, userID string) ([]domain.UserProgress, error)                      // Newest first
	ListByUserAndExercise(ctx context.Context, userID, exerciseID string) ([]domain.UserProgress, error) // Oldest first
	ListByUserSince(ctx context.Context, userID string, since time.Time) ([]domain.UserProgress, error) // Oldest first
	RecentByUser(ctx context.Context, userID string, limit int) ([]domain.UserProgress, error)          // Newest first
}

// WorkoutRepository defines the interface for interacting with workout data.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (string, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Workout, error) // Newest first
}

// CommunityRepository stores communities.
type CommunityRepository interface {
	List(ctx context.Context) ([]domain.Community, error)
	AddMember(ctx context.Context, communityID, userID string) error // ErrNotFound for an unknown community
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, communities []domain.Community) error
}

// ChannelRepository stores chat channels.
type ChannelRepository interface {
	List(ctx context.Context) ([]domain.ChatChannel, error)
	AddMember(ctx context.Context, channelID, userID string) error
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, channels []domain.ChatChannel) error
}

// MessageRepository stores chat messages keyed by room id.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) (string, error)
	ListByRoom(ctx context.Context, roomID string, limit int) ([]domain.Message, error) // Newest first
}

// ProductRepository exposes the shop catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, products []domain.Product) error
}

// ChallengeRepository stores challenges.
type ChallengeRepository interface {
	ListActive(ctx context.Context, now time.Time) ([]domain.Challenge, error)
	GetByID(ctx context.Context, id string) (*domain.Challenge, error)
	AddParticipant(ctx context.Context, challengeID, userID string) error
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, challenges []domain.Challenge) error
}

// AchievementRepository exposes the achievement catalog.
type AchievementRepository interface {
	List(ctx context.Context) ([]domain.Achievement, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, achievements []domain.Achievement) error
}

// ConnectionRepository stores follow edges.
type ConnectionRepository interface {
	Upsert(ctx context.Context, followerID, followingID string, at time.Time) error // Idempotent
	Delete(ctx context.Context, followerID, followingID string) error
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
	FollowerIDs(ctx context.Context, userID string) ([]string, error)
	FollowingIDs(ctx context.Context, userID string) ([]string, error)
	CountFollowers(ctx context.Context, userID string) (int64, error)
	CountFollowing(ctx context.Context, userID string) (int64, error)
}
