package service

import (
	"context"
	"errors"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository"
)

var (
	ErrCannotFollowSelf = errors.New("cannot follow yourself")
	ErrProfilePrivate   = errors.New("profile is private")
)

const (
	searchLimit         = 20
	recentProgressLimit = 5
)

// UserSummary is the public projection used in search results.
type UserSummary struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	FullName     string   `json:"full_name"`
	ProfilePhoto string   `json:"profile_photo,omitempty"`
	Interests    []string `json:"interests"`
	FitnessLevel string   `json:"fitness_level"`
	Points       int      `json:"points"`
}

// Profile is a user's page as seen by a viewer.
type Profile struct {
	UserSummary
	Badges         []string                    `json:"badges"`
	Achievements   []domain.AwardedAchievement `json:"achievements"`
	StreakCount    int                         `json:"streak_count"`
	FollowersCount int64                       `json:"followers_count"`
	FollowingCount int64                       `json:"following_count"`
	IsFollowing    bool                        `json:"is_following"`
	RecentProgress []domain.UserProgress       `json:"recent_progress"`
}

type SocialService interface {
	Follow(ctx context.Context, followerID, targetID string) error
	Unfollow(ctx context.Context, followerID, targetID string) error
	Followers(ctx context.Context, userID string) ([]string, error)
	Following(ctx context.Context, userID string) ([]string, error)
	Search(ctx context.Context, viewerID, query string, interests []string) ([]UserSummary, error)
	Profile(ctx context.Context, viewerID, userID string) (*Profile, error)
}

type socialService struct {
	userRepo       repository.UserRepository
	connectionRepo repository.ConnectionRepository
	progressRepo   repository.ProgressRepository
}

func NewSocialService(
	userRepo repository.UserRepository,
	connectionRepo repository.ConnectionRepository,
	progressRepo repository.ProgressRepository,
) SocialService {
	return &socialService{
		userRepo:       userRepo,
		connectionRepo: connectionRepo,
		progressRepo:   progressRepo,
	}
}

// Follow records followerID -> targetID. Following twice is not an error.
func (s *socialService) Follow(ctx context.Context, followerID, targetID string) error {
	if followerID == targetID {
		return ErrCannotFollowSelf
	}
	if err := s.ensureUser(ctx, targetID); err != nil {
		return err
	}
	return s.connectionRepo.Upsert(ctx, followerID, targetID, nowFunc())
}

func (s *socialService) Unfollow(ctx context.Context, followerID, targetID string) error {
	return s.connectionRepo.Delete(ctx, followerID, targetID)
}

func (s *socialService) Followers(ctx context.Context, userID string) ([]string, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.connectionRepo.FollowerIDs(ctx, userID)
}

func (s *socialService) Following(ctx context.Context, userID string) ([]string, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.connectionRepo.FollowingIDs(ctx, userID)
}

func (s *socialService) Search(ctx context.Context, viewerID, query string, interests []string) ([]UserSummary, error) {
	users, err := s.userRepo.Search(ctx, repository.UserSearch{
		Query:     query,
		Interests: interests,
		ExcludeID: viewerID,
		Limit:     searchLimit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]UserSummary, 0, len(users))
	for i := range users {
		out = append(out, summarize(&users[i]))
	}
	return out, nil
}

// Profile builds userID's page for viewerID. Progress is included only when
// the viewer is the owner or the owner's progress is public.
func (s *socialService) Profile(ctx context.Context, viewerID, userID string) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err, ErrUserNotFound)
	}
	if !user.CanViewProfile(viewerID) {
		return nil, ErrProfilePrivate
	}

	followers, err := s.connectionRepo.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.connectionRepo.CountFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	isFollowing, err := s.connectionRepo.Exists(ctx, viewerID, userID)
	if err != nil {
		return nil, err
	}

	recent := []domain.UserProgress{}
	if user.CanViewProgress(viewerID) {
		recent, err = s.progressRepo.RecentByUser(ctx, userID, recentProgressLimit)
		if err != nil {
			return nil, err
		}
	}

	achievements := user.Achievements
	if achievements == nil {
		achievements = []domain.AwardedAchievement{}
	}
	return &Profile{
		UserSummary:    summarize(user),
		Badges:         nonNil(user.Badges),
		Achievements:   achievements,
		StreakCount:    user.StreakCount,
		FollowersCount: followers,
		FollowingCount: following,
		IsFollowing:    isFollowing,
		RecentProgress: recent,
	}, nil
}

func (s *socialService) ensureUser(ctx context.Context, userID string) error {
	_, err := s.userRepo.GetByID(ctx, userID)
	return mapNotFound(err, ErrUserNotFound)
}

func summarize(u *domain.User) UserSummary {
	return UserSummary{
		ID:           u.ID,
		Username:     u.Username,
		FullName:     u.FullName,
		ProfilePhoto: u.ProfilePhoto,
		Interests:    nonNil(u.Interests),
		FitnessLevel: u.FitnessLevel,
		Points:       u.Points,
	}
}
