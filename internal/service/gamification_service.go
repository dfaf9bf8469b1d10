package service

import (
	"context"
	"errors"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository"
)

var (
	ErrChallengeNotFound    = errors.New("challenge not found")
	ErrAlreadyParticipating = errors.New("already participating in this challenge")
)

const (
	leaderboardRealUsers = 10
	leaderboardSize      = 15
)

// placeholderAthletes fill the leaderboard while the user base is small.
var placeholderAthletes = []domain.LeaderboardEntry{
	{Username: "arjun_warrior", Points: 2850, University: "IIT Delhi", City: "New Delhi"},
	{Username: "priya_fitness", Points: 2720, University: "IIT Bombay", City: "Mumbai"},
	{Username: "raj_calisthenics", Points: 2645, University: "IIT Madras", City: "Chennai"},
	{Username: "kavya_strength", Points: 2580, University: "IIT Kanpur", City: "Kanpur"},
	{Username: "rohit_beast", Points: 2495, University: "IIT Kharagpur", City: "Kharagpur"},
	{Username: "sneha_moves", Points: 2420, University: "BITS Pilani", City: "Pilani"},
	{Username: "vikram_elite", Points: 2350, University: "IIT Roorkee", City: "Roorkee"},
	{Username: "ananya_power", Points: 2275, University: "Delhi University", City: "Delhi"},
	{Username: "karan_muscle", Points: 2190, University: "NIT Trichy", City: "Tiruchirappalli"},
	{Username: "riya_champion", Points: 2105, University: "Pune University", City: "Pune"},
	{Username: "aarav_legend", Points: 2020, University: "IIT Guwahati", City: "Guwahati"},
	{Username: "isha_ninja", Points: 1945, University: "Jadavpur University", City: "Kolkata"},
	{Username: "dev_titan", Points: 1870, University: "IIIT Hyderabad", City: "Hyderabad"},
	{Username: "pooja_strong", Points: 1795, University: "Manipal University", City: "Manipal"},
	{Username: "harsh_alpha", Points: 1720, University: "VIT Vellore", City: "Vellore"},
}

type GamificationService interface {
	Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
	ActiveChallenges(ctx context.Context) ([]domain.Challenge, error)
	JoinChallenge(ctx context.Context, challengeID, userID string) error
	Achievements(ctx context.Context) ([]domain.Achievement, error)
	UserAchievements(ctx context.Context, userID string) ([]domain.AwardedAchievement, error)
}

type gamificationService struct {
	userRepo        repository.UserRepository
	challengeRepo   repository.ChallengeRepository
	achievementRepo repository.AchievementRepository
}

func NewGamificationService(
	userRepo repository.UserRepository,
	challengeRepo repository.ChallengeRepository,
	achievementRepo repository.AchievementRepository,
) GamificationService {
	return &gamificationService{
		userRepo:        userRepo,
		challengeRepo:   challengeRepo,
		achievementRepo: achievementRepo,
	}
}

// Leaderboard lists the top users by points, then pads with placeholder
// athletes. Placeholders are appended after real users regardless of points.
func (s *gamificationService) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	users, err := s.userRepo.TopByPoints(ctx, leaderboardRealUsers)
	if err != nil {
		return nil, err
	}

	board := make([]domain.LeaderboardEntry, 0, leaderboardSize)
	for _, u := range users {
		board = append(board, domain.LeaderboardEntry{
			Rank:       len(board) + 1,
			Username:   u.Username,
			Points:     u.Points,
			University: u.University,
			City:       u.City,
		})
	}
	for _, p := range placeholderAthletes {
		if len(board) >= leaderboardSize {
			break
		}
		p.Rank = len(board) + 1
		p.Placeholder = true
		board = append(board, p)
	}
	return board, nil
}

func (s *gamificationService) ActiveChallenges(ctx context.Context) ([]domain.Challenge, error) {
	return s.challengeRepo.ListActive(ctx, nowFunc())
}

// JoinChallenge adds userID to the challenge's participants.
func (s *gamificationService) JoinChallenge(ctx context.Context, challengeID, userID string) error {
	challenge, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return mapNotFound(err, ErrChallengeNotFound)
	}
	if challenge.HasParticipant(userID) {
		return ErrAlreadyParticipating
	}
	return mapNotFound(s.challengeRepo.AddParticipant(ctx, challengeID, userID), ErrChallengeNotFound)
}

func (s *gamificationService) Achievements(ctx context.Context) ([]domain.Achievement, error) {
	return s.achievementRepo.List(ctx)
}

func (s *gamificationService) UserAchievements(ctx context.Context, userID string) ([]domain.AwardedAchievement, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err, ErrUserNotFound)
	}
	if user.Achievements == nil {
		return []domain.AwardedAchievement{}, nil
	}
	return user.Achievements, nil
}
