package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository"
)

const (
	analyticsWindow     = 30 * 24 * time.Hour
	weeklyWindow        = 7 * 24 * time.Hour
	mostPracticedLimit  = 5
	analyticsDateLayout = "2006-01-02"
)

// ProgressInput is one logged set. The exercise id is not checked against the
// catalog.
type ProgressInput struct {
	ExerciseID string
	Date       *time.Time
	Reps       *int
	Sets       *int
	HoldTime   *float64
	Weight     *float64
	Notes      string
}

// WorkoutInput describes a workout to create.
type WorkoutInput struct {
	Name          string
	Exercises     []domain.WorkoutExercise
	ScheduledDate *time.Time
	CompletedDate *time.Time
	Duration      *int
}

type ProgressService interface {
	LogProgress(ctx context.Context, userID string, in ProgressInput) (*domain.UserProgress, error)
	ListProgress(ctx context.Context, userID string) ([]domain.UserProgress, error)
	ListExerciseProgress(ctx context.Context, userID, exerciseID string) ([]domain.UserProgress, error)
	Analytics(ctx context.Context, user *domain.User) (*domain.ProgressAnalytics, error)

	CreateWorkout(ctx context.Context, userID string, in WorkoutInput) (*domain.Workout, error)
	ListWorkouts(ctx context.Context, userID string) ([]domain.Workout, error)
}

type progressService struct {
	progressRepo repository.ProgressRepository
	workoutRepo  repository.WorkoutRepository
	userRepo     repository.UserRepository
	logger       zerolog.Logger
}

// NewProgressService creates the progress log, workout and analytics service.
func NewProgressService(
	progressRepo repository.ProgressRepository,
	workoutRepo repository.WorkoutRepository,
	userRepo repository.UserRepository,
	logger zerolog.Logger,
) ProgressService {
	return &progressService{
		progressRepo: progressRepo,
		workoutRepo:  workoutRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// LogProgress stores the entry for userID and then awards ProgressPoints.
func (s *progressService) LogProgress(ctx context.Context, userID string, in ProgressInput) (*domain.UserProgress, error) {
	if in.ExerciseID == "" {
		return nil, fmt.Errorf("%w: exercise_id is required", ErrValidationFailed)
	}

	entry := &domain.UserProgress{
		UserID:     userID,
		ExerciseID: in.ExerciseID,
		Date:       nowFunc(),
		Reps:       in.Reps,
		Sets:       in.Sets,
		HoldTime:   in.HoldTime,
		Weight:     in.Weight,
		Notes:      in.Notes,
	}
	if in.Date != nil {
		entry.Date = in.Date.UTC()
	}

	if _, err := s.progressRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	if err := awardPoints(ctx, s.userRepo, s.logger, userID, ProgressPoints, entry.ID); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *progressService) ListProgress(ctx context.Context, userID string) ([]domain.UserProgress, error) {
	return s.progressRepo.ListByUser(ctx, userID)
}

func (s *progressService) ListExerciseProgress(ctx context.Context, userID, exerciseID string) ([]domain.UserProgress, error) {
	return s.progressRepo.ListByUserAndExercise(ctx, userID, exerciseID)
}

// Analytics summarizes the last 30 days. Days are bucketed by UTC date, and
// ties in the most-practiced list are broken by exercise id.
func (s *progressService) Analytics(ctx context.Context, user *domain.User) (*domain.ProgressAnalytics, error) {
	now := nowFunc()
	entries, err := s.progressRepo.ListByUserSince(ctx, user.ID, now.Add(-analyticsWindow))
	if err != nil {
		return nil, err
	}

	days := map[string]struct{}{}
	counts := map[string]int{}
	weekly := 0
	for _, p := range entries {
		days[p.Date.UTC().Format(analyticsDateLayout)] = struct{}{}
		counts[p.ExerciseID]++
		if now.Sub(p.Date) <= weeklyWindow {
			weekly++
		}
	}

	practiced := make([]domain.ExerciseCount, 0, len(counts))
	for id, n := range counts {
		practiced = append(practiced, domain.ExerciseCount{ExerciseID: id, Count: n})
	}
	sort.Slice(practiced, func(i, j int) bool {
		if practiced[i].Count != practiced[j].Count {
			return practiced[i].Count > practiced[j].Count
		}
		return practiced[i].ExerciseID < practiced[j].ExerciseID
	})
	if len(practiced) > mostPracticedLimit {
		practiced = practiced[:mostPracticedLimit]
	}

	return &domain.ProgressAnalytics{
		TotalWorkouts:          len(entries),
		UniqueWorkoutDays:      len(days),
		MostPracticedExercises: practiced,
		CurrentStreak:          user.StreakCount,
		WeeklyProgress:         weekly,
	}, nil
}

// CreateWorkout stores a workout owned by userID.
func (s *progressService) CreateWorkout(ctx context.Context, userID string, in WorkoutInput) (*domain.Workout, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: workout name is required", ErrValidationFailed)
	}
	workout := &domain.Workout{
		UserID:        userID,
		Name:          in.Name,
		Exercises:     in.Exercises,
		ScheduledDate: in.ScheduledDate,
		CompletedDate: in.CompletedDate,
		Duration:      in.Duration,
		CreatedAt:     nowFunc(),
	}
	if workout.Exercises == nil {
		workout.Exercises = []domain.WorkoutExercise{}
	}
	if _, err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *progressService) ListWorkouts(ctx context.Context, userID string) ([]domain.Workout, error) {
	return s.workoutRepo.ListByUser(ctx, userID)
}
