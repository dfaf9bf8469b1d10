package service

import (
	"context"
	"errors"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository" // Import repository package
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound         = errors.New("exercise not found")
	ErrMobilityExerciseNotFound = errors.New("mobility exercise not found")
)

// --- Service Interface ---
type ExerciseService interface {
	ListExercises(ctx context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error)
	GetExerciseByID(ctx context.Context, exerciseID string) (*domain.Exercise, error)
	ListPillars(ctx context.Context) ([]string, error)
}

// --- Service Implementation ---

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
	}
}

// ListExercises filters by exact pillar and skill level; empty fields match all.
func (s *exerciseService) ListExercises(ctx context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx, filter)
}

// GetExerciseByID retrieves a single exercise by its ID.
func (s *exerciseService) GetExerciseByID(ctx context.Context, exerciseID string) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		return nil, mapNotFound(err, ErrExerciseNotFound)
	}
	return exercise, nil
}

func (s *exerciseService) ListPillars(ctx context.Context) ([]string, error) {
	return s.exerciseRepo.Pillars(ctx)
}
