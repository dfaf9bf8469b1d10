package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository"
)

const (
	maxAssessmentScore      = 3
	generalExerciseLimit    = 5
	perConcernLimit         = 3
	recommendedExerciseCap  = 6
	assessmentPromptMessage = "Complete a mobility assessment to get personalized recommendations"
)

// AssessmentInput is a self-scored movement screen submitted by a user.
type AssessmentInput struct {
	AssessmentType  string
	Score           int
	Notes           string
	AreasOfConcern  []string
	Recommendations []string
	DateTaken       *time.Time
}

// Recommendations is either a general beginner set (no assessment yet) or a
// set chosen from the latest assessment's areas of concern.
type Recommendations struct {
	AssessmentBased bool
	Message         string
	Exercises       []domain.MobilityExercise
}

type MobilityService interface {
	ListMobilityExercises(ctx context.Context) ([]domain.MobilityExercise, error)
	GetMobilityExercise(ctx context.Context, id string) (*domain.MobilityExercise, error)
	CreateAssessment(ctx context.Context, userID string, in AssessmentInput) (*domain.MobilityAssessment, error)
	ListAssessments(ctx context.Context, userID string) ([]domain.MobilityAssessment, error)
	// LatestAssessment returns nil without error when the user has none.
	LatestAssessment(ctx context.Context, userID string) (*domain.MobilityAssessment, error)
	Recommend(ctx context.Context, userID string) (*Recommendations, error)
}

type mobilityService struct {
	mobilityRepo   repository.MobilityRepository
	assessmentRepo repository.AssessmentRepository
	userRepo       repository.UserRepository
	logger         zerolog.Logger
}

// NewMobilityService creates the mobility catalog and assessment service.
func NewMobilityService(
	mobilityRepo repository.MobilityRepository,
	assessmentRepo repository.AssessmentRepository,
	userRepo repository.UserRepository,
	logger zerolog.Logger,
) MobilityService {
	return &mobilityService{
		mobilityRepo:   mobilityRepo,
		assessmentRepo: assessmentRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (s *mobilityService) ListMobilityExercises(ctx context.Context) ([]domain.MobilityExercise, error) {
	return s.mobilityRepo.List(ctx)
}

func (s *mobilityService) GetMobilityExercise(ctx context.Context, id string) (*domain.MobilityExercise, error) {
	m, err := s.mobilityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrMobilityExerciseNotFound)
	}
	return m, nil
}

// CreateAssessment stores the assessment and awards AssessmentPoints.
func (s *mobilityService) CreateAssessment(ctx context.Context, userID string, in AssessmentInput) (*domain.MobilityAssessment, error) {
	if in.AssessmentType == "" {
		return nil, fmt.Errorf("%w: assessment_type is required", ErrValidationFailed)
	}
	if in.Score < 0 || in.Score > maxAssessmentScore {
		return nil, fmt.Errorf("%w: score must be between 0 and %d", ErrValidationFailed, maxAssessmentScore)
	}

	a := &domain.MobilityAssessment{
		UserID:          userID,
		AssessmentType:  in.AssessmentType,
		Score:           in.Score,
		Notes:           in.Notes,
		AreasOfConcern:  nonNil(in.AreasOfConcern),
		Recommendations: nonNil(in.Recommendations),
		DateTaken:       nowFunc(),
	}
	if in.DateTaken != nil {
		a.DateTaken = in.DateTaken.UTC()
	}

	if _, err := s.assessmentRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	if err := awardPoints(ctx, s.userRepo, s.logger, userID, AssessmentPoints, a.ID); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *mobilityService) ListAssessments(ctx context.Context, userID string) ([]domain.MobilityAssessment, error) {
	return s.assessmentRepo.ListByUser(ctx, userID)
}

func (s *mobilityService) LatestAssessment(ctx context.Context, userID string) (*domain.MobilityAssessment, error) {
	a, err := s.assessmentRepo.LatestByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return a, err
}

// Recommend picks up to three entries per area of concern, in the order the
// concerns were recorded, and keeps the first six. The same entry may appear
// more than once when it matches several concerns.
func (s *mobilityService) Recommend(ctx context.Context, userID string) (*Recommendations, error) {
	latest, err := s.LatestAssessment(ctx, userID)
	if err != nil {
		return nil, err
	}

	if latest == nil {
		general, err := s.mobilityRepo.ListByDifficulty(ctx, domain.LevelBeginner, generalExerciseLimit)
		if err != nil {
			return nil, err
		}
		return &Recommendations{Message: assessmentPromptMessage, Exercises: general}, nil
	}

	picked := []domain.MobilityExercise{}
	for _, area := range latest.AreasOfConcern {
		if len(picked) >= recommendedExerciseCap {
			break
		}
		matches, err := s.mobilityRepo.ListByArea(ctx, area, perConcernLimit)
		if err != nil {
			return nil, err
		}
		picked = append(picked, matches...)
	}
	if len(picked) > recommendedExerciseCap {
		picked = picked[:recommendedExerciseCap]
	}
	return &Recommendations{AssessmentBased: true, Exercises: picked}, nil
}
