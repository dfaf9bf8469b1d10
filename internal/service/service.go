package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/maroofsyyed/dominion1/internal/repository"
)

// Errors shared by several services.
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrUserNotFound     = errors.New("user not found")
)

// Points awarded for tracked activity.
const (
	ProgressPoints   = 10
	AssessmentPoints = 50
)

// nowFunc is the service clock. Tests replace it.
var nowFunc = func() time.Time { return time.Now().UTC() }

// awardPoints adds points after the activity document has been written. The two
// writes are independent: when the increment fails the activity stays stored
// and the drift is logged.
func awardPoints(ctx context.Context, users repository.UserRepository, logger zerolog.Logger, userID string, points int, activityID string) error {
	if err := users.IncrementPoints(ctx, userID, points); err != nil {
		logger.Error().Err(err).
			Str("user_id", userID).
			Str("activity_id", activityID).
			Int("points", points).
			Msg("points award failed after activity was stored")
		return err
	}
	return nil
}

// mapNotFound converts a repository miss into the service's own sentinel.
func mapNotFound(err error, notFound error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound
	}
	return err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
