package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maroofsyyed/dominion1/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestProgressService_LogAwardsPoints(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	user := h.register(t, "kavya")

	first, err := h.progress.LogProgress(ctx, user.ID, ProgressInput{ExerciseID: "ex-1", Reps: intPtr(8), Sets: intPtr(3)})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, user.ID, first.UserID)
	assert.False(t, first.Date.IsZero())

	_, err = h.progress.LogProgress(ctx, user.ID, ProgressInput{ExerciseID: "ex-2", Reps: intPtr(5)})
	require.NoError(t, err)

	assert.Equal(t, 2*ProgressPoints, h.reload(t, user.ID).Points)

	all, err := h.progress.ListProgress(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	perExercise, err := h.progress.ListExerciseProgress(ctx, user.ID, "ex-1")
	require.NoError(t, err)
	require.Len(t, perExercise, 1)
	assert.Equal(t, first.ID, perExercise[0].ID)
}

func TestProgressService_Validation(t *testing.T) {
	h := newHarness(t)
	user := h.register(t, "rohit")
	_, err := h.progress.LogProgress(context.Background(), user.ID, ProgressInput{})
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, 0, h.reload(t, user.ID).Points)
}

func TestProgressService_PointsDrift(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	user := h.register(t, "sneha")

	boom := errors.New("increment failed")
	h.store.FailIncrement = boom

	_, err := h.progress.LogProgress(ctx, user.ID, ProgressInput{ExerciseID: "ex-1"})
	assert.ErrorIs(t, err, boom)

	h.store.FailIncrement = nil
	entries, err := h.progress.ListProgress(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "entry stays stored when the award fails")
	assert.Equal(t, 0, h.reload(t, user.ID).Points)
}

func TestProgressService_Analytics(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	user := h.register(t, "vikram")

	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	setClock(t, now)

	logAt := func(exerciseID string, ago time.Duration) {
		at := now.Add(-ago)
		_, err := h.progress.LogProgress(ctx, user.ID, ProgressInput{ExerciseID: exerciseID, Date: &at})
		require.NoError(t, err)
	}
	logAt("a-ex", time.Hour)
	logAt("a-ex", 2*time.Hour)
	logAt("b-ex", 3*24*time.Hour)
	logAt("c-ex", 10*24*time.Hour)
	logAt("a-ex", 40*24*time.Hour)

	stats, err := h.progress.Analytics(ctx, h.reload(t, user.ID))
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalWorkouts)
	assert.Equal(t, 3, stats.UniqueWorkoutDays)
	assert.Equal(t, 3, stats.WeeklyProgress)
	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Equal(t, []domain.ExerciseCount{
		{ExerciseID: "a-ex", Count: 2},
		{ExerciseID: "b-ex", Count: 1},
		{ExerciseID: "c-ex", Count: 1},
	}, stats.MostPracticedExercises)
}

func TestProgressService_AnalyticsEmpty(t *testing.T) {
	h := newHarness(t)
	user := h.register(t, "ananya")
	stats, err := h.progress.Analytics(context.Background(), user)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalWorkouts)
	assert.NotNil(t, stats.MostPracticedExercises)
	assert.Empty(t, stats.MostPracticedExercises)
}

func TestProgressService_Workouts(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	user := h.register(t, "karan")
	stepClock(t, time.Now().UTC())

	_, err := h.progress.CreateWorkout(ctx, user.ID, WorkoutInput{})
	assert.ErrorIs(t, err, ErrValidationFailed)

	first, err := h.progress.CreateWorkout(ctx, user.ID, WorkoutInput{Name: "Push day"})
	require.NoError(t, err)
	assert.NotNil(t, first.Exercises)

	second, err := h.progress.CreateWorkout(ctx, user.ID, WorkoutInput{
		Name:      "Pull day",
		Exercises: []domain.WorkoutExercise{{ExerciseID: "ex-1", Sets: 3, Reps: 8}},
	})
	require.NoError(t, err)

	list, err := h.progress.ListWorkouts(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")
	assert.Equal(t, first.ID, list[1].ID)

	other := h.register(t, "riya")
	none, err := h.progress.ListWorkouts(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}
