package domain

import (
	"time"
)

// UserProgress is a single logged set of work against an exercise.
// The exercise id is not verified against the catalog.
type UserProgress struct {
	ID         string    `bson:"_id" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	ExerciseID string    `bson:"exercise_id" json:"exercise_id"`
	Date       time.Time `bson:"date" json:"date"`
	Reps       *int      `bson:"reps,omitempty" json:"reps,omitempty"`
	Sets       *int      `bson:"sets,omitempty" json:"sets,omitempty"`
	HoldTime   *float64  `bson:"hold_time,omitempty" json:"hold_time,omitempty"` // seconds
	Weight     *float64  `bson:"weight,omitempty" json:"weight,omitempty"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
}

// WorkoutExercise is one line of a workout.
type WorkoutExercise struct {
	ExerciseID string `bson:"exercise_id" json:"exercise_id"`
	Sets       int    `bson:"sets" json:"sets"`
	Reps       int    `bson:"reps" json:"reps"`
}

// Workout is a named list of exercises created by a user.
type Workout struct {
	ID            string            `bson:"_id" json:"id"`
	UserID        string            `bson:"user_id" json:"user_id"`
	Name          string            `bson:"name" json:"name"`
	Exercises     []WorkoutExercise `bson:"exercises" json:"exercises"`
	ScheduledDate *time.Time        `bson:"scheduled_date,omitempty" json:"scheduled_date,omitempty"`
	CompletedDate *time.Time        `bson:"completed_date,omitempty" json:"completed_date,omitempty"`
	Duration      *int              `bson:"duration,omitempty" json:"duration,omitempty"` // minutes
	CreatedAt     time.Time         `bson:"created_at" json:"created_at"`
}

// ExerciseCount pairs an exercise id with how often it was logged.
type ExerciseCount struct {
	ExerciseID string `json:"exercise_id"`
	Count      int    `json:"count"`
}

// ProgressAnalytics summarizes a user's last 30 days of progress.
type ProgressAnalytics struct {
	TotalWorkouts          int             `json:"total_workouts"`
	UniqueWorkoutDays      int             `json:"unique_workout_days"`
	MostPracticedExercises []ExerciseCount `json:"most_practiced_exercises"`
	CurrentStreak          int             `json:"current_streak"`
	WeeklyProgress         int             `json:"weekly_progress"`
}
