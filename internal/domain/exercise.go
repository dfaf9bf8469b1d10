// internal/domain/exercise.go
package domain

import (
	"time"
)

// Exercise is an entry in the bodyweight progression catalog.
type Exercise struct {
	ID               string    `bson:"_id" json:"id"`
	Name             string    `bson:"name" json:"name"`
	Pillar           string    `bson:"pillar" json:"pillar"`           // e.g., "Horizontal Pull", "Legs"
	SkillLevel       string    `bson:"skill_level" json:"skill_level"` // Beginner, Intermediate, Advanced, Elite
	Description      string    `bson:"description" json:"description"`
	Instructions     []string  `bson:"instructions" json:"instructions"`
	CommonMistakes   []string  `bson:"common_mistakes" json:"common_mistakes"`
	VideoURL         string    `bson:"video_url,omitempty" json:"video_url,omitempty"`
	Prerequisites    []string  `bson:"prerequisites" json:"prerequisites"`
	ProgressionOrder int       `bson:"progression_order" json:"progression_order"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}

// ExerciseFilter narrows an exercise listing. Empty fields match everything.
type ExerciseFilter struct {
	Pillar     string
	SkillLevel string
}

// Mobility entry types.
const (
	MobilityTypeAssessment = "assessment"
	MobilityTypeRoutine    = "routine"
	MobilityTypeExercise   = "exercise"
)

// MobilityExercise covers assessments, routines and single stretches.
type MobilityExercise struct {
	ID                string            `bson:"_id" json:"id"`
	Name              string            `bson:"name" json:"name"`
	Area              string            `bson:"area" json:"area"` // e.g., "Hips", "Neck, Shoulders, Hips"
	Type              string            `bson:"type" json:"type"`
	Difficulty        string            `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	Description       string            `bson:"description" json:"description"`
	Instructions      []string          `bson:"instructions" json:"instructions"`
	Benefits          []string          `bson:"benefits" json:"benefits"`
	Targets           []string          `bson:"targets,omitempty" json:"targets,omitempty"`
	CommonMistakes    []string          `bson:"common_mistakes,omitempty" json:"common_mistakes,omitempty"`
	Progressions      []string          `bson:"progressions,omitempty" json:"progressions,omitempty"`
	Contraindications []string          `bson:"contraindications,omitempty" json:"contraindications,omitempty"`
	Exercises         []string          `bson:"exercises,omitempty" json:"exercises,omitempty"` // Routine steps
	WhatToLookFor     []string          `bson:"what_to_look_for,omitempty" json:"what_to_look_for,omitempty"`
	Scoring           map[string]string `bson:"scoring,omitempty" json:"scoring,omitempty"`
	HoldTime          string            `bson:"hold_time,omitempty" json:"hold_time,omitempty"`
	Duration          string            `bson:"duration,omitempty" json:"duration,omitempty"`
	BestTime          string            `bson:"best_time,omitempty" json:"best_time,omitempty"`
	VideoURL          string            `bson:"video_url,omitempty" json:"video_url,omitempty"`
	CreatedAt         time.Time         `bson:"created_at" json:"created_at"`
}

// MobilityAssessment is a self-scored movement screen. Score is 0-3.
type MobilityAssessment struct {
	ID              string    `bson:"_id" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	AssessmentType  string    `bson:"assessment_type" json:"assessment_type"` // overhead_squat, shoulder_reach, ...
	Score           int       `bson:"score" json:"score"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	AreasOfConcern  []string  `bson:"areas_of_concern" json:"areas_of_concern"`
	Recommendations []string  `bson:"recommendations" json:"recommendations"`
	DateTaken       time.Time `bson:"date_taken" json:"date_taken"`
}
