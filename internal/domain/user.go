package domain

import (
	"time"
)

// Skill levels shared by users and exercises.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelElite        = "Elite"
)

// PrivacySettings controls what other users can see on a profile.
type PrivacySettings struct {
	ProfilePublic  bool `bson:"profile_public" json:"profile_public"`
	ProgressPublic bool `bson:"progress_public" json:"progress_public"`
}

// DefaultPrivacy is applied to newly registered users.
func DefaultPrivacy() PrivacySettings {
	return PrivacySettings{ProfilePublic: true, ProgressPublic: true}
}

// AwardedAchievement is an achievement recorded on a user's document.
type AwardedAchievement struct {
	AchievementID string    `bson:"achievement_id" json:"achievement_id"`
	Name          string    `bson:"name" json:"name"`
	BadgeIcon     string    `bson:"badge_icon,omitempty" json:"badge_icon,omitempty"`
	AwardedAt     time.Time `bson:"awarded_at" json:"awarded_at"`
}

// User represents an athlete account.
// Follower and following lists are not stored here; they are derived from
// the user_connections collection.
type User struct {
	ID           string               `bson:"_id" json:"id"`
	Username     string               `bson:"username" json:"username"`
	Email        string               `bson:"email" json:"email"`    // Unique
	PasswordHash string               `bson:"password_hash" json:"-"` // Never expose this via JSON
	FullName     string               `bson:"full_name" json:"full_name"`
	Age          *int                 `bson:"age,omitempty" json:"age,omitempty"`
	Height       *float64             `bson:"height,omitempty" json:"height,omitempty"`
	Weight       *float64             `bson:"weight,omitempty" json:"weight,omitempty"`
	University   string               `bson:"university,omitempty" json:"university,omitempty"`
	City         string               `bson:"city,omitempty" json:"city,omitempty"`
	ProfilePhoto string               `bson:"profile_photo,omitempty" json:"profile_photo,omitempty"`
	Goals        []string             `bson:"goals" json:"goals"`
	Interests    []string             `bson:"interests" json:"interests"`
	FitnessLevel string               `bson:"fitness_level" json:"fitness_level"`
	Points       int                  `bson:"points" json:"points"`
	Badges       []string             `bson:"badges" json:"badges"`
	Achievements []AwardedAchievement `bson:"achievements" json:"achievements"`
	StreakCount  int                  `bson:"streak_count" json:"streak_count"`
	LastActivity time.Time            `bson:"last_activity" json:"last_activity"`
	Privacy      PrivacySettings      `bson:"privacy_settings" json:"privacy_settings"`
	CreatedAt    time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time            `bson:"updated_at" json:"updated_at"`
}

// CanViewProfile reports whether viewerID may see u's profile.
func (u *User) CanViewProfile(viewerID string) bool {
	return u.ID == viewerID || u.Privacy.ProfilePublic
}

// CanViewProgress reports whether viewerID may see u's progress entries.
func (u *User) CanViewProgress(viewerID string) bool {
	return u.ID == viewerID || u.Privacy.ProgressPublic
}

// UserConnection is a follow edge. It is the single source of truth for the
// social graph.
type UserConnection struct {
	ID          string    `bson:"_id" json:"id"`
	FollowerID  string    `bson:"follower_id" json:"follower_id"`
	FollowingID string    `bson:"following_id" json:"following_id"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
