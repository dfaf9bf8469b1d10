package domain

import "time"

// Challenge statuses.
const (
	ChallengeActive    = "active"
	ChallengeCompleted = "completed"
	ChallengeCancelled = "cancelled"
)

// Challenge is a time-boxed goal users can join.
type Challenge struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Description  string    `bson:"description" json:"description"`
	Type         string    `bson:"type" json:"type"`           // weekly, monthly, community
	GoalType     string    `bson:"goal_type" json:"goal_type"` // reps, time, consistency
	GoalValue    int       `bson:"goal_value" json:"goal_value"`
	StartDate    time.Time `bson:"start_date" json:"start_date"`
	EndDate      time.Time `bson:"end_date" json:"end_date"`
	Participants []string  `bson:"participants" json:"participants"`
	Rewards      []string  `bson:"rewards" json:"rewards"`
	CreatedBy    string    `bson:"created_by" json:"created_by"`
	Status       string    `bson:"status" json:"status"`
}

// IsRunning reports whether the challenge is active at t.
func (c *Challenge) IsRunning(t time.Time) bool {
	return c.Status == ChallengeActive && !t.Before(c.StartDate) && !t.After(c.EndDate)
}

// HasParticipant reports whether userID already joined.
func (c *Challenge) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// Achievement describes an unlockable badge. Criteria are informational.
type Achievement struct {
	ID           string         `bson:"_id" json:"id"`
	Name         string         `bson:"name" json:"name"`
	Description  string         `bson:"description" json:"description"`
	Category     string         `bson:"category" json:"category"` // strength, consistency, social, mobility
	Criteria     map[string]int `bson:"criteria" json:"criteria"`
	BadgeIcon    string         `bson:"badge_icon" json:"badge_icon"`
	PointsReward int            `bson:"points_reward" json:"points_reward"`
	Rarity       string         `bson:"rarity" json:"rarity"` // common, rare, epic, legendary
}

// LeaderboardEntry is one row of the leaderboard.
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	Username    string `json:"username"`
	Points      int    `json:"points"`
	University  string `json:"university"`
	City        string `json:"city"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

// Product is a shop catalog item.
type Product struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	Category    string    `bson:"category" json:"category"`
	ImageURL    string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	InStock     bool      `bson:"in_stock" json:"in_stock"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
