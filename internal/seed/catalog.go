package seed

import (
	"time"

	"github.com/maroofsyyed/dominion1/internal/domain"
)

// Products returns the shop catalog.
func Products() []domain.Product {
	return []domain.Product{
		{Name: "Parallettes", Description: "Wooden parallette bars for handstand and L-sit training", Price: 89.99, Category: "Equipment", InStock: true},
		{Name: "Gymnastics Rings", Description: "Professional gymnastics rings with straps", Price: 59.99, Category: "Equipment", InStock: true},
		{Name: "Resistance Bands Set", Description: "Complete set of resistance bands for strength training", Price: 39.99, Category: "Equipment", InStock: true},
		{Name: "Pull-up Bar", Description: "Doorway pull-up bar for home workouts", Price: 29.99, Category: "Equipment", InStock: true},
		{Name: "Yoga Mat", Description: "High-quality yoga mat for floor exercises", Price: 49.99, Category: "Accessories", InStock: true},
		{Name: "Foam Roller", Description: "Muscle recovery foam roller", Price: 34.99, Category: "Recovery", InStock: true},
	}
}

// Achievements returns the unlockable badges.
func Achievements() []domain.Achievement {
	return []domain.Achievement{
		{Name: "First Steps", Description: "Complete your first workout", Category: "strength",
			Criteria: map[string]int{"workouts_completed": 1}, BadgeIcon: "🎯", PointsReward: 50, Rarity: "common"},
		{Name: "Consistency Champion", Description: "Log workouts for 7 consecutive days", Category: "consistency",
			Criteria: map[string]int{"streak_days": 7}, BadgeIcon: "🔥", PointsReward: 200, Rarity: "rare"},
		{Name: "Mobility Master", Description: "Complete 5 mobility assessments", Category: "mobility",
			Criteria: map[string]int{"assessments_completed": 5}, BadgeIcon: "🧘", PointsReward: 150, Rarity: "rare"},
		{Name: "Social Butterfly", Description: "Follow 10 other users", Category: "social",
			Criteria: map[string]int{"following_count": 10}, BadgeIcon: "🦋", PointsReward: 100, Rarity: "common"},
		{Name: "Legendary Warrior", Description: "Reach 5000 points", Category: "strength",
			Criteria: map[string]int{"total_points": 5000}, BadgeIcon: "⚡", PointsReward: 500, Rarity: "legendary"},
	}
}

// Challenges returns the starter challenges, all beginning at now.
func Challenges(now time.Time) []domain.Challenge {
	week := now.Add(7 * 24 * time.Hour)
	month := now.Add(30 * 24 * time.Hour)
	return []domain.Challenge{
		{Name: "Weekly Push-up Challenge", Description: "Complete 100 push-ups this week",
			Type: "weekly", GoalType: "reps", GoalValue: 100, StartDate: now, EndDate: week,
			Rewards: []string{"Weekly Champion Badge", "200 points"}},
		{Name: "Daily Mobility Quest", Description: "Complete mobility exercises for 7 consecutive days",
			Type: "weekly", GoalType: "consistency", GoalValue: 7, StartDate: now, EndDate: week,
			Rewards: []string{"Mobility Master Badge", "150 points"}},
		{Name: "30-Day Transformation", Description: "Log progress every day for 30 days",
			Type: "monthly", GoalType: "consistency", GoalValue: 30, StartDate: now, EndDate: month,
			Rewards: []string{"Transformation Champion", "500 points"}},
	}
}

// ChatChannels returns the topic channels.
func ChatChannels() []domain.ChatChannel {
	return []domain.ChatChannel{
		{Name: "General Discussion", Description: "General fitness discussion and motivation", Type: "general"},
		{Name: "Workout Chat", Description: "Share your workouts and get feedback", Type: "workout_chat"},
		{Name: "Mobility & Recovery", Description: "Discuss mobility, stretching, and recovery", Type: "mobility_chat"},
		{Name: "Beginner Help", Description: "Questions and support for beginners", Type: "beginner_help"},
		{Name: "Advanced Training", Description: "Advanced techniques and challenges", Type: "advanced_training"},
	}
}

// Communities returns a starter set of communities.
func Communities() []domain.Community {
	return []domain.Community{
		{Name: "Calisthenics India", Type: "general", Description: "Bodyweight training across the country"},
		{Name: "Delhi Street Workout", Type: "city", Description: "Park sessions and meetups in Delhi"},
		{Name: "Mumbai Bar Athletes", Type: "city", Description: "Training spots and jams in Mumbai"},
		{Name: "IIT Bombay Fitness Club", Type: "university", Description: "Campus training group"},
	}
}
