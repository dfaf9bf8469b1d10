package domain

import "time"

// Community groups users by city, university or general interest.
// Its id doubles as a chat room id.
type Community struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Type        string    `bson:"type" json:"type"` // city, university, general
	Description string    `bson:"description" json:"description"`
	Members     []string  `bson:"members" json:"members"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// ChatChannel is a topic channel. Its id doubles as a chat room id.
type ChatChannel struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Type        string    `bson:"type" json:"type"` // general, workout_chat, mobility_chat, ...
	CommunityID string    `bson:"community_id,omitempty" json:"community_id,omitempty"`
	Members     []string  `bson:"members" json:"members"`
	Moderators  []string  `bson:"moderators" json:"moderators"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Message is a persisted chat line. RoomID is stored as community_id for
// both communities and channels.
type Message struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	RoomID    string    `bson:"community_id" json:"community_id"`
	Username  string    `bson:"username" json:"username"`
	Content   string    `bson:"content" json:"content"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
