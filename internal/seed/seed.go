// Package seed holds the reference catalog loaded into an empty database.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository"
)

// Targets are the repositories that receive reference data.
type Targets struct {
	Exercises    repository.ExerciseRepository
	Mobility     repository.MobilityRepository
	Products     repository.ProductRepository
	Achievements repository.AchievementRepository
	Challenges   repository.ChallengeRepository
	Channels     repository.ChannelRepository
	Communities  repository.CommunityRepository
}

type counter interface {
	Count(ctx context.Context) (int64, error)
}

// Run inserts each catalog into its collection when that collection is empty.
// Collections that already hold documents are left untouched.
func Run(ctx context.Context, t Targets, now time.Time, logger zerolog.Logger) error {
	steps := []struct {
		name   string
		repo   counter
		insert func() error
	}{
		{"exercises", t.Exercises, func() error { return t.Exercises.InsertMany(ctx, stampExercises(Exercises(), now)) }},
		{"mobility_exercises", t.Mobility, func() error { return t.Mobility.InsertMany(ctx, stampMobility(MobilityExercises(), now)) }},
		{"products", t.Products, func() error { return t.Products.InsertMany(ctx, stampProducts(Products(), now)) }},
		{"achievements", t.Achievements, func() error { return t.Achievements.InsertMany(ctx, stampAchievements(Achievements())) }},
		{"challenges", t.Challenges, func() error { return t.Challenges.InsertMany(ctx, stampChallenges(Challenges(now))) }},
		{"chat_channels", t.Channels, func() error { return t.Channels.InsertMany(ctx, stampChannels(ChatChannels(), now)) }},
		{"communities", t.Communities, func() error { return t.Communities.InsertMany(ctx, stampCommunities(Communities(), now)) }},
	}

	for _, s := range steps {
		n, err := s.repo.Count(ctx)
		if err != nil {
			return fmt.Errorf("count %s: %w", s.name, err)
		}
		if n > 0 {
			logger.Debug().Str("collection", s.name).Int64("existing", n).Msg("seed skipped")
			continue
		}
		if err := s.insert(); err != nil {
			return fmt.Errorf("seed %s: %w", s.name, err)
		}
		logger.Info().Str("collection", s.name).Msg("seeded reference data")
	}
	return nil
}

func stampExercises(items []domain.Exercise, now time.Time) []domain.Exercise {
	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].CreatedAt = now
		if items[i].Prerequisites == nil {
			items[i].Prerequisites = []string{}
		}
	}
	return items
}

func stampMobility(items []domain.MobilityExercise, now time.Time) []domain.MobilityExercise {
	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].CreatedAt = now
	}
	return items
}

func stampProducts(items []domain.Product, now time.Time) []domain.Product {
	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].CreatedAt = now
	}
	return items
}

func stampAchievements(items []domain.Achievement) []domain.Achievement {
	for i := range items {
		items[i].ID = uuid.NewString()
	}
	return items
}

func stampChallenges(items []domain.Challenge) []domain.Challenge {
	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].Status = domain.ChallengeActive
		items[i].CreatedBy = "system"
		items[i].Participants = []string{}
	}
	return items
}

func stampChannels(items []domain.ChatChannel, now time.Time) []domain.ChatChannel {
	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].CreatedAt = now
		items[i].Members = []string{}
		items[i].Moderators = []string{}
	}
	return items
}

func stampCommunities(items []domain.Community, now time.Time) []domain.Community {
	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].CreatedAt = now
		items[i].Members = []string{}
	}
	return items
}
