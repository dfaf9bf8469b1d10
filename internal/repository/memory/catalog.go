package memory

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository"
	"github.com/maroofsyyed/dominion1/internal/seed"
)

// ---- products ----

type productRepo struct{ s *Store }

// Products returns the store's ProductRepository.
func (s *Store) Products() repository.ProductRepository { return productRepo{s} }

func (r productRepo) List(_ context.Context) ([]domain.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]domain.Product{}, r.s.products...), nil
}

func (r productRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r productRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.products)), nil
}

func (r productRepo) InsertMany(_ context.Context, products []domain.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range products {
		p.ID = newID(p.ID)
		r.s.products = append(r.s.products, p)
	}
	return nil
}

// ---- challenges ----

type challengeRepo struct{ s *Store }

// Challenges returns the store's ChallengeRepository.
func (s *Store) Challenges() repository.ChallengeRepository { return challengeRepo{s} }

func (r challengeRepo) ListActive(_ context.Context, now time.Time) ([]domain.Challenge, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []domain.Challenge{}
	for _, id := range r.s.challengeOrder {
		c := r.s.challenges[id]
		if c.IsRunning(now) {
			cp := *c
			cp.Participants = append([]string(nil), c.Participants...)
			out = append(out, cp)
		}
	}
	return out, nil
}

func (r challengeRepo) GetByID(_ context.Context, id string) (*domain.Challenge, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.challenges[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	cp.Participants = append([]string(nil), c.Participants...)
	return &cp, nil
}

func (r challengeRepo) AddParticipant(_ context.Context, challengeID, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.challenges[challengeID]
	if !ok {
		return repository.ErrNotFound
	}
	c.Participants = addMember(c.Participants, userID)
	return nil
}

func (r challengeRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.challenges)), nil
}

func (r challengeRepo) InsertMany(_ context.Context, challenges []domain.Challenge) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range challenges {
		c := c
		c.ID = newID(c.ID)
		r.s.challenges[c.ID] = &c
		r.s.challengeOrder = append(r.s.challengeOrder, c.ID)
	}
	return nil
}

// ---- achievements ----

type achievementRepo struct{ s *Store }

// Achievements returns the store's AchievementRepository.
func (s *Store) Achievements() repository.AchievementRepository { return achievementRepo{s} }

func (r achievementRepo) List(_ context.Context) ([]domain.Achievement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]domain.Achievement{}, r.s.achievements...), nil
}

func (r achievementRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.achievements)), nil
}

func (r achievementRepo) InsertMany(_ context.Context, achievements []domain.Achievement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.achievements = append(r.s.achievements, achievements...)
	return nil
}

// SeedTargets exposes the store to seed.Run.
func (s *Store) SeedTargets() seed.Targets {
	return seed.Targets{
		Exercises:    s.Exercises(),
		Mobility:     s.Mobility(),
		Products:     s.Products(),
		Achievements: s.Achievements(),
		Challenges:   s.Challenges(),
		Channels:     s.Channels(),
		Communities:  s.Communities(),
	}
}

// Seeded returns a store loaded with the reference catalog as of now.
func Seeded(now time.Time) *Store {
	s := NewStore()
	// The in-memory targets never fail.
	_ = seed.Run(context.Background(), s.SeedTargets(), now, zerolog.Nop())
	return s
}
