package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository/memory"
)

const testSecret = "test-secret"

type harness struct {
	store        *memory.Store
	auth         AuthService
	exercises    ExerciseService
	mobility     MobilityService
	progress     ProgressService
	social       SocialService
	community    CommunityService
	gamification GamificationService
	shop         ShopService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := memory.Seeded(time.Now().UTC())
	logger := zerolog.Nop()
	return &harness{
		store:        store,
		auth:         NewAuthService(store.Users(), testSecret, time.Hour),
		exercises:    NewExerciseService(store.Exercises()),
		mobility:     NewMobilityService(store.Mobility(), store.Assessments(), store.Users(), logger),
		progress:     NewProgressService(store.Progress(), store.Workouts(), store.Users(), logger),
		social:       NewSocialService(store.Users(), store.Connections(), store.Progress()),
		community:    NewCommunityService(store.Communities(), store.Channels(), store.Messages()),
		gamification: NewGamificationService(store.Users(), store.Challenges(), store.Achievements()),
		shop:         NewShopService(store.Products()),
	}
}

// register creates a user named username and returns it with its password hash cleared.
func (h *harness) register(t *testing.T, username string) *domain.User {
	t.Helper()
	_, user, err := h.auth.Register(context.Background(), RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
		FullName: "Test " + username,
	})
	require.NoError(t, err)
	return user
}

func (h *harness) reload(t *testing.T, id string) *domain.User {
	t.Helper()
	u, err := h.store.Users().GetByID(context.Background(), id)
	require.NoError(t, err)
	return u
}

// setClock pins nowFunc to fixed for the duration of the test.
func setClock(t *testing.T, fixed time.Time) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return fixed }
	t.Cleanup(func() { nowFunc = prev })
}

// stepClock makes every nowFunc call return a time one second after the previous one.
func stepClock(t *testing.T, start time.Time) {
	t.Helper()
	prev := nowFunc
	current := start
	nowFunc = func() time.Time {
		current = current.Add(time.Second)
		return current
	}
	t.Cleanup(func() { nowFunc = prev })
}
