package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGamificationService_Leaderboard(t *testing.T) {
	ctx := context.Background()

	t.Run("padded with placeholders", func(t *testing.T) {
		h := newHarness(t)
		low := h.register(t, "low")
		high := h.register(t, "high")
		require.NoError(t, h.store.Users().IncrementPoints(ctx, low.ID, 10))
		require.NoError(t, h.store.Users().IncrementPoints(ctx, high.ID, 90))

		board, err := h.gamification.Leaderboard(ctx)
		require.NoError(t, err)
		require.Len(t, board, leaderboardSize)
		assert.Equal(t, "high", board[0].Username)
		assert.Equal(t, "low", board[1].Username)
		assert.False(t, board[1].Placeholder)
		assert.Equal(t, "arjun_warrior", board[2].Username)
		assert.True(t, board[2].Placeholder)
		for i, e := range board {
			assert.Equal(t, i+1, e.Rank)
		}
	})

	t.Run("real users capped at ten", func(t *testing.T) {
		h := newHarness(t)
		for i := 0; i < 12; i++ {
			u := h.register(t, fmt.Sprintf("athlete%02d", i))
			require.NoError(t, h.store.Users().IncrementPoints(ctx, u.ID, 100+i))
		}

		board, err := h.gamification.Leaderboard(ctx)
		require.NoError(t, err)
		require.Len(t, board, leaderboardSize)
		assert.Equal(t, "athlete11", board[0].Username)
		assert.False(t, board[leaderboardRealUsers-1].Placeholder)
		assert.True(t, board[leaderboardRealUsers].Placeholder)
		assert.Equal(t, "arjun_warrior", board[leaderboardRealUsers].Username)
	})
}

func TestGamificationService_Challenges(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	user := h.register(t, "challenger")

	active, err := h.gamification.ActiveChallenges(ctx)
	require.NoError(t, err)
	require.Len(t, active, 3)

	id := active[0].ID
	require.NoError(t, h.gamification.JoinChallenge(ctx, id, user.ID))
	assert.ErrorIs(t, h.gamification.JoinChallenge(ctx, id, user.ID), ErrAlreadyParticipating)
	assert.ErrorIs(t, h.gamification.JoinChallenge(ctx, "missing", user.ID), ErrChallengeNotFound)

	c, err := h.store.Challenges().GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{user.ID}, c.Participants)
}

func TestGamificationService_Achievements(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	user := h.register(t, "achiever")

	catalog, err := h.gamification.Achievements(ctx)
	require.NoError(t, err)
	assert.Len(t, catalog, 5)

	awarded, err := h.gamification.UserAchievements(ctx, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, awarded)
	assert.Empty(t, awarded)

	_, err = h.gamification.UserAchievements(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
