package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/maroofsyyed/dominion1/internal/domain"
)

func TestWorkoutRepository(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()

	mt.Run("create requires name and owner", func(mt *mtest.T) {
		_, err := NewMongoWorkoutRepository(mt.DB).Create(ctx, &domain.Workout{Name: "Push day"})
		require.Error(mt, err)
		assert.Empty(mt, mt.GetAllStartedEvents())
	})

	mt.Run("create stores an empty exercise list", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		w := &domain.Workout{Name: "Push day", UserID: "u-1"}
		_, err := NewMongoWorkoutRepository(mt.DB).Create(ctx, w)
		require.NoError(mt, err)

		exercises := sent(mt).Lookup("documents", "0", "exercises").Array()
		values, err := exercises.Values()
		require.NoError(mt, err)
		assert.Empty(mt, values)
	})

	mt.Run("list is newest first", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.workouts"))
		_, err := NewMongoWorkoutRepository(mt.DB).ListByUser(ctx, "u-1")
		require.NoError(mt, err)

		cmd := sent(mt)
		assert.Equal(mt, "u-1", cmd.Lookup("filter", "user_id").StringValue())
		assert.EqualValues(mt, -1, cmd.Lookup("sort", "created_at").AsInt64())
	})
}

func TestProgressRepository_Ordering(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()
	since := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		call      func(*mtest.T) error
		direction int64
		limit     int64
	}{
		{
			name: "history newest first",
			call: func(mt *mtest.T) error {
				_, err := NewMongoProgressRepository(mt.DB).ListByUser(ctx, "u-1")
				return err
			},
			direction: -1,
		},
		{
			name: "per-exercise history oldest first",
			call: func(mt *mtest.T) error {
				_, err := NewMongoProgressRepository(mt.DB).ListByUserAndExercise(ctx, "u-1", "e-1")
				return err
			},
			direction: 1,
		},
		{
			name: "window oldest first",
			call: func(mt *mtest.T) error {
				_, err := NewMongoProgressRepository(mt.DB).ListByUserSince(ctx, "u-1", since)
				return err
			},
			direction: 1,
		},
		{
			name: "recent newest first",
			call: func(mt *mtest.T) error {
				_, err := NewMongoProgressRepository(mt.DB).RecentByUser(ctx, "u-1", 5)
				return err
			},
			direction: -1,
			limit:     5,
		},
	}

	for _, tc := range cases {
		mt.Run(tc.name, func(mt *mtest.T) {
			mt.AddMockResponses(batch("dominion.user_progress"))
			require.NoError(mt, tc.call(mt))

			cmd := sent(mt)
			assert.Equal(mt, "user_progress", cmd.Lookup("find").StringValue())
			assert.Equal(mt, "u-1", cmd.Lookup("filter", "user_id").StringValue())
			assert.Equal(mt, tc.direction, cmd.Lookup("sort", "date").AsInt64())
			if tc.limit > 0 {
				assert.Equal(mt, tc.limit, cmd.Lookup("limit").AsInt64())
			}
		})
	}
}

func TestProgressRepository_Since(t *testing.T) {
	mt := newMock(t)

	mt.Run("lower bound is inclusive", func(mt *mtest.T) {
		since := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
		mt.AddMockResponses(batch("dominion.user_progress",
			bson.D{{Key: "_id", Value: "p-1"}, {Key: "user_id", Value: "u-1"}, {Key: "date", Value: since}},
		))
		entries, err := NewMongoProgressRepository(mt.DB).ListByUserSince(context.Background(), "u-1", since)
		require.NoError(mt, err)
		require.Len(mt, entries, 1)

		bound := sent(mt).Lookup("filter", "date", "$gte").Time()
		assert.True(mt, since.Equal(bound))
	})
}
