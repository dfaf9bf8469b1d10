package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestConnectionRepository_Upsert(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mt.Run("creates the edge", func(mt *mtest.T) {
		mt.AddMockResponses(updated(0))
		require.NoError(mt, NewMongoConnectionRepository(mt.DB).Upsert(ctx, "u-1", "u-2", at))

		cmd := sent(mt)
		assert.Equal(mt, "user_connections", cmd.Lookup("update").StringValue())
		assert.True(mt, cmd.Lookup("updates", "0", "upsert").Boolean())
		assert.Equal(mt, "u-1", cmd.Lookup("updates", "0", "q", "follower_id").StringValue())
		assert.Equal(mt, "u-2", cmd.Lookup("updates", "0", "q", "following_id").StringValue())
		assert.Equal(mt, "u-2", cmd.Lookup("updates", "0", "u", "$setOnInsert", "following_id").StringValue())
	})

	mt.Run("losing the race to the unique index is not an error", func(mt *mtest.T) {
		mt.AddMockResponses(duplicateKey())
		assert.NoError(mt, NewMongoConnectionRepository(mt.DB).Upsert(ctx, "u-1", "u-2", at))
	})

	mt.Run("other write errors surface", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    121,
			Message: "Document failed validation",
		}))
		assert.Error(mt, NewMongoConnectionRepository(mt.DB).Upsert(ctx, "u-1", "u-2", at))
	})
}

func TestConnectionRepository_Exists(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()

	mt.Run("edge present", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.user_connections", bson.D{{Key: "n", Value: 1}}))
		ok, err := NewMongoConnectionRepository(mt.DB).Exists(ctx, "u-1", "u-2")
		require.NoError(mt, err)
		assert.True(mt, ok)
	})

	mt.Run("edge absent", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.user_connections"))
		ok, err := NewMongoConnectionRepository(mt.DB).Exists(ctx, "u-1", "u-2")
		require.NoError(mt, err)
		assert.False(mt, ok)
	})
}

func TestConnectionRepository_IDs(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()

	edge := func(id, follower, following string) bson.D {
		return bson.D{
			{Key: "_id", Value: id},
			{Key: "follower_id", Value: follower},
			{Key: "following_id", Value: following},
		}
	}

	mt.Run("followers", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.user_connections",
			edge("c-1", "u-2", "u-1"),
			edge("c-2", "u-3", "u-1"),
		))
		ids, err := NewMongoConnectionRepository(mt.DB).FollowerIDs(ctx, "u-1")
		require.NoError(mt, err)
		assert.Equal(mt, []string{"u-2", "u-3"}, ids)

		cmd := sent(mt)
		assert.Equal(mt, "u-1", cmd.Lookup("filter", "following_id").StringValue())
		assert.EqualValues(mt, 1, cmd.Lookup("sort", "created_at").AsInt64())
	})

	mt.Run("following", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.user_connections", edge("c-1", "u-1", "u-4")))
		ids, err := NewMongoConnectionRepository(mt.DB).FollowingIDs(ctx, "u-1")
		require.NoError(mt, err)
		assert.Equal(mt, []string{"u-4"}, ids)
		assert.Equal(mt, "u-1", sent(mt).Lookup("filter", "follower_id").StringValue())
	})
}
