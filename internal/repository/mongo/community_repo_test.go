package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/maroofsyyed/dominion1/internal/domain"
)

func TestMessageRepository(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()

	mt.Run("room history is newest first and capped", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.messages",
			bson.D{{Key: "_id", Value: "m-2"}, {Key: "community_id", Value: "general"}, {Key: "content", Value: "second"}},
			bson.D{{Key: "_id", Value: "m-1"}, {Key: "community_id", Value: "general"}, {Key: "content", Value: "first"}},
		))
		msgs, err := NewMongoMessageRepository(mt.DB).ListByRoom(ctx, "general", 50)
		require.NoError(mt, err)
		require.Len(mt, msgs, 2)
		assert.Equal(mt, "m-2", msgs[0].ID)

		cmd := sent(mt)
		assert.Equal(mt, "general", cmd.Lookup("filter", "community_id").StringValue())
		assert.EqualValues(mt, -1, cmd.Lookup("sort", "timestamp").AsInt64())
		assert.EqualValues(mt, 50, cmd.Lookup("limit").AsInt64())
	})

	mt.Run("create assigns an id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		id, err := NewMongoMessageRepository(mt.DB).Create(ctx, &domain.Message{RoomID: "general", Content: "hi"})
		require.NoError(mt, err)
		assert.NotEmpty(mt, id)
	})
}

func TestCommunityRepository_List(t *testing.T) {
	mt := newMock(t)

	mt.Run("empty collection", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.communities"))
		communities, err := NewMongoCommunityRepository(mt.DB).List(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, communities)
		assert.Empty(mt, communities)
	})
}
