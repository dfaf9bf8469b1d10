package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/maroofsyyed/dominion1/internal/repository"
)

// newMock returns a driver test harness backed by scripted server replies.
func newMock(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

// batch is a single-batch cursor reply for a find or aggregate.
func batch(ns string, docs ...bson.D) bson.D {
	return mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, docs...)
}

// updated is an update reply; n is the matched count.
func updated(n int) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "n", Value: n}, bson.E{Key: "nModified", Value: n})
}

func duplicateKey() bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{
		Index:   0,
		Code:    11000,
		Message: "E11000 duplicate key error",
	})
}

// sent returns the next command the client issued.
func sent(mt *mtest.T) bson.Raw {
	ev := mt.GetStartedEvent()
	require.NotNil(mt, ev, "no command was sent")
	return ev.Command
}

func TestAddToSet(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()

	mt.Run("unknown community", func(mt *mtest.T) {
		mt.AddMockResponses(updated(0))
		err := NewMongoCommunityRepository(mt.DB).AddMember(ctx, "missing", "u-1")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("member added", func(mt *mtest.T) {
		mt.AddMockResponses(updated(1))
		require.NoError(mt, NewMongoChannelRepository(mt.DB).AddMember(ctx, "ch-1", "u-1"))

		cmd := sent(mt)
		assert.Equal(mt, "chat_channels", cmd.Lookup("update").StringValue())
		assert.Equal(mt, "ch-1", cmd.Lookup("updates", "0", "q", "_id").StringValue())
		assert.Equal(mt, "u-1", cmd.Lookup("updates", "0", "u", "$addToSet", "members").StringValue())
	})

	mt.Run("already a participant still matches", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 0}))
		assert.NoError(mt, NewMongoChallengeRepository(mt.DB).AddParticipant(ctx, "c-1", "u-1"))
	})
}

func TestFindByID(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()

	mt.Run("miss maps to ErrNotFound", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.exercises"))
		_, err := NewMongoExerciseRepository(mt.DB).GetByID(ctx, "nope")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("decodes the document", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.products", bson.D{
			{Key: "_id", Value: "p-1"},
			{Key: "name", Value: "Parallettes"},
			{Key: "price", Value: 49.99},
			{Key: "in_stock", Value: true},
		}))
		product, err := NewMongoProductRepository(mt.DB).GetByID(ctx, "p-1")
		require.NoError(mt, err)
		assert.Equal(mt, "Parallettes", product.Name)
		assert.True(mt, product.InStock)
		assert.Equal(mt, "p-1", sent(mt).Lookup("filter", "_id").StringValue())
	})
}

func TestEnsureIndexes(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()

	mt.Run("all collections", func(mt *mtest.T) {
		for i := 0; i < 9; i++ {
			mt.AddMockResponses(mtest.CreateSuccessResponse())
		}
		require.NoError(mt, EnsureIndexes(ctx, mt.DB))

		var collections []string
		for _, ev := range mt.GetAllStartedEvents() {
			collections = append(collections, ev.Command.Lookup("createIndexes").StringValue())
		}
		assert.Equal(mt, []string{
			"users", "exercises", "mobility_exercises", "mobility_assessments",
			"user_progress", "workouts", "messages", "challenges", "user_connections",
		}, collections)
	})

	mt.Run("keeps going after a failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    85,
			Name:    "IndexOptionsConflict",
			Message: "index already exists with different options",
		}))
		for i := 0; i < 8; i++ {
			mt.AddMockResponses(mtest.CreateSuccessResponse())
		}
		err := EnsureIndexes(ctx, mt.DB)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "users")
		assert.Len(mt, mt.GetAllStartedEvents(), 9)
	})

}

func TestEnsureRequiredIndexes(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()

	mt.Run("unique email index only", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		require.NoError(mt, EnsureRequiredIndexes(ctx, mt.DB))

		events := mt.GetAllStartedEvents()
		require.Len(mt, events, 1)
		cmd := events[0].Command
		assert.Equal(mt, "users", cmd.Lookup("createIndexes").StringValue())
		assert.EqualValues(mt, 1, cmd.Lookup("indexes", "0", "key", "email").AsInt64())
		assert.True(mt, cmd.Lookup("indexes", "0", "unique").Boolean())
	})

	mt.Run("failure names the collection", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Name:    "DuplicateKey",
			Message: "E11000 duplicate key error collection: dominion.users index: email_1",
		}))
		err := EnsureRequiredIndexes(ctx, mt.DB)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "users:")
	})
}

func TestInsertMany(t *testing.T) {
	mt := newMock(t)

	mt.Run("empty input sends nothing", func(mt *mtest.T) {
		require.NoError(mt, NewMongoAchievementRepository(mt.DB).InsertMany(context.Background(), nil))
		assert.Empty(mt, mt.GetAllStartedEvents())
	})
}
