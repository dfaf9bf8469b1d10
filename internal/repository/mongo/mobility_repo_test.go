package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository"
)

func TestMobilityRepository_ListByArea(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()

	mt.Run("area is a quoted case-insensitive substring", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.mobility_exercises",
			bson.D{{Key: "_id", Value: "m-1"}, {Key: "name", Value: "Pigeon"}, {Key: "area", Value: "Hips (left)"}},
		))
		items, err := NewMongoMobilityRepository(mt.DB).ListByArea(ctx, "hips (left)", 3)
		require.NoError(mt, err)
		require.Len(mt, items, 1)
		assert.Equal(mt, "Pigeon", items[0].Name)

		cmd := sent(mt)
		assert.Equal(mt, "mobility_exercises", cmd.Lookup("find").StringValue())
		pattern, opts := cmd.Lookup("filter", "area").Regex()
		assert.Equal(mt, `hips \(left\)`, pattern)
		assert.Equal(mt, "i", opts)
		assert.EqualValues(mt, 3, cmd.Lookup("limit").AsInt64())
	})

	mt.Run("difficulty is an exact match", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.mobility_exercises"))
		items, err := NewMongoMobilityRepository(mt.DB).ListByDifficulty(ctx, "beginner", 2)
		require.NoError(mt, err)
		assert.Empty(mt, items)

		cmd := sent(mt)
		assert.Equal(mt, "beginner", cmd.Lookup("filter", "difficulty").StringValue())
		assert.EqualValues(mt, 2, cmd.Lookup("limit").AsInt64())
	})
}

func TestAssessmentRepository(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()

	mt.Run("create assigns an id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		a := &domain.MobilityAssessment{UserID: "u-1"}
		id, err := NewMongoAssessmentRepository(mt.DB).Create(ctx, a)
		require.NoError(mt, err)
		assert.NotEmpty(mt, id)
		assert.Equal(mt, id, sent(mt).Lookup("documents", "0", "_id").StringValue())
	})

	mt.Run("no assessment yet", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.mobility_assessments"))
		_, err := NewMongoAssessmentRepository(mt.DB).LatestByUser(ctx, "u-1")
		assert.ErrorIs(mt, err, repository.ErrNotFound)

		cmd := sent(mt)
		assert.Equal(mt, "u-1", cmd.Lookup("filter", "user_id").StringValue())
		assert.EqualValues(mt, -1, cmd.Lookup("sort", "date_taken").AsInt64())
	})

	mt.Run("history is newest first", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.mobility_assessments"))
		_, err := NewMongoAssessmentRepository(mt.DB).ListByUser(ctx, "u-1")
		require.NoError(mt, err)
		assert.EqualValues(mt, -1, sent(mt).Lookup("sort", "date_taken").AsInt64())
	})
}
