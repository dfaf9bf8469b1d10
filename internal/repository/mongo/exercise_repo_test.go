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

func TestExerciseRepository_List(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()

	mt.Run("filters and orders by progression", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.exercises",
			bson.D{{Key: "_id", Value: "e-1"}, {Key: "name", Value: "Incline Row"}, {Key: "pillar", Value: "Horizontal Pull"}},
		))
		exercises, err := NewMongoExerciseRepository(mt.DB).List(ctx, domain.ExerciseFilter{
			Pillar:     "Horizontal Pull",
			SkillLevel: "Beginner",
		})
		require.NoError(mt, err)
		require.Len(mt, exercises, 1)

		cmd := sent(mt)
		assert.Equal(mt, "Horizontal Pull", cmd.Lookup("filter", "pillar").StringValue())
		assert.Equal(mt, "Beginner", cmd.Lookup("filter", "skill_level").StringValue())
		assert.EqualValues(mt, 1, cmd.Lookup("sort", "progression_order").AsInt64())
	})

	mt.Run("empty filter matches everything", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.exercises"))
		_, err := NewMongoExerciseRepository(mt.DB).List(ctx, domain.ExerciseFilter{})
		require.NoError(mt, err)

		elems, err := sent(mt).Lookup("filter").Document().Elements()
		require.NoError(mt, err)
		assert.Empty(mt, elems)
	})
}

func TestExerciseRepository_Pillars(t *testing.T) {
	mt := newMock(t)

	mt.Run("sorted distinct values", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{
			Key:   "values",
			Value: bson.A{"Legs", "Core", "Horizontal Pull"},
		}))
		pillars, err := NewMongoExerciseRepository(mt.DB).Pillars(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, []string{"Core", "Horizontal Pull", "Legs"}, pillars)
		assert.Equal(mt, "pillar", sent(mt).Lookup("key").StringValue())
	})
}

func TestExerciseRepository_Count(t *testing.T) {
	mt := newMock(t)

	mt.Run("counts the collection", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.exercises", bson.D{{Key: "n", Value: 12}}))
		n, err := NewMongoExerciseRepository(mt.DB).Count(context.Background())
		require.NoError(mt, err)
		assert.EqualValues(mt, 12, n)
	})
}
