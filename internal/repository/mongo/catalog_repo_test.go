package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/maroofsyyed/dominion1/internal/domain"
)

func TestChallengeRepository_ListActive(t *testing.T) {
	mt := newMock(t)

	mt.Run("window contains now", func(mt *mtest.T) {
		now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
		mt.AddMockResponses(batch("dominion.challenges"))
		challenges, err := NewMongoChallengeRepository(mt.DB).ListActive(context.Background(), now)
		require.NoError(mt, err)
		assert.Empty(mt, challenges)

		cmd := sent(mt)
		assert.Equal(mt, domain.ChallengeActive, cmd.Lookup("filter", "status").StringValue())
		assert.True(mt, now.Equal(cmd.Lookup("filter", "start_date", "$lte").Time()))
		assert.True(mt, now.Equal(cmd.Lookup("filter", "end_date", "$gte").Time()))
	})
}
