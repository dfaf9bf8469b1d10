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

func TestUserRepository_Create(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()

	mt.Run("success", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &domain.User{Email: "ana@example.com", PasswordHash: "hash"}
		id, err := repo.Create(ctx, user)
		require.NoError(mt, err)
		assert.NotEmpty(mt, id)
		assert.Equal(mt, id, user.ID)
		assert.False(mt, user.CreatedAt.IsZero())

		cmd := sent(mt)
		assert.Equal(mt, "users", cmd.Lookup("insert").StringValue())
		assert.Equal(mt, "ana@example.com", cmd.Lookup("documents", "0", "email").StringValue())
	})

	mt.Run("duplicate email maps to ErrDuplicate", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(duplicateKey())

		_, err := repo.Create(ctx, &domain.User{Email: "ana@example.com", PasswordHash: "hash"})
		assert.ErrorIs(mt, err, repository.ErrDuplicate)
	})

	mt.Run("missing password hash is rejected before any write", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)

		_, err := repo.Create(ctx, &domain.User{Email: "ana@example.com"})
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, repository.ErrDuplicate)
		assert.Empty(mt, mt.GetAllStartedEvents())
	})
}

func TestUserRepository_Lookups(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()

	mt.Run("unknown email", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.users"))
		_, err := NewMongoUserRepository(mt.DB).GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("known id", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.users", bson.D{
			{Key: "_id", Value: "u-1"},
			{Key: "email", Value: "ana@example.com"},
			{Key: "points", Value: 40},
		}))
		user, err := NewMongoUserRepository(mt.DB).GetByID(ctx, "u-1")
		require.NoError(mt, err)
		assert.Equal(mt, "ana@example.com", user.Email)
		assert.Equal(mt, 40, user.Points)
	})
}

func TestUserRepository_Updates(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()

	mt.Run("points on unknown user", func(mt *mtest.T) {
		mt.AddMockResponses(updated(0))
		err := NewMongoUserRepository(mt.DB).IncrementPoints(ctx, "missing", 10)
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("points are incremented", func(mt *mtest.T) {
		mt.AddMockResponses(updated(1))
		require.NoError(mt, NewMongoUserRepository(mt.DB).IncrementPoints(ctx, "u-1", 10))

		cmd := sent(mt)
		assert.EqualValues(mt, 10, cmd.Lookup("updates", "0", "u", "$inc", "points").AsInt64())
	})

	mt.Run("photo on unknown user", func(mt *mtest.T) {
		mt.AddMockResponses(updated(0))
		err := NewMongoUserRepository(mt.DB).SetProfilePhoto(ctx, "missing", "https://cdn/x.png")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}

func TestUserRepository_Search(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()

	mt.Run("query is quoted and case-insensitive", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.users",
			bson.D{{Key: "_id", Value: "u-2"}, {Key: "username", Value: "a.b"}},
		))
		users, err := NewMongoUserRepository(mt.DB).Search(ctx, repository.UserSearch{
			Query:     "a.b",
			Interests: []string{"handstands"},
			ExcludeID: "u-1",
			Limit:     5,
		})
		require.NoError(mt, err)
		require.Len(mt, users, 1)

		cmd := sent(mt)
		pattern, opts := cmd.Lookup("filter", "$or", "0", "username").Regex()
		assert.Equal(mt, `a\.b`, pattern)
		assert.Equal(mt, "i", opts)
		pattern, opts = cmd.Lookup("filter", "$or", "1", "full_name").Regex()
		assert.Equal(mt, `a\.b`, pattern)
		assert.Equal(mt, "i", opts)
		assert.Equal(mt, "handstands", cmd.Lookup("filter", "interests", "$in", "0").StringValue())
		assert.Equal(mt, "u-1", cmd.Lookup("filter", "_id", "$ne").StringValue())
		assert.EqualValues(mt, 5, cmd.Lookup("limit").AsInt64())
	})

	mt.Run("no matches is an empty slice", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.users"))
		users, err := NewMongoUserRepository(mt.DB).Search(ctx, repository.UserSearch{Query: "zzz"})
		require.NoError(mt, err)
		assert.NotNil(mt, users)
		assert.Empty(mt, users)
	})
}

func TestUserRepository_TopByPoints(t *testing.T) {
	mt := newMock(t)

	mt.Run("highest points first, oldest account breaks ties", func(mt *mtest.T) {
		mt.AddMockResponses(batch("dominion.users"))
		_, err := NewMongoUserRepository(mt.DB).TopByPoints(context.Background(), 10)
		require.NoError(mt, err)

		cmd := sent(mt)
		sortDoc := cmd.Lookup("sort").Document()
		assert.EqualValues(mt, -1, sortDoc.Lookup("points").AsInt64())
		assert.EqualValues(mt, 1, sortDoc.Lookup("created_at").AsInt64())
		assert.EqualValues(mt, 10, cmd.Lookup("limit").AsInt64())
	})
}
