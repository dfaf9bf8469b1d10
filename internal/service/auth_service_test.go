package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maroofsyyed/dominion1/internal/domain"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		h := newHarness(t)
		token, user, err := h.auth.Register(ctx, RegisterInput{
			Username: "arjun", Email: "arjun@example.com", Password: "pw", FullName: "Arjun S",
			University: "IIT Delhi", City: "New Delhi",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotEmpty(t, user.ID)
		assert.Empty(t, user.PasswordHash)
		assert.Equal(t, domain.LevelBeginner, user.FitnessLevel)
		assert.Equal(t, 0, user.Points)
		assert.Equal(t, domain.DefaultPrivacy(), user.Privacy)

		stored := h.reload(t, user.ID)
		assert.NotEqual(t, "pw", stored.PasswordHash)
		assert.NotEmpty(t, stored.PasswordHash)
	})

	t.Run("duplicate email", func(t *testing.T) {
		h := newHarness(t)
		h.register(t, "dup")
		_, _, err := h.auth.Register(ctx, RegisterInput{
			Username: "other", Email: "dup@example.com", Password: "pw", FullName: "Other",
		})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("missing fields", func(t *testing.T) {
		h := newHarness(t)
		_, _, err := h.auth.Register(ctx, RegisterInput{Email: "x@example.com"})
		assert.ErrorIs(t, err, ErrValidationFailed)
	})
}

func TestAuthService_LoginAndResolve(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	registered := h.register(t, "priya")

	token, user, err := h.auth.Login(ctx, "priya@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	resolved, err := h.auth.ResolveToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, resolved.ID)
	assert.Equal(t, "priya", resolved.Username)
	assert.Empty(t, resolved.PasswordHash)

	_, _, err = h.auth.Login(ctx, "priya@example.com", "wrong")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = h.auth.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuthService_ResolveTokenRejects(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	user := h.register(t, "raj")

	sign := func(secret string, method jwt.SigningMethod, claims jwt.RegisteredClaims) string {
		tok, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return tok
	}
	valid := jwt.RegisteredClaims{
		Subject:   user.ID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	cases := map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": sign("other-secret", jwt.SigningMethodHS256, valid),
		"expired": sign(testSecret, jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}),
		"unknown subject": sign(testSecret, jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "missing",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}),
		"no subject": sign(testSecret, jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}),
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := h.auth.ResolveToken(ctx, token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
