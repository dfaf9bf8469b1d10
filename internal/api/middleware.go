package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/service"
)

// Constants for context keys
const (
	ContextUserKey = "currentUser"
)

// AuthMiddleware resolves the bearer token to a user and stores it in the
// request context.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		// Expecting "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		user, err := authService.ResolveToken(c.Request.Context(), parts[1])
		if err != nil {
			handleServiceError(c, err)
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// getCurrentUser returns the user stored by AuthMiddleware.
func getCurrentUser(c *gin.Context) (*domain.User, error) {
	raw, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, errors.New("user not found in context")
	}
	user, ok := raw.(*domain.User)
	if !ok {
		return nil, errors.New("invalid user type in context")
	}
	return user, nil
}

// mustCurrentUser aborts with 500 when the middleware did not run.
func mustCurrentUser(c *gin.Context) (*domain.User, bool) {
	user, err := getCurrentUser(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user from token")
		return nil, false
	}
	return user, true
}

// RequestLogger logs one line per request with zerolog and attaches the
// logger to the request context for handleServiceError.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))
		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		if status >= http.StatusInternalServerError {
			event = logger.Error()
		} else if status >= http.StatusBadRequest {
			event = logger.Warn()
		}
		if user, err := getCurrentUser(c); err == nil {
			event = event.Str("user_id", user.ID)
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// statusFor maps service sentinels to HTTP statuses. Unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUserAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, service.ErrAuthenticationFailed), errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrProfilePrivate):
		return http.StatusForbidden
	case errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrMobilityExerciseNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrChallengeNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrCommunityNotFound),
		errors.Is(err, service.ErrChannelNotFound),
		errors.Is(err, service.ErrNoProfilePhoto):
		return http.StatusNotFound
	case errors.Is(err, service.ErrCannotFollowSelf),
		errors.Is(err, service.ErrAlreadyParticipating),
		errors.Is(err, service.ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, service.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// handleServiceError writes the mapped status. Internal errors are logged and
// their message is not exposed.
func handleServiceError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		abortWithError(c, status, "Internal server error")
		return
	}
	abortWithError(c, status, err.Error())
}
