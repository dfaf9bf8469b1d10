package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/service" // Import service package
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Username   string   `json:"username" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	Password   string   `json:"password" binding:"required"`
	FullName   string   `json:"full_name" binding:"required"`
	Age        *int     `json:"age" binding:"omitempty,min=0"`
	Height     *float64 `json:"height" binding:"omitempty,min=0"`
	Weight     *float64 `json:"weight" binding:"omitempty,min=0"`
	University string   `json:"university"`
	City       string   `json:"city"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned by both register and login.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *domain.User `json:"user"`
}

// --- Handler Methods ---

// Register godoc
// @Summary Register a new athlete
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration details"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 409 {object} gin.H "Conflict (email already exists)"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	// Bind JSON request body and perform validation based on `binding` tags
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, user, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		FullName:   req.FullName,
		Age:        req.Age,
		Height:     req.Height,
		Weight:     req.Weight,
		University: req.University,
		City:       req.City,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer", User: user})
}

// Login godoc
// @Summary Log in a user
// @Description Authenticates a user and returns a JWT token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse "Login successful"
// @Failure 401 {object} gin.H "Unauthorized (invalid credentials)"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer", User: user})
}

// Me godoc
// @Summary The authenticated user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} gin.H "Missing or invalid token"
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}
