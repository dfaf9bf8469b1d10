package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maroofsyyed/dominion1/internal/service"
)

// GamificationHandler serves the leaderboard, challenges, achievements and shop.
type GamificationHandler struct {
	gamificationService service.GamificationService
	shopService         service.ShopService
}

func NewGamificationHandler(gamificationService service.GamificationService, shopService service.ShopService) *GamificationHandler {
	return &GamificationHandler{gamificationService: gamificationService, shopService: shopService}
}

// Leaderboard godoc
// @Summary Top users by points
// @Tags Gamification
// @Produce json
// @Success 200 {array} domain.LeaderboardEntry
// @Router /api/leaderboard [get]
func (h *GamificationHandler) Leaderboard(c *gin.Context) {
	board, err := h.gamificationService.Leaderboard(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// ListChallenges godoc
// @Summary List challenges running now
// @Tags Gamification
// @Produce json
// @Success 200 {array} domain.Challenge
// @Router /api/challenges [get]
func (h *GamificationHandler) ListChallenges(c *gin.Context) {
	list, err := h.gamificationService.ActiveChallenges(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// JoinChallenge godoc
// @Summary Join an active challenge
// @Tags Gamification
// @Produce json
// @Security BearerAuth
// @Param id path string true "Challenge ID"
// @Success 200 {object} gin.H
// @Failure 400 {object} gin.H "Already participating"
// @Failure 404 {object} gin.H "Challenge not found"
// @Router /api/challenges/{id}/join [post]
func (h *GamificationHandler) JoinChallenge(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	if err := h.gamificationService.JoinChallenge(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully joined challenge"})
}

// ListAchievements godoc
// @Summary List the achievement catalog
// @Tags Gamification
// @Produce json
// @Success 200 {array} domain.Achievement
// @Router /api/achievements [get]
func (h *GamificationHandler) ListAchievements(c *gin.Context) {
	list, err := h.gamificationService.Achievements(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UserAchievements godoc
// @Summary List achievements awarded to a user
// @Tags Gamification
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} domain.AwardedAchievement
// @Failure 404 {object} gin.H "User not found"
// @Router /api/users/{id}/achievements [get]
func (h *GamificationHandler) UserAchievements(c *gin.Context) {
	list, err := h.gamificationService.UserAchievements(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListProducts godoc
// @Summary List shop products
// @Tags Shop
// @Produce json
// @Success 200 {array} domain.Product
// @Router /api/products [get]
func (h *GamificationHandler) ListProducts(c *gin.Context) {
	products, err := h.shopService.ListProducts(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct godoc
// @Summary Get a product by ID
// @Tags Shop
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} gin.H "Product not found"
// @Router /api/products/{id} [get]
func (h *GamificationHandler) GetProduct(c *gin.Context) {
	product, err := h.shopService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}
