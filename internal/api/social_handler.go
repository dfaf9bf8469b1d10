package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maroofsyyed/dominion1/internal/service"
)

// SocialHandler serves the follow graph, people search, profiles and photos.
type SocialHandler struct {
	socialService service.SocialService
	userService   service.UserService
}

func NewSocialHandler(socialService service.SocialService, userService service.UserService) *SocialHandler {
	return &SocialHandler{socialService: socialService, userService: userService}
}

// Follow godoc
// @Summary Follow a user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} gin.H
// @Failure 400 {object} gin.H "Cannot follow yourself"
// @Failure 404 {object} gin.H "User not found"
// @Router /api/users/follow/{id} [post]
func (h *SocialHandler) Follow(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	if err := h.socialService.Follow(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully followed user"})
}

// Unfollow godoc
// @Summary Unfollow a user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} gin.H
// @Router /api/users/unfollow/{id} [delete]
func (h *SocialHandler) Unfollow(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	if err := h.socialService.Unfollow(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully unfollowed user"})
}

// Followers godoc
// @Summary IDs of a user's followers
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} gin.H "followers"
// @Router /api/users/{id}/followers [get]
func (h *SocialHandler) Followers(c *gin.Context) {
	ids, err := h.socialService.Followers(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"followers": ids})
}

// Following godoc
// @Summary IDs of the users a user follows
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} gin.H "following"
// @Router /api/users/{id}/following [get]
func (h *SocialHandler) Following(c *gin.Context) {
	ids, err := h.socialService.Following(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": ids})
}

// Search godoc
// @Summary Search users
// @Description Takes ?q= and a comma separated ?interests= list.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param q query string false "Username or full name substring"
// @Param interests query string false "Comma separated interests"
// @Success 200 {array} service.UserSummary
// @Router /api/users/search [get]
func (h *SocialHandler) Search(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	var interests []string
	for _, s := range strings.Split(c.Query("interests"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			interests = append(interests, s)
		}
	}
	results, err := h.socialService.Search(c.Request.Context(), user.ID, c.Query("q"), interests)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// Profile godoc
// @Summary A user's profile as seen by the caller
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} service.Profile
// @Failure 403 {object} gin.H "Profile is private"
// @Failure 404 {object} gin.H "User not found"
// @Router /api/users/{id}/profile [get]
func (h *SocialHandler) Profile(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	profile, err := h.socialService.Profile(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadProfilePhoto godoc
// @Summary Replace the caller's profile photo
// @Accept multipart/form-data
// @Param file formData file true "Image file, at most 5 MiB"
// @Failure 413 {object} gin.H "File too large"
// @Failure 415 {object} gin.H "Not an image"
// @Router /api/upload/profile-photo [post]
func (h *SocialHandler) UploadProfilePhoto(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Multipart field 'file' is required")
		return
	}
	if fileHeader.Size > service.MaxPhotoBytes {
		handleServiceError(c, service.ErrFileTooLarge)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer file.Close()

	photo, err := h.userService.SetProfilePhoto(c.Request.Context(), user, file)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile photo uploaded successfully", "profile_photo": photo})
}

// ProfilePhotoURL godoc
// @Summary Get a fetchable URL for a user's profile photo
// @Description Stored photos get a presigned URL; expires_in is its lifetime in seconds.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} gin.H "url and expires_in"
// @Failure 404 {object} gin.H "User or photo not found"
// @Router /api/users/{id}/photo [get]
func (h *SocialHandler) ProfilePhotoURL(c *gin.Context) {
	url, expires, err := h.userService.ProfilePhotoURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "expires_in": int(expires.Seconds())})
}
