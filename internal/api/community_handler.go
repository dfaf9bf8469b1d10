package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maroofsyyed/dominion1/internal/realtime"
	"github.com/maroofsyyed/dominion1/internal/service"
)

// CommunityHandler serves communities, chat channels and the chat socket.
type CommunityHandler struct {
	communityService service.CommunityService
	hub              *realtime.Hub
}

func NewCommunityHandler(communityService service.CommunityService, hub *realtime.Hub) *CommunityHandler {
	return &CommunityHandler{communityService: communityService, hub: hub}
}

// ListCommunities godoc
// @Summary List communities
// @Tags Community
// @Produce json
// @Success 200 {array} domain.Community
// @Router /api/communities [get]
func (h *CommunityHandler) ListCommunities(c *gin.Context) {
	list, err := h.communityService.ListCommunities(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// JoinCommunity godoc
// @Summary Join a community
// @Tags Community
// @Produce json
// @Security BearerAuth
// @Param id path string true "Community ID"
// @Success 200 {object} gin.H
// @Failure 404 {object} gin.H "Community not found"
// @Router /api/communities/{id}/join [post]
func (h *CommunityHandler) JoinCommunity(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	if err := h.communityService.JoinCommunity(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Joined community successfully"})
}

// CommunityMessages godoc
// @Summary Latest messages of a community, newest first
// @Tags Community
// @Produce json
// @Param id path string true "Community ID"
// @Success 200 {array} domain.Message
// @Router /api/communities/{id}/messages [get]
func (h *CommunityHandler) CommunityMessages(c *gin.Context) {
	msgs, err := h.communityService.CommunityMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// ListChannels godoc
// @Summary List chat channels
// @Tags Chat
// @Produce json
// @Success 200 {array} domain.ChatChannel
// @Router /api/chat/channels [get]
func (h *CommunityHandler) ListChannels(c *gin.Context) {
	list, err := h.communityService.ListChannels(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// JoinChannel godoc
// @Summary Join a chat channel
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "Channel ID"
// @Success 200 {object} gin.H
// @Failure 404 {object} gin.H "Channel not found"
// @Router /api/chat/channels/{id}/join [post]
func (h *CommunityHandler) JoinChannel(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	if err := h.communityService.JoinChannel(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Joined channel successfully"})
}

// ChannelMessages godoc
// @Summary Latest messages of a chat channel, newest first
// @Description Accepts ?limit=; a missing or non-numeric value uses the default.
// @Tags Chat
// @Produce json
// @Param id path string true "Channel ID"
// @Param limit query int false "Maximum number of messages"
// @Success 200 {array} domain.Message
// @Router /api/chat/channels/{id}/messages [get]
func (h *CommunityHandler) ChannelMessages(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	msgs, err := h.communityService.ChannelMessages(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// ChatSocket godoc
// @Summary Chat websocket for a room
// @Description Upgrades to a websocket and joins the room named in the path.
// @Tags Chat
// @Param room_id path string true "Room ID"
// @Success 101 "Switching Protocols"
// @Router /ws/chat/{room_id} [get]
func (h *CommunityHandler) ChatSocket(c *gin.Context) {
	conn, err := realtime.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// The upgrader has already written an HTTP error.
		return
	}
	h.hub.Serve(c.Request.Context(), conn, c.Param("room_id"))
}
