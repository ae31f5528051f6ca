package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/classhub/classhub-backend/internal/config"
	"github.com/classhub/classhub-backend/internal/middleware"
	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/response"
	"github.com/classhub/classhub-backend/internal/service"
	"github.com/classhub/classhub-backend/internal/validator"
	"github.com/classhub/classhub-backend/internal/websocket"
)

// MessageHandler handles the class message feed. Posting fans out to the
// class chat channel so websocket subscribers see new messages live.
type MessageHandler struct {
	messageService *service.MessageService
	userService    *service.UserService
	rdb            *redis.Client
	log            zerolog.Logger
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messageService *service.MessageService, userService *service.UserService, rdb *redis.Client, log zerolog.Logger) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		userService:    userService,
		rdb:            rdb,
		log:            log.With().Str("component", "message_handler").Logger(),
	}
}

// List godoc
// GET /api/v1/messages/class/:class_id?limit=
// Returns the class feed, newest first, bounded by the optional limit
// query param. Callers may only read their own class's feed.
func (h *MessageHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)
	classID := c.Param("class_id")

	if classID != claims.ClassID {
		response.Fail(c, http.StatusForbidden, response.ErrWrongClassroom)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultFeedLimit)))

	messages, err := h.messageService.ListForClass(c.Request.Context(), classID, limit)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"messages": messages})
}

// Post godoc
// POST /api/v1/messages
func (h *MessageHandler) Post(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.PostMessageRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if req.ClassID != claims.ClassID {
		response.Fail(c, http.StatusForbidden, response.ErrWrongClassroom)
		return
	}

	sender, err := h.userService.GetProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		failDomain(c, err)
		return
	}

	msg, err := h.messageService.Post(c.Request.Context(), req.ClassID, sender.ID, sender.Name, sender.Role, req.Body)
	if err != nil {
		failDomain(c, err)
		return
	}

	h.publish(c.Request.Context(), msg)

	response.Success(c, http.StatusCreated, msg)
}

// Delete godoc
// DELETE /api/v1/messages/:id
// Only the original sender may delete a message. An unknown id is reported
// as not found even when the caller would not own it.
func (h *MessageHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)
	messageID := c.Param("id")

	if err := h.messageService.Delete(c.Request.Context(), messageID, claims.UserID); err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Message deleted successfully"})
}

// publish fans a stored message out to the class chat channel. Delivery is
// best effort: the message is already persisted.
func (h *MessageHandler) publish(ctx context.Context, msg *model.Message) {
	event := websocket.MessageEvent{
		Event:   websocket.EventMessage,
		Message: *msg,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		h.log.Error().Err(err).Str("message_id", msg.ID).Msg("failed to marshal chat event")
		return
	}
	if err := h.rdb.Publish(ctx, config.CacheKey.ClassChatChannel(msg.ClassID), payload).Err(); err != nil {
		h.log.Warn().Err(err).Str("class_id", msg.ClassID).Msg("failed to publish chat event")
	}
}
