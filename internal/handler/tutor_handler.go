package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/classhub/classhub-backend/internal/config"
	"github.com/classhub/classhub-backend/internal/middleware"
	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/response"
	"github.com/classhub/classhub-backend/internal/service"
	"github.com/classhub/classhub-backend/internal/validator"
)

// TutorHandler exposes the AI tutor chat endpoint. Exchanges are queued
// for archival so a slow log store never delays the answer.
type TutorHandler struct {
	tutorService *service.TutorService
	rdb          *redis.Client
	log          zerolog.Logger
}

// NewTutorHandler creates a new TutorHandler.
func NewTutorHandler(tutorService *service.TutorService, rdb *redis.Client, log zerolog.Logger) *TutorHandler {
	return &TutorHandler{
		tutorService: tutorService,
		rdb:          rdb,
		log:          log.With().Str("component", "tutor_handler").Logger(),
	}
}

// Chat godoc
// POST /api/v1/ai/chat
// Forwards the question to the tutor model. A failing or slow upstream
// never surfaces as an error: the student gets a fallback answer instead.
func (h *TutorHandler) Chat(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.TutorChatRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	answer := h.tutorService.Ask(c.Request.Context(), req.Question, req.Context)

	h.enqueueLog(c.Request.Context(), claims.UserID, req.Question, answer)

	response.Success(c, http.StatusOK, model.TutorChatResponse{Answer: answer})
}

func (h *TutorHandler) enqueueLog(ctx context.Context, userID, question, answer string) {
	payload, err := json.Marshal(model.TutorLog{
		UserID:   userID,
		Question: question,
		Answer:   answer,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("failed to marshal tutor log payload")
		return
	}
	if err := h.rdb.RPush(ctx, config.WorkerKey.TutorLogQueue, payload).Err(); err != nil {
		h.log.Warn().Err(err).Msg("failed to enqueue tutor log")
	}
}
