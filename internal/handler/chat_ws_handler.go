package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/classhub/classhub-backend/internal/config"
	"github.com/classhub/classhub-backend/internal/middleware"
	"github.com/classhub/classhub-backend/internal/response"
	ws "github.com/classhub/classhub-backend/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// ChatWSHandler streams the class message feed over WebSocket. The stream
// is read-only; posting stays on the REST path.
type ChatWSHandler struct {
	rdb      *redis.Client
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewChatWSHandler creates a new ChatWSHandler.
func NewChatWSHandler(rdb *redis.Client, log zerolog.Logger, allowedOrigins []string) *ChatWSHandler {
	return &ChatWSHandler{
		rdb:      rdb,
		log:      log.With().Str("component", "chat_ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// ClassChatStream godoc
// WS /ws/v1/classes/:class_id/chat
// Upgrades to WebSocket and relays new class messages as they are posted.
func (h *ChatWSHandler) ClassChatStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	classID := c.Param("class_id")
	if classID != claims.ClassID {
		response.Fail(c, http.StatusForbidden, response.ErrWrongClassroom)
		return
	}

	raw, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	conn := ws.NewConn(raw)
	defer conn.Close()

	wsLog := h.log.With().
		Str("user_id", claims.UserID).
		Str("class_id", classID).
		Logger()

	wsLog.Info().Msg("Chat subscriber connected")

	sub := h.rdb.Subscribe(c.Request.Context(), config.CacheKey.ClassChatChannel(classID))
	defer sub.Close()

	done := make(chan struct{})

	// Relay published feed events until the subscription or connection drops.
	go func() {
		defer close(done)
		ch := sub.Channel()
		for msg := range ch {
			if err := conn.WriteRaw([]byte(msg.Payload)); err != nil {
				wsLog.Debug().Err(err).Msg("Relay write failed")
				return
			}
		}
	}()

	for {
		var msg ws.RequestEnvelope
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				wsLog.Warn().Err(err).Msg("Unexpected close")
			} else {
				wsLog.Debug().Msg("Connection closed")
			}
			break
		}

		switch msg.Action {
		case ws.ActionPing:
			conn.WriteTyped(ws.PongResponse{Event: ws.EventPong})
		default:
			wsLog.Warn().Str("action", string(msg.Action)).Msg("Unknown action")
			conn.WriteError("unknown action: " + string(msg.Action))
		}
	}

	_ = sub.Close()
	<-done
	wsLog.Info().Msg("Chat subscriber disconnected")
}
