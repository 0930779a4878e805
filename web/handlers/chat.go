package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"elevate-bot/chatbot"
	"elevate-bot/store"
	"elevate-bot/web/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatHandler struct {
	bot     *chatbot.Chatbot
	limiter *store.RateLimiter
	logger  *zap.Logger
}

func NewChatHandler(bot *chatbot.Chatbot, limiter *store.RateLimiter, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		bot:     bot,
		limiter: limiter,
		logger:  logger,
	}
}

func (h *ChatHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:    "ok",
		Service:   "ELEVATE'26 Chatbot",
		Timestamp: time.Now().UTC(),
	})
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Failed to bind chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, types.ChatError{Error: "Message is required"})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, types.ChatError{Error: "Message is required"})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		if value, ok := c.Get("sessionID"); ok {
			sessionID, _ = value.(string)
		}
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	// Rate limiting happens after session resolution and before any core
	// work; rejected requests never reach matching, history or cache.
	allowed := h.limiter.Allow(sessionID)
	c.Header("X-RateLimit-Limit", strconv.Itoa(h.limiter.Limit()))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(h.limiter.Remaining(sessionID)))
	if !allowed {
		h.logger.Warn("Rate limit exceeded", zap.String("session_id", sessionID))
		c.Header("Retry-After", "20")
		c.JSON(http.StatusTooManyRequests, types.ChatError{
			Error:      "Rate limit exceeded. Please wait a moment before sending another message.",
			Response:   "You're sending messages too quickly! Please wait a few seconds and try again.",
			Confidence: 1.0,
		})
		return
	}

	result := h.bot.ProcessChat(c.Request.Context(), message, sessionID)
	c.JSON(http.StatusOK, types.ChatResponse{
		Response:   result.Response,
		Confidence: result.Confidence,
		UsedGroq:   result.UsedRemote,
	})
}
