package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"elevate-bot/config"
	"elevate-bot/notify"
	"elevate-bot/web/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const adminTokenPrefix = "admin-session-"

// AdminHandler gates the notification broadcast behind a shared password and
// exposes the push token registry and notification feed.
type AdminHandler struct {
	cfg      *config.Config
	notifier *notify.Service
	logger   *zap.Logger
}

func NewAdminHandler(cfg *config.Config, notifier *notify.Service, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		cfg:      cfg,
		notifier: notifier,
		logger:   logger,
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req types.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}

	if h.cfg.AdminPassword == "" || req.Password != h.cfg.AdminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid password"})
		return
	}

	token := adminTokenPrefix + strconv.FormatInt(time.Now().UnixMilli(), 10)
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

func (h *AdminHandler) Notifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.notifier.History())
}

func (h *AdminHandler) RegisterToken(c *gin.Context) {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Token) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid token"})
		return
	}

	h.notifier.RegisterToken(req.Token)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) Broadcast(c *gin.Context) {
	var req types.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and body are required"})
		return
	}

	if !strings.HasPrefix(req.AdminToken, adminTokenPrefix) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}

	if req.Title == "" || req.Body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and body are required"})
		return
	}

	if err := h.notifier.Broadcast(c.Request.Context(), req.Title, req.Body); err != nil {
		h.logger.Error("Push broadcast failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
