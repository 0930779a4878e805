package handlers

import (
	"net/http"

	"elevate-bot/chatbot"

	"github.com/gin-gonic/gin"
)

// InfoHandler serves read-only projections of the static event data.
type InfoHandler struct{}

func NewInfoHandler() *InfoHandler {
	return &InfoHandler{}
}

func (h *InfoHandler) Events(c *gin.Context) {
	c.JSON(http.StatusOK, chatbot.EventInfo())
}

func (h *InfoHandler) Venues(c *gin.Context) {
	c.JSON(http.StatusOK, chatbot.Venues())
}

func (h *InfoHandler) FAQs(c *gin.Context) {
	c.JSON(http.StatusOK, chatbot.FAQs())
}
