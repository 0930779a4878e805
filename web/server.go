package web

import (
	"context"
	"net/http"

	"elevate-bot/chatbot"
	"elevate-bot/config"
	"elevate-bot/notify"
	"elevate-bot/store"
	"elevate-bot/web/handlers"
	"elevate-bot/web/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	router   *gin.Engine
	bot      *chatbot.Chatbot
	limiter  *store.RateLimiter
	notifier *notify.Service
	logger   *zap.Logger
	config   *config.Config
}

func NewServer(bot *chatbot.Chatbot, limiter *store.RateLimiter, notifier *notify.Service, logger *zap.Logger, config *config.Config) *Server {
	// Set Gin mode based on environment
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(func(c *gin.Context) {
		// Add logger to context
		c.Set("logger", logger)
		c.Next()
	})
	router.Use(middleware.SessionMiddleware())

	server := &Server{
		router:   router,
		bot:      bot,
		limiter:  limiter,
		notifier: notifier,
		logger:   logger,
		config:   config,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	chatHandler := handlers.NewChatHandler(s.bot, s.limiter, s.logger)
	infoHandler := handlers.NewInfoHandler()
	adminHandler := handlers.NewAdminHandler(s.config, s.notifier, s.logger)

	api := s.router.Group("/api")
	api.GET("/health", chatHandler.Health)
	api.POST("/chat", chatHandler.Chat)
	api.GET("/events", infoHandler.Events)
	api.GET("/venues", infoHandler.Venues)
	api.GET("/faqs", infoHandler.FAQs)
	api.GET("/notifications", adminHandler.Notifications)
	api.POST("/notifications/register-token", adminHandler.RegisterToken)
	api.POST("/admin/login", adminHandler.Login)
	api.POST("/admin/broadcast", adminHandler.Broadcast)
}

// Router exposes the configured engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context, addr string) error {
	s.logger.Info("Starting web server", zap.String("address", addr))

	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Web server failed to start", zap.Error(err))
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()

	s.logger.Info("Shutting down web server")
	return srv.Shutdown(context.Background())
}
