package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"elevate-bot/config"
	apperrors "elevate-bot/errors"
	"elevate-bot/web/types"

	"go.uber.org/zap"
)

// pushMessage is one Expo push payload.
type pushMessage struct {
	To    string            `json:"to"`
	Sound string            `json:"sound"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// Service registers device push tokens and broadcasts notifications to them
// through the Expo push gateway, keeping an in-memory feed of what was sent.
type Service struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     *zap.Logger

	mu      sync.Mutex
	tokens  map[string]struct{}
	history []types.Notification
}

func NewService(cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
		tokens:     make(map[string]struct{}),
		history: []types.Notification{
			{
				ID:     "1",
				Title:  "Welcome to ELEVATE'26",
				Body:   "Thank you for joining! The Startup Conclave starts on Feb 24th.",
				Time:   "2h ago",
				Unread: true,
			},
		},
	}
}

// RegisterToken records a device token for future broadcasts.
func (s *Service) RegisterToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = struct{}{}
	s.logger.Info("Registered push token", zap.Int("total", len(s.tokens)))
}

// TokenCount reports how many devices are registered.
func (s *Service) TokenCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}

// History returns the notification feed, newest first.
func (s *Service) History() []types.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Notification, len(s.history))
	copy(out, s.history)
	return out
}

// Broadcast sends the notification to every registered device and prepends it
// to the feed on success.
func (s *Service) Broadcast(ctx context.Context, title, body string) error {
	s.mu.Lock()
	messages := make([]pushMessage, 0, len(s.tokens))
	for token := range s.tokens {
		messages = append(messages, pushMessage{
			To:    token,
			Sound: "default",
			Title: title,
			Body:  body,
		})
	}
	s.mu.Unlock()

	s.logger.Info("Broadcasting notification",
		zap.String("title", title),
		zap.Int("devices", len(messages)))

	jsonBody, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("marshal push messages: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.ExpoPushURL, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip, deflate")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return apperrors.WrapError(apperrors.ErrPushDelivery, err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read push response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return apperrors.WrapErrorf(apperrors.ErrPushDelivery, "push gateway status %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
	}

	s.mu.Lock()
	s.history = append([]types.Notification{{
		ID:     fmt.Sprintf("%d", time.Now().UnixMilli()),
		Title:  title,
		Body:   body,
		Time:   "Just now",
		Unread: true,
	}}, s.history...)
	s.mu.Unlock()

	return nil
}
