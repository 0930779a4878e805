package chatbot

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"elevate-bot/config"
	apperrors "elevate-bot/errors"
	"elevate-bot/store"
	"elevate-bot/web/types"

	"go.uber.org/zap"
)

type stubCompleter struct {
	reply string
	err   error
	calls int
	seen  [][]types.AgentMessage
}

func (s *stubCompleter) Chat(_ context.Context, messages []types.AgentMessage, _ *float64) (string, error) {
	s.calls++
	s.seen = append(s.seen, messages)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestBot(t *testing.T, apiKey string, llm Completer) (*Chatbot, *store.HistoryStore) {
	t.Helper()
	cfg := &config.Config{
		GroqAPIKey:     apiKey,
		MatchThreshold: 0.6,
		LLMTemperature: 0.7,
	}
	history := store.NewHistoryStore(6)
	cache, err := store.NewResponseCache(64, 5*time.Minute)
	if err != nil {
		t.Fatalf("new response cache: %v", err)
	}
	return New(cfg, llm, history, cache, zap.NewNop()), history
}

func TestProcessChatLocalMatchIsDeterministic(t *testing.T) {
	llm := &stubCompleter{reply: "remote answer"}
	bot, _ := newTestBot(t, "test-key", llm)

	first := bot.ProcessChat(context.Background(), "when is the elevate conclave", "s1")
	second := bot.ProcessChat(context.Background(), "when is the elevate conclave", "s1")

	if first.UsedRemote || second.UsedRemote {
		t.Fatal("local match must not reach the remote fallback")
	}
	if llm.calls != 0 {
		t.Fatalf("completer called %d times for a local match", llm.calls)
	}
	if first.Response != second.Response || first.Confidence != second.Confidence {
		t.Errorf("repeated query diverged: %+v vs %+v", first, second)
	}
	if first.Confidence < 0.6 {
		t.Errorf("confidence %v below acceptance threshold", first.Confidence)
	}
}

func TestProcessChatCacheHitSkipsHistory(t *testing.T) {
	bot, history := newTestBot(t, "", &stubCompleter{})

	bot.ProcessChat(context.Background(), "Who are the speakers?", "s1")
	if got := len(history.Get("s1")); got != 2 {
		t.Fatalf("expected one recorded exchange, got %d turns", got)
	}

	// Same normalized query from another session hits the shared cache and
	// must leave both histories alone.
	result := bot.ProcessChat(context.Background(), "  who are the SPEAKERS?  ", "s2")
	if result.UsedRemote {
		t.Error("cache hit reported as remote")
	}
	if got := len(history.Get("s2")); got != 0 {
		t.Errorf("cache hit touched history: %d turns", got)
	}
	if got := len(history.Get("s1")); got != 2 {
		t.Errorf("cache hit touched original session history: %d turns", got)
	}
}

func TestProcessChatFallbackWithoutCredential(t *testing.T) {
	llm := &stubCompleter{reply: "should never be used"}
	bot, _ := newTestBot(t, "", llm)

	result := bot.ProcessChat(context.Background(), "recommend a good pizza place nearby", "s1")

	if !result.UsedRemote {
		t.Error("unmatched query should report the remote path")
	}
	if result.Response != fallbackReply {
		t.Errorf("expected canned redirect, got %q", result.Response)
	}
	if result.Confidence != remoteConfidence {
		t.Errorf("remote confidence = %v, want %v", result.Confidence, remoteConfidence)
	}
	if llm.calls != 0 {
		t.Error("completer must not be called without a credential")
	}
}

func TestProcessChatFallbackAbsorbsFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "transport_failure", err: errors.New("connection refused"), want: fallbackReply},
		{name: "empty_completion", err: apperrors.ErrEmptyCompletion, want: emptyCompletionReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot, _ := newTestBot(t, "test-key", &stubCompleter{err: tt.err})

			result := bot.ProcessChat(context.Background(), "recommend a good pizza place nearby", "s1")
			if !result.UsedRemote {
				t.Error("failed fallback should still report the remote path")
			}
			if result.Response != tt.want {
				t.Errorf("response = %q, want %q", result.Response, tt.want)
			}
			if result.Confidence != remoteConfidence {
				t.Errorf("confidence = %v, want %v", result.Confidence, remoteConfidence)
			}
		})
	}
}

func TestProcessChatFallbackSendsBoundedHistory(t *testing.T) {
	llm := &stubCompleter{reply: "remote answer"}
	bot, history := newTestBot(t, "test-key", llm)

	for i := 0; i < 8; i++ {
		history.Append("s1", types.AgentMessage{Role: "user", Content: fmt.Sprintf("turn %d", i)})
	}

	bot.ProcessChat(context.Background(), "recommend a good pizza place nearby", "s1")

	if llm.calls != 1 {
		t.Fatalf("completer calls = %d, want 1", llm.calls)
	}
	messages := llm.seen[0]
	// system prompt + at most 5 history turns + the query itself
	if len(messages) != 7 {
		t.Fatalf("sent %d messages, want 7", len(messages))
	}
	if messages[0].Role != "system" {
		t.Errorf("first message role = %q, want system", messages[0].Role)
	}
	last := messages[len(messages)-1]
	if last.Role != "user" || last.Content != "recommend a good pizza place nearby" {
		t.Errorf("last message = %+v, want the user query", last)
	}
}

func TestProcessChatHistoryStaysBounded(t *testing.T) {
	bot, history := newTestBot(t, "", &stubCompleter{})

	queries := []string{
		"kubernetes cluster sizing",
		"favorite programming language",
		"weather forecast tomorrow",
		"nearest railway station",
		"cricket match score today",
	}
	for _, q := range queries {
		bot.ProcessChat(context.Background(), q, "s1")
	}

	turns := history.Get("s1")
	if len(turns) != 6 {
		t.Fatalf("history length = %d, want 6", len(turns))
	}

	// The three most recent exchanges survive in original order
	for i, wantQuery := range queries[2:] {
		user := turns[i*2]
		if user.Role != "user" || user.Content != wantQuery {
			t.Errorf("turn %d = %+v, want user %q", i*2, user, wantQuery)
		}
		if turns[i*2+1].Role != "assistant" {
			t.Errorf("turn %d role = %q, want assistant", i*2+1, turns[i*2+1].Role)
		}
	}
}
