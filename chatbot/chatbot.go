package chatbot

import (
	"context"

	"elevate-bot/config"
	"elevate-bot/store"
	"elevate-bot/web/types"

	"go.uber.org/zap"
)

// remoteConfidence is the fixed placeholder confidence attached to every
// remote-fallback answer, including degraded canned replies. It is not a
// measured quantity.
const remoteConfidence = 0.6

// Completer is the remote completion service used when no knowledge entry
// answers confidently.
type Completer interface {
	Chat(ctx context.Context, messages []types.AgentMessage, temperature *float64) (string, error)
}

// HistoryStore keeps per-session conversation turns.
type HistoryStore interface {
	Get(sessionID string) []types.AgentMessage
	Append(sessionID string, turns ...types.AgentMessage)
}

// ResponseCache memoizes responses across sessions by normalized query text.
type ResponseCache interface {
	Get(query string) (store.CachedResponse, bool)
	Put(query string, response string, confidence float64)
}

// Result is the unified envelope returned for every processed query.
type Result struct {
	Response   string
	Confidence float64
	UsedRemote bool
}

// Chatbot arbitrates between the local knowledge base and the remote
// completion fallback, maintaining per-session history and a shared response
// cache along the way.
type Chatbot struct {
	cfg     *config.Config
	kb      []KnowledgeEntry
	llm     Completer
	history HistoryStore
	cache   ResponseCache
	logger  *zap.Logger
}

func New(cfg *config.Config, llm Completer, history HistoryStore, cache ResponseCache, logger *zap.Logger) *Chatbot {
	return &Chatbot{
		cfg:     cfg,
		kb:      KnowledgeBase(),
		llm:     llm,
		history: history,
		cache:   cache,
		logger:  logger,
	}
}

// ProcessChat runs one request/response cycle: cache lookup, local matching,
// remote fallback, then history and cache write-through. It never returns an
// error; degraded paths produce canned replies.
func (b *Chatbot) ProcessChat(ctx context.Context, query string, sessionID string) Result {
	if cached, ok := b.cache.Get(query); ok {
		// A cache hit never touches history
		b.logger.Debug("Cache hit", zap.String("query", store.CacheKey(query)))
		return Result{Response: cached.Response, Confidence: cached.Confidence}
	}

	history := b.history.Get(sessionID)

	if match, ok := b.findBestMatch(query); ok {
		b.logger.Info("Knowledge base match",
			zap.String("session_id", sessionID),
			zap.Float64("confidence", match.Confidence))

		b.recordExchange(sessionID, query, match.Answer)
		b.cache.Put(query, match.Answer, match.Confidence)
		return Result{Response: match.Answer, Confidence: match.Confidence}
	}

	b.logger.Info("No confident match, delegating to remote fallback",
		zap.String("session_id", sessionID))

	answer := b.queryRemote(ctx, query, history)

	b.recordExchange(sessionID, query, answer)
	b.cache.Put(query, answer, remoteConfidence)
	return Result{Response: answer, Confidence: remoteConfidence, UsedRemote: true}
}

func (b *Chatbot) recordExchange(sessionID, query, answer string) {
	b.history.Append(sessionID,
		types.AgentMessage{Role: "user", Content: query},
		types.AgentMessage{Role: "assistant", Content: answer},
	)
}
