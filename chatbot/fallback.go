package chatbot

import (
	"context"
	"errors"

	apperrors "elevate-bot/errors"
	"elevate-bot/prompts"
	"elevate-bot/web/types"

	"go.uber.org/zap"
)

const (
	// fallbackReply is served whenever the remote completion service cannot
	// answer: missing credential, transport failure, malformed payload.
	fallbackReply = "I don't currently have that information. You can ask about schedule, speakers, registration, or venues for ELEVATE'26!"

	// emptyCompletionReply is served when the service answered but produced
	// no text.
	emptyCompletionReply = "I couldn't generate a response. Please try again!"

	// fallbackHistoryTurns bounds how much conversation context is sent along
	// with the query.
	fallbackHistoryTurns = 5
)

// queryRemote delegates an unmatched query to the completion service with the
// session's recent turns. It never fails: every error is absorbed into a
// canned reply.
func (b *Chatbot) queryRemote(ctx context.Context, query string, history []types.AgentMessage) string {
	if b.cfg.GroqAPIKey == "" {
		b.logger.Warn("Remote fallback requested without API credential")
		return fallbackReply
	}

	if len(history) > fallbackHistoryTurns {
		history = history[len(history)-fallbackHistoryTurns:]
	}

	messages := make([]types.AgentMessage, 0, len(history)+2)
	messages = append(messages, types.AgentMessage{Role: "system", Content: prompts.AssistantSystem()})
	messages = append(messages, history...)
	messages = append(messages, types.AgentMessage{Role: "user", Content: query})

	temperature := b.cfg.LLMTemperature
	answer, err := b.llm.Chat(ctx, messages, &temperature)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyCompletion) {
			b.logger.Warn("Completion service returned empty response")
			return emptyCompletionReply
		}
		b.logger.Error("Completion service failed", zap.Error(err))
		return fallbackReply
	}

	return answer
}
