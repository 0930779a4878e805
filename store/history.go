package store

import (
	"sync"

	"elevate-bot/web/types"
)

// HistoryStore keeps per-session conversation turns in memory for the
// lifetime of the process. Entries are never destroyed; each session is a
// lightweight capped slice so staleness is acceptable.
type HistoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]types.AgentMessage
	maxTurns int
}

func NewHistoryStore(maxTurns int) *HistoryStore {
	return &HistoryStore{
		sessions: make(map[string][]types.AgentMessage),
		maxTurns: maxTurns,
	}
}

// Get returns a copy of the session's turns, oldest first.
func (s *HistoryStore) Get(sessionID string) []types.AgentMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.sessions[sessionID]
	out := make([]types.AgentMessage, len(turns))
	copy(out, turns)
	return out
}

// Append adds turns to the session and drops the oldest entries beyond the
// configured cap.
func (s *HistoryStore) Append(sessionID string, turns ...types.AgentMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.sessions[sessionID], turns...)
	if len(history) > s.maxTurns {
		history = history[len(history)-s.maxTurns:]
	}
	s.sessions[sessionID] = history
}
