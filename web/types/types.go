package types

import "time"

// AgentMessage represents a message in the format expected by the LLM.
type AgentMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// ChatResponse is the success envelope of POST /api/chat.
type ChatResponse struct {
	Response   string  `json:"response"`
	Confidence float64 `json:"confidence"`
	UsedGroq   bool    `json:"used_groq"`
}

// ChatError is the error envelope. Response carries a user-facing message
// alongside the machine-facing error string where the client can still
// render something useful (rate limiting, internal errors).
type ChatError struct {
	Error      string  `json:"error"`
	Response   string  `json:"response,omitempty"`
	Confidence float64 `json:"confidence"`
	UsedGroq   bool    `json:"used_groq"`
}

// FAQ is one public knowledge-base entry projection.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// ScheduleItem is one entry in the detailed event schedule.
type ScheduleItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Time        string `json:"time"`
	Date        string `json:"date"`
	Venue       string `json:"venue"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// EventInfo is the full event projection served by GET /api/events.
type EventInfo struct {
	Name    string         `json:"name"`
	Summary string         `json:"summary"`
	Events  []ScheduleItem `json:"events"`
}

// Venue describes one physical venue and what happens there.
type Venue struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
}

// Notification is one broadcast shown in the notification feed.
type Notification struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Time   string `json:"time"`
	Unread bool   `json:"unread"`
}

// AdminLoginRequest is the body of POST /api/admin/login.
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// BroadcastRequest is the body of POST /api/admin/broadcast.
type BroadcastRequest struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	AdminToken string `json:"adminToken"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}
