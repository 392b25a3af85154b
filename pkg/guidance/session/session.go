package session

import (
	"time"

	"github.com/google/uuid"

	"career-path-be/pkg/guidance/clarify"
	"career-path-be/pkg/guidance/intent"
)

// HistoryEntry is one logged interaction inside a session. History lives only
// for the session's lifetime, nothing is persisted.
type HistoryEntry struct {
	Timestamp time.Time        `json:"timestamp"`
	Role      string           `json:"role"` // "user" or "bot"
	Message   string           `json:"message"`
	Entities  intent.EntitySet `json:"entities"`
}

// Context is the per-conversation memory. It is exclusively owned by the
// session store; the pipeline borrows a handle for one turn under the
// store's per-session lock and must not retain it.
type Context struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`

	CurrentStream string        `json:"current_stream,omitempty"`
	CurrentCareer string        `json:"current_career,omitempty"`
	LastIntent    intent.Intent `json:"last_intent,omitempty"`

	History          []HistoryEntry `json:"history,omitempty"`
	InteractionCount int            `json:"interaction_count"`

	AwaitingClarification bool            `json:"awaiting_clarification"`
	Clarification         *clarify.Prompt `json:"clarification,omitempty"`
	PendingQuestion       string          `json:"pending_question,omitempty"`
	ClarifyRetries        int             `json:"clarify_retries,omitempty"`
}

// New creates a fresh session context with a generated id.
func New() *Context {
	now := time.Now()
	return &Context{
		ID:           uuid.NewString(),
		CreatedAt:    now,
		LastActivity: now,
	}
}

// Remember updates session memory with the values resolved this turn.
// Empty arguments leave the existing memory untouched.
func (c *Context) Remember(stream, career string, in intent.Intent) {
	if stream != "" {
		c.CurrentStream = stream
	}
	if career != "" {
		c.CurrentCareer = career
	}
	if in != "" {
		c.LastIntent = in
	}
	c.LastActivity = time.Now()
}

// AddHistory appends one interaction and bumps the counter for user turns.
func (c *Context) AddHistory(role, message string, entities intent.EntitySet) {
	c.History = append(c.History, HistoryEntry{
		Timestamp: time.Now(),
		Role:      role,
		Message:   message,
		Entities:  entities,
	})
	if role == "user" {
		c.InteractionCount++
	}
}

// SetClarificationPending marks the session as waiting on a prompt and keeps
// the question that triggered it so it can be re-run after resolution.
func (c *Context) SetClarificationPending(prompt *clarify.Prompt, question string) {
	c.AwaitingClarification = true
	c.Clarification = prompt
	c.PendingQuestion = question
	c.ClarifyRetries = 0
}

// ClearClarification drops any outstanding prompt state.
func (c *Context) ClearClarification() {
	c.AwaitingClarification = false
	c.Clarification = nil
	c.PendingQuestion = ""
	c.ClarifyRetries = 0
}

// IsStale reports whether the session has been inactive past the timeout.
// Stale sessions must be observably absent on the next store read.
func (c *Context) IsStale(timeout time.Duration) bool {
	return time.Since(c.LastActivity) > timeout
}

// Repository is the session store contract. Every operation is atomic per
// session id; expired entries behave as absent on Get.
type Repository interface {
	Get(sessionID string) (*Context, bool)
	Save(ctx *Context)
	Delete(sessionID string)
}
