package analytics

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates the anonymized behavioural events the pipeline emits.
// Policy: entity ids and intent labels only, never raw user text or PII.
type EventType string

const (
	EventSessionStarted         EventType = "session_started"
	EventSessionEnded           EventType = "session_ended"
	EventChatbotQuery           EventType = "chatbot_query"
	EventCareerViewed           EventType = "career_viewed"
	EventExamQueried            EventType = "exam_queried"
	EventStreamSelected         EventType = "stream_selected"
	EventClarificationTriggered EventType = "clarification_triggered"
	EventClarificationResolved  EventType = "clarification_resolved"
	EventDataMiss               EventType = "data_miss"
	EventRewriteApplied         EventType = "rewrite_applied"
	EventRewriteFailed          EventType = "rewrite_failed"
)

// Event is one anonymized analytics record.
type Event struct {
	ID        string                 `json:"event_id"`
	Type      EventType              `json:"event_type"`
	Entity    string                 `json:"entity,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// NewEvent stamps an event with an anonymous id and the current time.
func NewEvent(eventType EventType, entity string, metadata map[string]interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Entity:    entity,
		Metadata:  metadata,
		Timestamp: time.Now(),
	}
}
