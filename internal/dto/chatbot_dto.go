package dto

import (
	"career-path-be/pkg/guidance/clarify"
	"career-path-be/pkg/guidance/intent"
)

type AskRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Question  string `json:"question" validate:"required"`
}

// AskMetadata is the transparency block attached to every answer.
type AskMetadata struct {
	GPTEnhanced          bool             `json:"gpt_enhanced"`
	DataAvailable        bool             `json:"data_available"`
	Entities             intent.EntitySet `json:"entities"`
	ClarificationOptions []clarify.Option `json:"clarification_options,omitempty"`
}

// AskResponse is the turn-level answer. Verified is always true by
// construction: the answer text only ever originates from verified records
// and fixed templates, never from the rewrite model.
type AskResponse struct {
	SessionID  string      `json:"session_id"`
	Answer     string      `json:"answer"`
	Type       string      `json:"type"`
	Intent     string      `json:"intent"`
	Confidence float64     `json:"confidence"`
	Source     string      `json:"source"`
	Verified   bool        `json:"verified"`
	Metadata   AskMetadata `json:"metadata"`
}

type CreateSessionResponse struct {
	ID string `json:"id"`
}

type StreamOptionDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type StreamListResponse struct {
	Class   string            `json:"class"`
	Streams []StreamOptionDTO `json:"streams"`
}
