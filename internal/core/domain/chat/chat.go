package chat

import "time"

// MessageRequest is one user turn sent to the AI assistant upstream.
// Chat is never cached: the same prompt may legitimately yield a new
// answer, and the call is not idempotent on the upstream side.
type MessageRequest struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message" validate:"required"`
	// Locale hints the assistant's reply language, IETF tag.
	Locale string `json:"locale,omitempty"`
}

// MessageResponse is the assistant's reply.
type MessageResponse struct {
	ConversationID string       `json:"conversation_id"`
	Reply          string       `json:"reply"`
	Suggestions    []Suggestion `json:"suggestions,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}

// Suggestion is a follow-up the assistant proposes, optionally linked to
// a platform entity (a property or POI id).
type Suggestion struct {
	Label      string `json:"label"`
	EntityType string `json:"entity_type,omitempty"`
	EntityID   string `json:"entity_id,omitempty"`
}
