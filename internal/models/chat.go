package models

import "time"

// ChatMessage is a single entry in a war room conversation. Messages are
// room-scoped and never persisted.
type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	IsSystem  bool      `json:"isSystem,omitempty"`
}

// SendChatRequest is the payload for posting a chat message
type SendChatRequest struct {
	Text string `json:"text" binding:"required"`
}
