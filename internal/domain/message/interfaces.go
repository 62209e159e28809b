package message

import "context"

// Repository provides persistence for the message ledger. The store owns id
// assignment: ids are strictly increasing within the table and never reused.
type Repository interface {
	// ListLatest returns the most recent limit messages, oldest first.
	ListLatest(ctx context.Context, conversationID string, limit int) ([]Message, error)
	// ListSince returns every message with id > afterID, ascending.
	ListSince(ctx context.Context, conversationID string, afterID int64) ([]Message, error)
	// Insert appends one message and sets its store-assigned id.
	Insert(ctx context.Context, m *Message) error
	// ReplaceAll overwrites the conversation's history with msgs, in order.
	ReplaceAll(ctx context.Context, conversationID string, msgs []Message) error
}
