package message

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// SnapshotLimit caps uncursored reads at the most recent messages; very long
// histories return only this tail, oldest-within-the-window first.
const SnapshotLimit = 100

var emptyReactions = json.RawMessage(`[]`)

// Service is the message ledger.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new message service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// List returns a conversation's messages in ascending order. With a nil
// cursor it returns the capped snapshot; with a cursor it returns every
// message strictly after it, which is the polling primitive.
func (s *Service) List(ctx context.Context, conversationID string, after *int64) ([]Message, error) {
	if conversationID == "" {
		return nil, ErrInvalidInput
	}

	var (
		msgs []Message
		err  error
	)
	if after == nil {
		msgs, err = s.repo.ListLatest(ctx, conversationID, SnapshotLimit)
	} else {
		msgs, err = s.repo.ListSince(ctx, conversationID, *after)
	}
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}

	for i := range msgs {
		normalize(&msgs[i])
	}
	return msgs, nil
}

// AppendRequest defines message append inputs.
type AppendRequest struct {
	ConversationID string
	SenderID       string
	SenderName     string
	Content        string
	ReplyTo        *int64
}

// Append stores one message with a server-side timestamp and returns the
// fully materialized record including its store-assigned id.
func (s *Service) Append(ctx context.Context, req AppendRequest) (*Message, error) {
	if req.ConversationID == "" || req.SenderID == "" || req.SenderName == "" || req.Content == "" {
		return nil, ErrInvalidInput
	}

	m := &Message{
		ConversationID: req.ConversationID,
		SenderID:       req.SenderID,
		SenderName:     req.SenderName,
		Content:        req.Content,
		Reactions:      emptyReactions,
		ReplyTo:        req.ReplyTo,
		IsEdited:       false,
		Timestamp:      time.Now(),
	}
	if err := s.repo.Insert(ctx, m); err != nil {
		return nil, fmt.Errorf("appending message: %w", err)
	}

	m.FillLabels()
	return m, nil
}

// ReplaceAll overwrites a conversation's history with the supplied sequence,
// normalizing absent sender/timestamp/reactions fields to defaults.
func (s *Service) ReplaceAll(ctx context.Context, conversationID string, msgs []Message) error {
	if conversationID == "" {
		return ErrInvalidInput
	}

	now := time.Now()
	for i := range msgs {
		msgs[i].ConversationID = conversationID
		if msgs[i].SenderID == "" {
			msgs[i].SenderID = "unknown"
		}
		if msgs[i].SenderName == "" {
			msgs[i].SenderName = "Unknown"
		}
		if msgs[i].Timestamp.IsZero() {
			msgs[i].Timestamp = now
		}
		if isNullJSON(msgs[i].Reactions) {
			msgs[i].Reactions = emptyReactions
		}
	}

	if err := s.repo.ReplaceAll(ctx, conversationID, msgs); err != nil {
		return fmt.Errorf("replacing messages: %w", err)
	}

	s.logger.Info("conversation history replaced", "conversation", conversationID, "count", len(msgs))
	return nil
}

func normalize(m *Message) {
	if isNullJSON(m.Reactions) {
		m.Reactions = emptyReactions
	}
	m.FillLabels()
}

// isNullJSON reports whether a raw field was omitted or sent as JSON null;
// both count as "not supplied", never as a stored null.
func isNullJSON(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
