package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/takumi/atelier/internal/domain/message"
)

// MessageRepository implements message.Repository for SQLite. Message ids
// come from the table's AUTOINCREMENT sequence: strictly increasing, never
// reused, which keeps cursor polling gap-free.
type MessageRepository struct {
	db *DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *DB) *MessageRepository {
	return &MessageRepository{db: db}
}

const messageColumns = "id, conversation_id, sender_id, sender_name, content, reactions, reply_to, is_edited, created_at"

// ListLatest returns the most recent limit messages, oldest first. The query
// runs descending to use the (conversation_id, id) index, then the slice is
// reversed.
func (r *MessageRepository) ListLatest(ctx context.Context, conversationID string, limit int) ([]message.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE conversation_id = ?
		ORDER BY id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, conversationID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	msgs, err := scanMessages(rows)
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// ListSince returns every message with id strictly greater than afterID,
// ascending.
func (r *MessageRepository) ListSince(ctx context.Context, conversationID string, afterID int64) ([]message.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE conversation_id = ? AND id > ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, conversationID, afterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages since cursor: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// Insert appends one message and sets its store-assigned id
func (r *MessageRepository) Insert(ctx context.Context, m *message.Message) error {
	id, err := insertMessage(ctx, r.db.DB, m)
	if err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	m.ID = id
	return nil
}

// ReplaceAll deletes the conversation's history and inserts msgs in order,
// all inside one transaction.
func (r *MessageRepository) ReplaceAll(ctx context.Context, conversationID string, msgs []message.Message) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM messages WHERE conversation_id = ?", conversationID); err != nil {
		return fmt.Errorf("failed to clear messages: %w", err)
	}

	for i := range msgs {
		id, err := insertMessage(ctx, tx, &msgs[i])
		if err != nil {
			return fmt.Errorf("failed to insert message %d: %w", i, err)
		}
		msgs[i].ID = id
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertMessage(ctx context.Context, db execer, m *message.Message) (int64, error) {
	query := `
		INSERT INTO messages (conversation_id, sender_id, sender_name, content, reactions, reply_to, is_edited, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	edited := 0
	if m.IsEdited {
		edited = 1
	}

	var replyTo any
	if m.ReplyTo != nil {
		replyTo = *m.ReplyTo
	}

	result, err := db.ExecContext(ctx, query,
		m.ConversationID,
		m.SenderID,
		m.SenderName,
		m.Content,
		string(m.Reactions),
		replyTo,
		edited,
		m.Timestamp,
	)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

func scanMessages(rows *sql.Rows) ([]message.Message, error) {
	msgs := []message.Message{}
	for rows.Next() {
		var (
			m         message.Message
			reactions []byte
			replyTo   sql.NullInt64
			edited    int
		)
		err := rows.Scan(
			&m.ID,
			&m.ConversationID,
			&m.SenderID,
			&m.SenderName,
			&m.Content,
			&reactions,
			&replyTo,
			&edited,
			&m.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}

		m.Reactions = json.RawMessage(reactions)
		if replyTo.Valid {
			id := replyTo.Int64
			m.ReplyTo = &id
		}
		m.IsEdited = edited != 0
		msgs = append(msgs, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}

	return msgs, nil
}
