package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/takumi/atelier/internal/domain/chat"
	"github.com/takumi/atelier/internal/repository"
)

// ConversationRepository implements chat.Repository for SQLite
type ConversationRepository struct {
	db *DB
}

// NewConversationRepository creates a new ConversationRepository
func NewConversationRepository(db *DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// InsertDirect inserts a direct conversation if its derived id is absent.
// An existing row is left untouched, which makes creation idempotent under
// concurrent duplicate calls.
func (r *ConversationRepository) InsertDirect(ctx context.Context, conv *chat.DirectConversation) error {
	query := `
		INSERT INTO direct_conversations (id, participant_a, participant_b, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query,
		conv.ID,
		conv.ParticipantA,
		conv.ParticipantB,
		conv.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create direct conversation: %w", err)
	}

	return nil
}

// counterpartJoin resolves the other participant relative to the viewer.
const counterpartJoin = `
	SELECT d.id, d.participant_a, d.participant_b, d.created_at,
	       CASE WHEN d.participant_a = ? THEN d.participant_b ELSE d.participant_a END,
	       u.name, u.avatar, u.status
	FROM direct_conversations d
	LEFT JOIN users u
	  ON u.id = CASE WHEN d.participant_a = ? THEN d.participant_b ELSE d.participant_a END
`

// GetDirect retrieves a direct conversation with the counterpart profile
// resolved from the viewer's perspective.
func (r *ConversationRepository) GetDirect(ctx context.Context, id, viewerID string) (*chat.DirectConversation, error) {
	query := counterpartJoin + " WHERE d.id = ?"

	conv, err := scanDirect(r.db.QueryRowContext(ctx, query, viewerID, viewerID, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get direct conversation: %w", err)
	}

	return conv, nil
}

// ListDirects returns the user's direct conversations, newest first.
func (r *ConversationRepository) ListDirects(ctx context.Context, userID string) ([]chat.DirectConversation, error) {
	query := counterpartJoin + `
		WHERE d.participant_a = ? OR d.participant_b = ?
		ORDER BY d.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, userID, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list direct conversations: %w", err)
	}
	defer rows.Close()

	directs := []chat.DirectConversation{}
	for rows.Next() {
		conv, err := scanDirect(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan direct conversation: %w", err)
		}
		directs = append(directs, *conv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating direct conversation rows: %w", err)
	}

	return directs, nil
}

// InsertGroup creates a group conversation
func (r *ConversationRepository) InsertGroup(ctx context.Context, g *chat.GroupConversation) error {
	query := `
		INSERT INTO group_conversations (id, name, icon, description, creator_id, members, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.Name,
		g.Icon,
		g.Description,
		g.CreatorID,
		string(g.Members),
		g.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create group conversation: %w", err)
	}

	return nil
}

// ListGroups returns groups the user created or appears in by value inside
// members, newest first.
func (r *ConversationRepository) ListGroups(ctx context.Context, userID string) ([]chat.GroupConversation, error) {
	query := `
		SELECT id, name, icon, description, creator_id, members, created_at
		FROM group_conversations
		WHERE creator_id = ? OR ` + jsonMemberClause("members") + `
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group conversations: %w", err)
	}
	defer rows.Close()

	groups := []chat.GroupConversation{}
	for rows.Next() {
		var (
			g       chat.GroupConversation
			members []byte
		)
		err := rows.Scan(
			&g.ID,
			&g.Name,
			&g.Icon,
			&g.Description,
			&g.CreatorID,
			&members,
			&g.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group conversation: %w", err)
		}
		g.Members = json.RawMessage(members)
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group conversation rows: %w", err)
	}

	return groups, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDirect(row rowScanner) (*chat.DirectConversation, error) {
	var (
		conv                 chat.DirectConversation
		name, avatar, status sql.NullString
	)
	err := row.Scan(
		&conv.ID,
		&conv.ParticipantA,
		&conv.ParticipantB,
		&conv.CreatedAt,
		&conv.Counterpart.ID,
		&name,
		&avatar,
		&status,
	)
	if err != nil {
		return nil, err
	}

	conv.Counterpart.Name = name.String
	conv.Counterpart.Avatar = avatar.String
	conv.Counterpart.Status = status.String
	return &conv, nil
}
