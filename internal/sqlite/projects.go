package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/takumi/atelier/internal/domain/project"
	"github.com/takumi/atelier/internal/repository"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = "id, name, icon, description, creator_id, linked_chats, members, game_settings, created_at"

// Insert creates a new project
func (r *ProjectRepository) Insert(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (id, name, icon, description, creator_id, linked_chats, members, game_settings, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Icon,
		p.Description,
		p.CreatorID,
		string(p.LinkedChats),
		string(p.Members),
		string(p.GameSettings),
		p.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	query := "SELECT " + projectColumns + " FROM projects WHERE id = ?"

	p, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

// List returns projects newest first, optionally filtered to those the user
// created or appears in by value inside members.
func (r *ProjectRepository) List(ctx context.Context, userID string) ([]project.Project, error) {
	query := "SELECT " + projectColumns + " FROM projects"
	args := []any{}
	if userID != "" {
		query += " WHERE creator_id = ? OR " + jsonMemberClause("members")
		args = append(args, userID, userID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

// Update applies a partial update in one statement: supplied fields replace,
// nil fields keep the stored value. Zero affected rows means the project
// doesn't exist.
func (r *ProjectRepository) Update(ctx context.Context, id string, patch project.Patch) error {
	query := `
		UPDATE projects SET
			name = COALESCE(?, name),
			icon = COALESCE(?, icon),
			description = COALESCE(?, description),
			linked_chats = COALESCE(?, linked_chats),
			members = COALESCE(?, members),
			game_settings = COALESCE(?, game_settings)
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		patch.Name,
		patch.Icon,
		patch.Description,
		jsonArg(patch.LinkedChats),
		jsonArg(patch.Members),
		jsonArg(patch.GameSettings),
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes the project and its data aggregate in one transaction
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM project_data WHERE project_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete project data: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetData retrieves the aggregate row for a project
func (r *ProjectRepository) GetData(ctx context.Context, projectID string) (*project.Data, error) {
	query := `
		SELECT project_id, gantt_tasks, milestones, todo_items, shared_links,
		       memos, events, category_order, holiday_settings
		FROM project_data
		WHERE project_id = ?
	`

	var (
		data                                              project.Data
		gantt, milestones, todos, links, memos            []byte
		events, order, holidays                           []byte
	)
	err := r.db.QueryRowContext(ctx, query, projectID).Scan(
		&data.ProjectID,
		&gantt,
		&milestones,
		&todos,
		&links,
		&memos,
		&events,
		&order,
		&holidays,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project data: %w", err)
	}

	data.GanttTasks = json.RawMessage(gantt)
	data.Milestones = json.RawMessage(milestones)
	data.TodoItems = json.RawMessage(todos)
	data.SharedLinks = json.RawMessage(links)
	data.Memos = json.RawMessage(memos)
	data.Events = json.RawMessage(events)
	data.CategoryOrder = json.RawMessage(order)
	data.HolidaySettings = json.RawMessage(holidays)
	return &data, nil
}

// UpsertData merges a partial aggregate in one atomic statement. On insert,
// omitted fields take the documented defaults; on update, supplied fields
// replace and omitted fields preserve the stored value. The per-field merge
// decision and the write happen in the same statement, so concurrent upserts
// never interleave field-by-field.
func (r *ProjectRepository) UpsertData(ctx context.Context, projectID string, patch project.DataPatch) error {
	query := `
		INSERT INTO project_data (
			project_id, gantt_tasks, milestones, todo_items, shared_links,
			memos, events, category_order, holiday_settings
		) VALUES (
			?,
			COALESCE(?, '[]'), COALESCE(?, '[]'), COALESCE(?, '[]'), COALESCE(?, '[]'),
			COALESCE(?, '[]'), COALESCE(?, '[]'), COALESCE(?, '[]'), COALESCE(?, '{}')
		)
		ON CONFLICT(project_id) DO UPDATE SET
			gantt_tasks      = COALESCE(?, gantt_tasks),
			milestones       = COALESCE(?, milestones),
			todo_items       = COALESCE(?, todo_items),
			shared_links     = COALESCE(?, shared_links),
			memos            = COALESCE(?, memos),
			events           = COALESCE(?, events),
			category_order   = COALESCE(?, category_order),
			holiday_settings = COALESCE(?, holiday_settings)
	`

	fields := []any{
		jsonArg(patch.GanttTasks),
		jsonArg(patch.Milestones),
		jsonArg(patch.TodoItems),
		jsonArg(patch.SharedLinks),
		jsonArg(patch.Memos),
		jsonArg(patch.Events),
		jsonArg(patch.CategoryOrder),
		jsonArg(patch.HolidaySettings),
	}

	args := make([]any, 0, 1+2*len(fields))
	args = append(args, projectID)
	args = append(args, fields...)
	args = append(args, fields...)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert project data: %w", err)
	}

	return nil
}

// jsonArg passes a JSON column value. An omitted field or an explicit JSON
// null both mean SQL NULL (keep the stored value / take the insert default),
// so a null never lands in a collection column.
func jsonArg(raw json.RawMessage) any {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return string(raw)
}

func scanProject(row rowScanner) (*project.Project, error) {
	var (
		p                      project.Project
		chats, members, settings []byte
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Icon,
		&p.Description,
		&p.CreatorID,
		&chats,
		&members,
		&settings,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.LinkedChats = json.RawMessage(chats)
	p.Members = json.RawMessage(members)
	p.GameSettings = json.RawMessage(settings)
	return &p, nil
}
