package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/takumi/atelier/internal/domain/user"
	"github.com/takumi/atelier/internal/repository"
)

// UserRepository implements user.Repository for SQLite
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "id, name, avatar, status, provider, provider_id, created_at"

// Insert creates a new user
func (r *UserRepository) Insert(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, name, avatar, status, provider, provider_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.Name,
		u.Avatar,
		u.Status,
		u.Provider,
		u.ProviderID,
		u.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Get retrieves a user by ID
func (r *UserRepository) Get(ctx context.Context, id string) (*user.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = ?"
	return r.scanOne(r.db.QueryRowContext(ctx, query, id), "get user")
}

// FindByProvider retrieves a user by provider identity
func (r *UserRepository) FindByProvider(ctx context.Context, provider, providerID string) (*user.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE provider = ? AND provider_id = ?"
	return r.scanOne(r.db.QueryRowContext(ctx, query, provider, providerID), "find user by provider")
}

// FindByName retrieves a user by case-insensitive exact name match
func (r *UserRepository) FindByName(ctx context.Context, name string) (*user.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE name = ? COLLATE NOCASE LIMIT 1"
	return r.scanOne(r.db.QueryRowContext(ctx, query, name), "find user by name")
}

// Search matches the query as a case-insensitive substring of name or id.
// LIKE metacharacters in the query match themselves, not wildcards.
func (r *UserRepository) Search(ctx context.Context, query string) ([]user.User, error) {
	stmt := `
		SELECT ` + userColumns + `
		FROM users
		WHERE name LIKE '%' || ? || '%' ESCAPE '\'
		   OR id LIKE '%' || ? || '%' ESCAPE '\'
		ORDER BY name
	`

	pattern := escapeLike(query)
	rows, err := r.db.QueryContext(ctx, stmt, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// UpdateStatus updates the presence status
func (r *UserRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.db.ExecContext(ctx, "UPDATE users SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
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

// AddFriend records a friendship edge; re-adding is a no-op
func (r *UserRepository) AddFriend(ctx context.Context, userID, friendID string) error {
	query := `
		INSERT INTO friendships (user_id, friend_id)
		VALUES (?, ?)
		ON CONFLICT(user_id, friend_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, userID, friendID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("failed to add friend: %w", err)
	}

	return nil
}

// ListFriends returns the user's friends with their profiles
func (r *UserRepository) ListFriends(ctx context.Context, userID string) ([]user.User, error) {
	query := `
		SELECT u.id, u.name, u.avatar, u.status, u.provider, u.provider_id, u.created_at
		FROM friendships f
		JOIN users u ON u.id = f.friend_id
		WHERE f.user_id = ?
		ORDER BY u.name
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *UserRepository) scanOne(row *sql.Row, op string) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Avatar,
		&u.Status,
		&u.Provider,
		&u.ProviderID,
		&u.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	return &u, nil
}

func scanUsers(rows *sql.Rows) ([]user.User, error) {
	users := []user.User{}
	for rows.Next() {
		var u user.User
		err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Avatar,
			&u.Status,
			&u.Provider,
			&u.ProviderID,
			&u.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}
