package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/takumi/atelier/internal/domain/attendance"
)

// AttendanceRepository implements attendance.Repository for SQLite
type AttendanceRepository struct {
	db *DB
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Upsert merges an entry on the (user_id, date) unique key in one statement
// and returns the stored row.
func (r *AttendanceRepository) Upsert(ctx context.Context, userID, date string, patch attendance.Patch) (*attendance.Entry, error) {
	query := `
		INSERT INTO attendance (user_id, date, clock_in, clock_out, break_minutes, status)
		VALUES (?, ?, ?, ?, COALESCE(?, 0), COALESCE(?, 'present'))
		ON CONFLICT(user_id, date) DO UPDATE SET
			clock_in      = COALESCE(?, clock_in),
			clock_out     = COALESCE(?, clock_out),
			break_minutes = COALESCE(?, break_minutes),
			status        = COALESCE(?, status)
	`

	_, err := r.db.ExecContext(ctx, query,
		userID, date,
		patch.ClockIn, patch.ClockOut, patch.BreakMinutes, patch.Status,
		patch.ClockIn, patch.ClockOut, patch.BreakMinutes, patch.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return r.get(ctx, userID, date)
}

// List returns a user's entries ascending by date, optionally restricted to
// one YYYY-MM month.
func (r *AttendanceRepository) List(ctx context.Context, userID, month string) ([]attendance.Entry, error) {
	query := `
		SELECT id, user_id, date, clock_in, clock_out, break_minutes, status
		FROM attendance
		WHERE user_id = ?
	`
	args := []any{userID}
	if month != "" {
		query += " AND date LIKE ? || '-%'"
		args = append(args, month)
	}
	query += " ORDER BY date ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	entries := []attendance.Entry{}
	for rows.Next() {
		entry, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance rows: %w", err)
	}

	return entries, nil
}

func (r *AttendanceRepository) get(ctx context.Context, userID, date string) (*attendance.Entry, error) {
	query := `
		SELECT id, user_id, date, clock_in, clock_out, break_minutes, status
		FROM attendance
		WHERE user_id = ? AND date = ?
	`

	entry, err := scanAttendance(r.db.QueryRowContext(ctx, query, userID, date))
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return entry, nil
}

func scanAttendance(row rowScanner) (*attendance.Entry, error) {
	var (
		entry              attendance.Entry
		clockIn, clockOut  sql.NullString
	)
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Date,
		&clockIn,
		&clockOut,
		&entry.BreakMinutes,
		&entry.Status,
	)
	if err != nil {
		return nil, err
	}

	entry.ClockIn = clockIn.String
	entry.ClockOut = clockOut.String
	return &entry, nil
}
