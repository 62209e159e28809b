package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takumi/atelier/internal/domain/attendance"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestAttendanceRepository_Upsert(t *testing.T) {
	db := NewTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	entry, err := repo.Upsert(ctx, "u1", "2025-06-02", attendance.Patch{
		ClockIn: strPtr("09:00"),
	})
	require.NoError(t, err)
	require.Equal(t, "09:00", entry.ClockIn)
	require.Equal(t, "present", entry.Status)
	require.Zero(t, entry.BreakMinutes)

	// a second upsert on the same (user, date) merges instead of duplicating
	entry, err = repo.Upsert(ctx, "u1", "2025-06-02", attendance.Patch{
		ClockOut:     strPtr("18:00"),
		BreakMinutes: intPtr(60),
	})
	require.NoError(t, err)
	require.Equal(t, "09:00", entry.ClockIn, "clock-in must survive the merge")
	require.Equal(t, "18:00", entry.ClockOut)
	require.Equal(t, 60, entry.BreakMinutes)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM attendance").Scan(&count))
	require.Equal(t, 1, count)
}

func TestAttendanceRepository_List(t *testing.T) {
	db := NewTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	for _, date := range []string{"2025-06-03", "2025-06-01", "2025-07-01"} {
		_, err := repo.Upsert(ctx, "u1", date, attendance.Patch{Status: strPtr("present")})
		require.NoError(t, err)
	}
	_, err := repo.Upsert(ctx, "u2", "2025-06-01", attendance.Patch{Status: strPtr("remote")})
	require.NoError(t, err)

	entries, err := repo.List(ctx, "u1", "")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "2025-06-01", entries[0].Date, "ascending by date")

	june, err := repo.List(ctx, "u1", "2025-06")
	require.NoError(t, err)
	require.Len(t, june, 2)

	empty, err := repo.List(ctx, "u3", "")
	require.NoError(t, err)
	require.Empty(t, empty)
}
