package attendance_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takumi/atelier/internal/domain/attendance"
	"github.com/takumi/atelier/internal/repository/mocks"
)

func TestAttendanceService_Clock_ValidatesDate(t *testing.T) {
	svc := attendance.NewService(&mocks.AttendanceRepository{}, nil)
	ctx := context.Background()

	for _, date := range []string{"", "2025/06/02", "2025-13-01", "yesterday"} {
		_, err := svc.Clock(ctx, "u1", date, attendance.Patch{})
		require.ErrorIs(t, err, attendance.ErrInvalidInput, "date %q", date)
	}

	_, err := svc.Clock(ctx, "", "2025-06-02", attendance.Patch{})
	require.ErrorIs(t, err, attendance.ErrInvalidInput)
}

func TestAttendanceService_Clock(t *testing.T) {
	ctx := context.Background()
	clockIn := "09:05"

	repo := &mocks.AttendanceRepository{}
	repo.On("Upsert", ctx, "u1", "2025-06-02", attendance.Patch{ClockIn: &clockIn}).
		Return(&attendance.Entry{ID: 1, UserID: "u1", Date: "2025-06-02", ClockIn: clockIn}, nil)

	svc := attendance.NewService(repo, nil)
	entry, err := svc.Clock(ctx, "u1", "2025-06-02", attendance.Patch{ClockIn: &clockIn})
	require.NoError(t, err)
	require.Equal(t, "09:05", entry.ClockIn)
	repo.AssertExpectations(t)
}

func TestAttendanceService_List_ValidatesMonth(t *testing.T) {
	svc := attendance.NewService(&mocks.AttendanceRepository{}, nil)
	ctx := context.Background()

	_, err := svc.List(ctx, "u1", "June 2025")
	require.ErrorIs(t, err, attendance.ErrInvalidInput)

	_, err = svc.List(ctx, "", "")
	require.ErrorIs(t, err, attendance.ErrInvalidInput)
}
