package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Service handles attendance operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new attendance service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Clock upserts the entry for (userID, date), merging only supplied fields.
// The date must be an ISO calendar day (YYYY-MM-DD).
func (s *Service) Clock(ctx context.Context, userID, date string, patch Patch) (*Entry, error) {
	if userID == "" || date == "" {
		return nil, ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidInput
	}

	entry, err := s.repo.Upsert(ctx, userID, date, patch)
	if err != nil {
		return nil, fmt.Errorf("upserting attendance: %w", err)
	}
	return entry, nil
}

// List returns a user's entries, optionally limited to one YYYY-MM month.
func (s *Service) List(ctx context.Context, userID, month string) ([]Entry, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	if month != "" {
		if _, err := time.Parse("2006-01", month); err != nil {
			return nil, ErrInvalidInput
		}
	}

	entries, err := s.repo.List(ctx, userID, month)
	if err != nil {
		return nil, fmt.Errorf("listing attendance: %w", err)
	}
	return entries, nil
}
