package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/takumi/atelier/internal/repository"
)

// Service handles user operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new user service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// RegisterRequest defines register-or-login inputs.
type RegisterRequest struct {
	Name       string
	Avatar     string
	Provider   string
	ProviderID string
}

// Register resolves or creates a user. Lookup precedence: provider identity
// first, then case-insensitive name. Never creates a case-insensitive
// duplicate of an existing name.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	if req.Provider != "" && req.ProviderID != "" {
		existing, err := s.repo.FindByProvider(ctx, req.Provider, req.ProviderID)
		if err == nil {
			return &RegisterResult{User: existing, IsNew: false}, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("looking up provider identity: %w", err)
		}
	}

	existing, err := s.repo.FindByName(ctx, name)
	if err == nil {
		return &RegisterResult{User: existing, IsNew: false}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("looking up user by name: %w", err)
	}

	u := &User{
		ID:         "usr_" + uuid.NewString(),
		Name:       name,
		Avatar:     req.Avatar,
		Status:     "online",
		Provider:   req.Provider,
		ProviderID: req.ProviderID,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.Insert(ctx, u); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user registered", "id", u.ID, "name", u.Name)
	return &RegisterResult{User: u, IsNew: true}, nil
}

// Get fetches a user by ID.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

// Search matches the query as a case-insensitive substring of name or id.
func (s *Service) Search(ctx context.Context, query string) ([]User, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrInvalidInput
	}
	users, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching users: %w", err)
	}
	return users, nil
}

// SetStatus updates the mutable presence status.
func (s *Service) SetStatus(ctx context.Context, id, status string) error {
	if id == "" || status == "" {
		return ErrInvalidInput
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("updating status: %w", err)
	}
	return nil
}

// AddFriend records a friendship edge. Adding an existing edge is a no-op.
func (s *Service) AddFriend(ctx context.Context, userID, friendID string) error {
	if userID == "" || friendID == "" || userID == friendID {
		return ErrInvalidInput
	}
	if err := s.repo.AddFriend(ctx, userID, friendID); err != nil {
		return fmt.Errorf("adding friend: %w", err)
	}
	return nil
}

// ListFriends returns the user's friends with their public profiles.
func (s *Service) ListFriends(ctx context.Context, userID string) ([]User, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	friends, err := s.repo.ListFriends(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing friends: %w", err)
	}
	return friends, nil
}
