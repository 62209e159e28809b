package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/takumi/atelier/internal/repository"
)

var (
	emptyArray  = json.RawMessage(`[]`)
	emptyObject = json.RawMessage(`{}`)
)

// Service handles project and project-data operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	ID           string
	Name         string
	Icon         string
	Description  string
	CreatorID    string
	LinkedChats  json.RawMessage
	Members      json.RawMessage
	GameSettings json.RawMessage
}

// Create creates a new project. The id is caller-supplied or generated.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = "prj_" + uuid.NewString()
	}

	p := &Project{
		ID:           id,
		Name:         req.Name,
		Icon:         req.Icon,
		Description:  req.Description,
		CreatorID:    req.CreatorID,
		LinkedChats:  req.LinkedChats,
		Members:      req.Members,
		GameSettings: req.GameSettings,
		CreatedAt:    time.Now(),
	}
	normalizeProject(p)

	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.logger.Info("project created", "id", p.ID, "name", p.Name)
	return p, nil
}

// List returns projects, optionally filtered to one user's membership.
func (s *Service) List(ctx context.Context, userID string) ([]Project, error) {
	projects, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	for i := range projects {
		normalizeProject(&projects[i])
	}
	return projects, nil
}

// Update applies a partial update; omitted fields keep their stored values.
// Updating a project that doesn't exist reports not-found (unlike the data
// aggregate, which upserts — the asymmetry is deliberate).
func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Project, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	if err := s.repo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("updating project: %w", err)
	}

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reading updated project: %w", err)
	}
	normalizeProject(p)
	return p, nil
}

// Delete removes the project and cascades to its data aggregate.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}
	s.logger.Info("project deleted", "id", id)
	return nil
}

// GetData returns the stored aggregate, or the default empty aggregate when
// none exists. The read never creates a row.
func (s *Service) GetData(ctx context.Context, projectID string) (*Data, error) {
	if projectID == "" {
		return nil, ErrInvalidInput
	}
	data, err := s.repo.GetData(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return DefaultData(projectID), nil
		}
		return nil, fmt.Errorf("getting project data: %w", err)
	}
	return data, nil
}

// UpsertData merges a partial aggregate in one atomic insert-or-update:
// supplied fields (including explicit empty collections) replace, omitted
// fields preserve, and the insert path uses the documented defaults.
func (s *Service) UpsertData(ctx context.Context, projectID string, patch DataPatch) error {
	if projectID == "" {
		return ErrInvalidInput
	}
	if err := s.repo.UpsertData(ctx, projectID, patch); err != nil {
		return fmt.Errorf("upserting project data: %w", err)
	}
	return nil
}

func normalizeProject(p *Project) {
	if isNullJSON(p.LinkedChats) {
		p.LinkedChats = emptyArray
	}
	if isNullJSON(p.Members) {
		p.Members = emptyArray
	}
	if isNullJSON(p.GameSettings) {
		p.GameSettings = emptyObject
	}
}

// isNullJSON reports whether a raw field was omitted or sent as JSON null;
// both count as "not supplied", never as a stored null.
func isNullJSON(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
