package chat

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

// Conversation kind filters accepted by List.
const (
	KindDirect = "direct"
	KindGroup  = "group"
)

// DefaultGroupIcon is used when group creation omits an icon.
const DefaultGroupIcon = "👥"

var emptyMembers = json.RawMessage(`[]`)

// Service is the conversation registry.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new conversation service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// List returns the user's conversations, newest first. Directs carry the
// counterpart's public profile; groups are those the user created or appears
// in by value inside members.
func (s *Service) List(ctx context.Context, userID, kind string) (*ConversationList, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	if kind != "" && kind != KindDirect && kind != KindGroup {
		return nil, ErrInvalidInput
	}

	list := &ConversationList{
		Directs: []DirectConversation{},
		Groups:  []GroupConversation{},
	}

	if kind == "" || kind == KindDirect {
		directs, err := s.repo.ListDirects(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("listing direct conversations: %w", err)
		}
		for i := range directs {
			normalizeCounterpart(&directs[i])
		}
		list.Directs = directs
	}

	if kind == "" || kind == KindGroup {
		groups, err := s.repo.ListGroups(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("listing group conversations: %w", err)
		}
		for i := range groups {
			if isNullJSON(groups[i].Members) {
				groups[i].Members = emptyMembers
			}
		}
		list.Groups = groups
	}

	return list, nil
}

// CreateDirect creates (or resolves) the direct conversation for a pair.
// The insert is insert-if-absent on the derived id, so duplicate and
// concurrent calls return the same conversation.
func (s *Service) CreateDirect(ctx context.Context, userID, friendID string) (*DirectConversation, error) {
	if userID == "" || friendID == "" || userID == friendID {
		return nil, ErrInvalidInput
	}

	a, b := userID, friendID
	if b < a {
		a, b = b, a
	}
	conv := &DirectConversation{
		ID:           DirectID(userID, friendID),
		ParticipantA: a,
		ParticipantB: b,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.InsertDirect(ctx, conv); err != nil {
		return nil, fmt.Errorf("creating direct conversation: %w", err)
	}

	stored, err := s.repo.GetDirect(ctx, conv.ID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("reading direct conversation: %w", err)
	}
	normalizeCounterpart(stored)

	return stored, nil
}

// CreateGroupRequest defines group creation inputs.
type CreateGroupRequest struct {
	Name        string
	Icon        string
	Description string
	CreatorID   string
	Members     json.RawMessage
}

// CreateGroup creates a group conversation with defaulted optional fields.
func (s *Service) CreateGroup(ctx context.Context, req CreateGroupRequest) (*GroupConversation, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	g := &GroupConversation{
		ID:          "grp_" + uuid.NewString(),
		Name:        req.Name,
		Icon:        req.Icon,
		Description: req.Description,
		CreatorID:   req.CreatorID,
		Members:     req.Members,
		CreatedAt:   time.Now(),
	}
	if g.Icon == "" {
		g.Icon = DefaultGroupIcon
	}
	if isNullJSON(g.Members) {
		g.Members = emptyMembers
	}

	if err := s.repo.InsertGroup(ctx, g); err != nil {
		return nil, fmt.Errorf("creating group conversation: %w", err)
	}

	s.logger.Info("group created", "id", g.ID, "name", g.Name)
	return g, nil
}

// isNullJSON reports whether a raw field was omitted or sent as JSON null;
// both count as "not supplied", never as a stored null.
func isNullJSON(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// normalizeCounterpart fills placeholder display values when the counterpart
// profile row is missing rather than failing the read.
func normalizeCounterpart(conv *DirectConversation) {
	if conv.Counterpart.Name == "" {
		conv.Counterpart.Name = "Unknown"
	}
	if conv.Counterpart.Status == "" {
		conv.Counterpart.Status = "offline"
	}
}
