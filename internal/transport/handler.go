package transport

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/takumi/atelier/internal/domain/attendance"
	"github.com/takumi/atelier/internal/domain/chat"
	"github.com/takumi/atelier/internal/domain/message"
	"github.com/takumi/atelier/internal/domain/project"
	"github.com/takumi/atelier/internal/domain/user"
	"github.com/takumi/atelier/internal/suggest"
)

// UserService defines user operations needed by the RPC surface.
type UserService interface {
	Register(ctx context.Context, req user.RegisterRequest) (*user.RegisterResult, error)
	Get(ctx context.Context, id string) (*user.User, error)
	Search(ctx context.Context, query string) ([]user.User, error)
	SetStatus(ctx context.Context, id, status string) error
	AddFriend(ctx context.Context, userID, friendID string) error
	ListFriends(ctx context.Context, userID string) ([]user.User, error)
}

// ChatService defines conversation operations needed by the RPC surface.
type ChatService interface {
	List(ctx context.Context, userID, kind string) (*chat.ConversationList, error)
	CreateDirect(ctx context.Context, userID, friendID string) (*chat.DirectConversation, error)
	CreateGroup(ctx context.Context, req chat.CreateGroupRequest) (*chat.GroupConversation, error)
}

// MessageService defines ledger operations needed by the RPC surface.
type MessageService interface {
	List(ctx context.Context, conversationID string, after *int64) ([]message.Message, error)
	Append(ctx context.Context, req message.AppendRequest) (*message.Message, error)
	ReplaceAll(ctx context.Context, conversationID string, msgs []message.Message) error
}

// ProjectService defines project operations needed by the RPC surface.
type ProjectService interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	List(ctx context.Context, userID string) ([]project.Project, error)
	Update(ctx context.Context, id string, patch project.Patch) (*project.Project, error)
	Delete(ctx context.Context, id string) error
	GetData(ctx context.Context, projectID string) (*project.Data, error)
	UpsertData(ctx context.Context, projectID string, patch project.DataPatch) error
}

// AttendanceService defines attendance operations needed by the RPC surface.
type AttendanceService interface {
	Clock(ctx context.Context, userID, date string, patch attendance.Patch) (*attendance.Entry, error)
	List(ctx context.Context, userID, month string) ([]attendance.Entry, error)
}

// Services bundles everything the handler dispatches to.
type Services struct {
	Users      UserService
	Chats      ChatService
	Messages   MessageService
	Projects   ProjectService
	Attendance AttendanceService
	Suggester  suggest.Suggester
}

// Handler dispatches resource.verb methods to domain services.
type Handler struct {
	svc Services
}

// NewHandler creates a new RPC handler.
func NewHandler(svc Services) *Handler {
	return &Handler{svc: svc}
}

// Handle dispatches one request to the matching domain operation.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case "users.register":
		var req RegisterUserParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Users.Register(ctx, user.RegisterRequest{
			Name:       req.Name,
			Avatar:     req.Avatar,
			Provider:   req.Provider,
			ProviderID: req.ProviderID,
		})
	case "users.search":
		var req SearchUsersParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Users.Search(ctx, req.Query)
	case "users.get":
		var req GetUserParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Users.Get(ctx, req.ID)
	case "users.setStatus":
		var req SetStatusParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.svc.Users.SetStatus(ctx, req.ID, req.Status); err != nil {
			return nil, err
		}
		return OKResponse{OK: true}, nil
	case "friends.add":
		var req FriendParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.svc.Users.AddFriend(ctx, req.UserID, req.FriendID); err != nil {
			return nil, err
		}
		return OKResponse{OK: true}, nil
	case "friends.list":
		var req FriendParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Users.ListFriends(ctx, req.UserID)
	case "conversations.list":
		var req ListConversationsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Chats.List(ctx, req.UserID, req.Kind)
	case "conversations.createDirect":
		var req CreateDirectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Chats.CreateDirect(ctx, req.UserID, req.FriendID)
	case "conversations.createGroup":
		var req CreateGroupParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Chats.CreateGroup(ctx, chat.CreateGroupRequest{
			Name:        req.Name,
			Icon:        req.Icon,
			Description: req.Description,
			CreatorID:   req.CreatorID,
			Members:     req.Members,
		})
	case "messages.list":
		var req ListMessagesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Messages.List(ctx, req.ConversationID, req.After)
	case "messages.append":
		var req AppendMessageParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Messages.Append(ctx, message.AppendRequest{
			ConversationID: req.ConversationID,
			SenderID:       req.SenderID,
			SenderName:     req.SenderName,
			Content:        req.Content,
			ReplyTo:        req.ReplyTo,
		})
	case "messages.replace":
		var req ReplaceMessagesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.svc.Messages.ReplaceAll(ctx, req.ConversationID, req.Messages); err != nil {
			return nil, err
		}
		return OKResponse{OK: true}, nil
	case "projects.list":
		var req ListProjectsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Projects.List(ctx, req.UserID)
	case "projects.create":
		var req CreateProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Projects.Create(ctx, project.CreateRequest{
			ID:           req.ID,
			Name:         req.Name,
			Icon:         req.Icon,
			Description:  req.Description,
			CreatorID:    req.CreatorID,
			LinkedChats:  req.LinkedChats,
			Members:      req.Members,
			GameSettings: req.GameSettings,
		})
	case "projects.update":
		var req UpdateProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Projects.Update(ctx, req.ID, project.Patch{
			Name:         req.Name,
			Icon:         req.Icon,
			Description:  req.Description,
			LinkedChats:  req.LinkedChats,
			Members:      req.Members,
			GameSettings: req.GameSettings,
		})
	case "projects.delete":
		var req DeleteProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.svc.Projects.Delete(ctx, req.ID); err != nil {
			return nil, err
		}
		return OKResponse{OK: true}, nil
	case "projectData.get":
		var req ProjectDataParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Projects.GetData(ctx, req.ProjectID)
	case "projectData.upsert":
		var req ProjectDataParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		err := h.svc.Projects.UpsertData(ctx, req.ProjectID, project.DataPatch{
			GanttTasks:      req.GanttTasks,
			Milestones:      req.Milestones,
			TodoItems:       req.TodoItems,
			SharedLinks:     req.SharedLinks,
			Memos:           req.Memos,
			Events:          req.Events,
			CategoryOrder:   req.CategoryOrder,
			HolidaySettings: req.HolidaySettings,
		})
		if err != nil {
			return nil, err
		}
		return OKResponse{OK: true}, nil
	case "attendance.clock":
		var req ClockParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Attendance.Clock(ctx, req.UserID, req.Date, attendance.Patch{
			ClockIn:      req.ClockIn,
			ClockOut:     req.ClockOut,
			BreakMinutes: req.BreakMinutes,
			Status:       req.Status,
		})
	case "attendance.list":
		var req ListAttendanceParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Attendance.List(ctx, req.UserID, req.Month)
	case "events.suggest":
		var req SuggestEventsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Suggester.SuggestEvents(ctx, req.Tags, req.Year)
	default:
		return nil, fmt.Errorf("%w: %q", errMethodNotFound, method)
	}
}

func decodeParams(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", errBadParams, err)
	}
	return nil
}
