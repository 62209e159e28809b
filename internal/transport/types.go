package transport

import (
	"encoding/json"

	"github.com/takumi/atelier/internal/domain/message"
)

// Request parameter shapes for each method. JSON collection fields are raw
// so that "omitted" and "explicit empty collection" stay distinguishable.

type RegisterUserParams struct {
	Name       string `json:"name"`
	Avatar     string `json:"avatar,omitempty"`
	Provider   string `json:"provider,omitempty"`
	ProviderID string `json:"providerId,omitempty"`
}

type SearchUsersParams struct {
	Query string `json:"query"`
}

type GetUserParams struct {
	ID string `json:"id"`
}

type SetStatusParams struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type FriendParams struct {
	UserID   string `json:"userId"`
	FriendID string `json:"friendId,omitempty"`
}

type ListConversationsParams struct {
	UserID string `json:"userId"`
	Kind   string `json:"kind,omitempty"`
}

type CreateDirectParams struct {
	UserID   string `json:"userId"`
	FriendID string `json:"friendId"`
}

type CreateGroupParams struct {
	Name        string          `json:"name"`
	Icon        string          `json:"icon,omitempty"`
	Description string          `json:"description,omitempty"`
	CreatorID   string          `json:"creatorId,omitempty"`
	Members     json.RawMessage `json:"members,omitempty"`
}

type ListMessagesParams struct {
	ConversationID string `json:"conversationId"`
	After          *int64 `json:"after,omitempty"`
}

type AppendMessageParams struct {
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	SenderName     string `json:"senderName"`
	Content        string `json:"content"`
	ReplyTo        *int64 `json:"replyTo,omitempty"`
}

type ReplaceMessagesParams struct {
	ConversationID string            `json:"conversationId"`
	Messages       []message.Message `json:"messages"`
}

type ListProjectsParams struct {
	UserID string `json:"userId,omitempty"`
}

type CreateProjectParams struct {
	ID           string          `json:"id,omitempty"`
	Name         string          `json:"name"`
	Icon         string          `json:"icon,omitempty"`
	Description  string          `json:"description,omitempty"`
	CreatorID    string          `json:"creatorId,omitempty"`
	LinkedChats  json.RawMessage `json:"linkedChats,omitempty"`
	Members      json.RawMessage `json:"projectMembers,omitempty"`
	GameSettings json.RawMessage `json:"gameSettings,omitempty"`
}

type UpdateProjectParams struct {
	ID           string          `json:"id"`
	Name         *string         `json:"name,omitempty"`
	Icon         *string         `json:"icon,omitempty"`
	Description  *string         `json:"description,omitempty"`
	LinkedChats  json.RawMessage `json:"linkedChats,omitempty"`
	Members      json.RawMessage `json:"projectMembers,omitempty"`
	GameSettings json.RawMessage `json:"gameSettings,omitempty"`
}

type DeleteProjectParams struct {
	ID string `json:"id"`
}

type ProjectDataParams struct {
	ProjectID       string          `json:"projectId"`
	GanttTasks      json.RawMessage `json:"ganttTasks,omitempty"`
	Milestones      json.RawMessage `json:"milestones,omitempty"`
	TodoItems       json.RawMessage `json:"todoItems,omitempty"`
	SharedLinks     json.RawMessage `json:"sharedLinks,omitempty"`
	Memos           json.RawMessage `json:"memos,omitempty"`
	Events          json.RawMessage `json:"events,omitempty"`
	CategoryOrder   json.RawMessage `json:"categoryOrder,omitempty"`
	HolidaySettings json.RawMessage `json:"holidaySettings,omitempty"`
}

type ClockParams struct {
	UserID       string  `json:"userId"`
	Date         string  `json:"date"`
	ClockIn      *string `json:"clockIn,omitempty"`
	ClockOut     *string `json:"clockOut,omitempty"`
	BreakMinutes *int    `json:"breakMinutes,omitempty"`
	Status       *string `json:"status,omitempty"`
}

type ListAttendanceParams struct {
	UserID string `json:"userId"`
	Month  string `json:"month,omitempty"`
}

type SuggestEventsParams struct {
	Tags []string `json:"tags"`
	Year int      `json:"year"`
}

// OKResponse acknowledges operations with no natural result payload.
type OKResponse struct {
	OK bool `json:"ok"`
}
