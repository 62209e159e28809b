// Package mocks provides testify mocks for the domain repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/takumi/atelier/internal/domain/attendance"
	"github.com/takumi/atelier/internal/domain/chat"
	"github.com/takumi/atelier/internal/domain/message"
	"github.com/takumi/atelier/internal/domain/project"
	"github.com/takumi/atelier/internal/domain/user"
)

// UserRepository is a mock for user.Repository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Insert(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) Get(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) FindByProvider(ctx context.Context, provider, providerID string) (*user.User, error) {
	args := m.Called(ctx, provider, providerID)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) FindByName(ctx context.Context, name string) (*user.User, error) {
	args := m.Called(ctx, name)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) Search(ctx context.Context, query string) ([]user.User, error) {
	args := m.Called(ctx, query)
	if users, ok := args.Get(0).([]user.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *UserRepository) AddFriend(ctx context.Context, userID, friendID string) error {
	args := m.Called(ctx, userID, friendID)
	return args.Error(0)
}

func (m *UserRepository) ListFriends(ctx context.Context, userID string) ([]user.User, error) {
	args := m.Called(ctx, userID)
	if users, ok := args.Get(0).([]user.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

// ConversationRepository is a mock for chat.Repository.
type ConversationRepository struct {
	mock.Mock
}

func (m *ConversationRepository) InsertDirect(ctx context.Context, conv *chat.DirectConversation) error {
	args := m.Called(ctx, conv)
	return args.Error(0)
}

func (m *ConversationRepository) GetDirect(ctx context.Context, id, viewerID string) (*chat.DirectConversation, error) {
	args := m.Called(ctx, id, viewerID)
	if conv, ok := args.Get(0).(*chat.DirectConversation); ok {
		return conv, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ConversationRepository) ListDirects(ctx context.Context, userID string) ([]chat.DirectConversation, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]chat.DirectConversation); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ConversationRepository) InsertGroup(ctx context.Context, g *chat.GroupConversation) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *ConversationRepository) ListGroups(ctx context.Context, userID string) ([]chat.GroupConversation, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]chat.GroupConversation); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// MessageRepository is a mock for message.Repository.
type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) ListLatest(ctx context.Context, conversationID string, limit int) ([]message.Message, error) {
	args := m.Called(ctx, conversationID, limit)
	if msgs, ok := args.Get(0).([]message.Message); ok {
		return msgs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MessageRepository) ListSince(ctx context.Context, conversationID string, afterID int64) ([]message.Message, error) {
	args := m.Called(ctx, conversationID, afterID)
	if msgs, ok := args.Get(0).([]message.Message); ok {
		return msgs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MessageRepository) Insert(ctx context.Context, msg *message.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MessageRepository) ReplaceAll(ctx context.Context, conversationID string, msgs []message.Message) error {
	args := m.Called(ctx, conversationID, msgs)
	return args.Error(0)
}

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Insert(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*project.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context, userID string) ([]project.Project, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, id string, patch project.Patch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *ProjectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProjectRepository) GetData(ctx context.Context, projectID string) (*project.Data, error) {
	args := m.Called(ctx, projectID)
	if data, ok := args.Get(0).(*project.Data); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) UpsertData(ctx context.Context, projectID string, patch project.DataPatch) error {
	args := m.Called(ctx, projectID, patch)
	return args.Error(0)
}

// AttendanceRepository is a mock for attendance.Repository.
type AttendanceRepository struct {
	mock.Mock
}

func (m *AttendanceRepository) Upsert(ctx context.Context, userID, date string, patch attendance.Patch) (*attendance.Entry, error) {
	args := m.Called(ctx, userID, date, patch)
	if entry, ok := args.Get(0).(*attendance.Entry); ok {
		return entry, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AttendanceRepository) List(ctx context.Context, userID, month string) ([]attendance.Entry, error) {
	args := m.Called(ctx, userID, month)
	if entries, ok := args.Get(0).([]attendance.Entry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}
