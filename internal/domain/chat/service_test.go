package chat_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/takumi/atelier/internal/domain/chat"
	"github.com/takumi/atelier/internal/repository/mocks"
)

func TestChatService_CreateDirect_Validation(t *testing.T) {
	svc := chat.NewService(&mocks.ConversationRepository{}, nil)
	ctx := context.Background()

	_, err := svc.CreateDirect(ctx, "", "u2")
	require.ErrorIs(t, err, chat.ErrInvalidInput)

	_, err = svc.CreateDirect(ctx, "u1", "")
	require.ErrorIs(t, err, chat.ErrInvalidInput)

	// a conversation with oneself is rejected
	_, err = svc.CreateDirect(ctx, "u1", "u1")
	require.ErrorIs(t, err, chat.ErrInvalidInput)
}

func TestChatService_CreateDirect_DerivedID(t *testing.T) {
	ctx := context.Background()
	id := chat.DirectID("u1", "u2")

	repo := &mocks.ConversationRepository{}
	repo.On("InsertDirect", ctx, mock.MatchedBy(func(conv *chat.DirectConversation) bool {
		return conv.ID == id && conv.ParticipantA == "u1" && conv.ParticipantB == "u2"
	})).Return(nil)
	repo.On("GetDirect", ctx, id, "u2").Return(&chat.DirectConversation{
		ID:           id,
		ParticipantA: "u1",
		ParticipantB: "u2",
		Counterpart:  chat.Counterpart{ID: "u1", Name: "Alice", Status: "online"},
		CreatedAt:    time.Now(),
	}, nil)

	svc := chat.NewService(repo, nil)

	// caller order doesn't matter; the derived id and sorted pair do
	conv, err := svc.CreateDirect(ctx, "u2", "u1")
	require.NoError(t, err)
	require.Equal(t, id, conv.ID)
	require.Equal(t, "Alice", conv.Counterpart.Name)
	repo.AssertExpectations(t)
}

func TestChatService_CreateDirect_CounterpartFallback(t *testing.T) {
	ctx := context.Background()
	id := chat.DirectID("u1", "ghost")

	repo := &mocks.ConversationRepository{}
	repo.On("InsertDirect", ctx, mock.Anything).Return(nil)
	repo.On("GetDirect", ctx, id, "u1").Return(&chat.DirectConversation{
		ID:          id,
		Counterpart: chat.Counterpart{ID: "ghost"},
	}, nil)

	svc := chat.NewService(repo, nil)
	conv, err := svc.CreateDirect(ctx, "u1", "ghost")
	require.NoError(t, err)
	require.Equal(t, "Unknown", conv.Counterpart.Name)
	require.Equal(t, "offline", conv.Counterpart.Status)
}

func TestChatService_CreateGroup_Defaults(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ConversationRepository{}
	repo.On("InsertGroup", ctx, mock.MatchedBy(func(g *chat.GroupConversation) bool {
		return g.Icon == chat.DefaultGroupIcon && string(g.Members) == `[]` && g.ID != ""
	})).Return(nil)

	svc := chat.NewService(repo, nil)
	g, err := svc.CreateGroup(ctx, chat.CreateGroupRequest{Name: "Art Team"})
	require.NoError(t, err)
	require.Equal(t, "Art Team", g.Name)
	require.Equal(t, chat.DefaultGroupIcon, g.Icon)
	repo.AssertExpectations(t)
}

func TestChatService_CreateGroup_NullMembers(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ConversationRepository{}
	repo.On("InsertGroup", ctx, mock.MatchedBy(func(g *chat.GroupConversation) bool {
		return string(g.Members) == `[]`
	})).Return(nil)

	svc := chat.NewService(repo, nil)
	// an explicit JSON null is treated like an omitted field
	g, err := svc.CreateGroup(ctx, chat.CreateGroupRequest{
		Name:    "Art Team",
		Members: []byte(`null`),
	})
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(g.Members))
	repo.AssertExpectations(t)
}

func TestChatService_CreateGroup_RequiresName(t *testing.T) {
	svc := chat.NewService(&mocks.ConversationRepository{}, nil)

	_, err := svc.CreateGroup(context.Background(), chat.CreateGroupRequest{Name: "   "})
	require.ErrorIs(t, err, chat.ErrInvalidInput)
}

func TestChatService_List_KindFilter(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ConversationRepository{}
	repo.On("ListGroups", ctx, "u1").Return([]chat.GroupConversation{{ID: "g1", Name: "Team"}}, nil)

	svc := chat.NewService(repo, nil)

	list, err := svc.List(ctx, "u1", chat.KindGroup)
	require.NoError(t, err)
	require.Empty(t, list.Directs)
	require.Len(t, list.Groups, 1)
	// nil members come back as an empty collection, never null
	require.JSONEq(t, `[]`, string(list.Groups[0].Members))

	repo.AssertNotCalled(t, "ListDirects", ctx, "u1")

	_, err = svc.List(ctx, "u1", "bogus")
	require.ErrorIs(t, err, chat.ErrInvalidInput)

	_, err = svc.List(ctx, "", "")
	require.ErrorIs(t, err, chat.ErrInvalidInput)
}
