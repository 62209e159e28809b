package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/takumi/atelier/internal/domain/message"
)

func appendMessage(t *testing.T, repo *MessageRepository, convID, content string) *message.Message {
	t.Helper()
	m := &message.Message{
		ConversationID: convID,
		SenderID:       "u1",
		SenderName:     "Alice",
		Content:        content,
		Reactions:      json.RawMessage(`[]`),
		Timestamp:      time.Now(),
	}
	require.NoError(t, repo.Insert(context.Background(), m))
	return m
}

func TestMessageRepository_Insert_MonotonicIDs(t *testing.T) {
	db := NewTestDB(t)
	repo := NewMessageRepository(db)

	var last int64
	for i := 0; i < 5; i++ {
		m := appendMessage(t, repo, "c1", fmt.Sprintf("msg %d", i))
		require.Greater(t, m.ID, last, "ids must be strictly increasing")
		last = m.ID
	}
}

func TestMessageRepository_ListSince(t *testing.T) {
	db := NewTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	ids := make([]int64, 0, 10)
	for i := 0; i < 10; i++ {
		m := appendMessage(t, repo, "c1", fmt.Sprintf("msg %d", i))
		ids = append(ids, m.ID)
	}
	// another conversation must not leak in
	appendMessage(t, repo, "c2", "other")

	cursor := ids[3]
	msgs, err := repo.ListSince(ctx, "c1", cursor)
	require.NoError(t, err)
	require.Len(t, msgs, 6)
	for i, m := range msgs {
		require.Equal(t, ids[4+i], m.ID, "ascending, no gaps, no duplicates")
		require.Equal(t, "c1", m.ConversationID)
	}

	msgs, err = repo.ListSince(ctx, "c1", ids[9])
	require.NoError(t, err)
	require.Empty(t, msgs)
}

func TestMessageRepository_ListLatest_CapAndOrder(t *testing.T) {
	db := NewTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		appendMessage(t, repo, "c1", fmt.Sprintf("msg %d", i))
	}

	msgs, err := repo.ListLatest(ctx, "c1", 3)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	// capped reads return the newest tail, oldest-within-the-window first
	require.Equal(t, "msg 4", msgs[0].Content)
	require.Equal(t, "msg 5", msgs[1].Content)
	require.Equal(t, "msg 6", msgs[2].Content)

	msgs, err = repo.ListLatest(ctx, "c1", 100)
	require.NoError(t, err)
	require.Len(t, msgs, 7)
	require.Equal(t, "msg 0", msgs[0].Content)
}

func TestMessageRepository_ReplyToRoundTrip(t *testing.T) {
	db := NewTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	first := appendMessage(t, repo, "c1", "hello")

	reply := &message.Message{
		ConversationID: "c1",
		SenderID:       "u2",
		SenderName:     "Bob",
		Content:        "hi back",
		Reactions:      json.RawMessage(`[{"emoji":"👍","users":["u1"]}]`),
		ReplyTo:        &first.ID,
		Timestamp:      time.Now(),
	}
	require.NoError(t, repo.Insert(ctx, reply))

	msgs, err := repo.ListSince(ctx, "c1", first.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.NotNil(t, msgs[0].ReplyTo)
	require.Equal(t, first.ID, *msgs[0].ReplyTo)
	require.JSONEq(t, `[{"emoji":"👍","users":["u1"]}]`, string(msgs[0].Reactions))
}

func TestMessageRepository_ReplaceAll(t *testing.T) {
	db := NewTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	appendMessage(t, repo, "c1", "old 1")
	appendMessage(t, repo, "c1", "old 2")
	kept := appendMessage(t, repo, "c2", "untouched")

	seed := []message.Message{
		{ConversationID: "c1", SenderID: "u1", SenderName: "Alice", Content: "new 1", Reactions: json.RawMessage(`[]`), Timestamp: time.Now()},
		{ConversationID: "c1", SenderID: "u2", SenderName: "Bob", Content: "new 2", Reactions: json.RawMessage(`[]`), Timestamp: time.Now()},
	}
	require.NoError(t, repo.ReplaceAll(ctx, "c1", seed))

	msgs, err := repo.ListLatest(ctx, "c1", 100)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, "new 1", msgs[0].Content)
	require.Equal(t, "new 2", msgs[1].Content)
	// reseeded ids continue the sequence; old ids are never reused
	require.Greater(t, msgs[0].ID, kept.ID)

	other, err := repo.ListLatest(ctx, "c2", 100)
	require.NoError(t, err)
	require.Len(t, other, 1)
	require.Equal(t, "untouched", other[0].Content)
}
