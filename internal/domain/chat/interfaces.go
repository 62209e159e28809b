package chat

import "context"

// Repository provides persistence for conversations. InsertDirect must be
// insert-if-absent on the derived id: concurrent duplicate calls converge on
// one row without error.
type Repository interface {
	InsertDirect(ctx context.Context, conv *DirectConversation) error
	GetDirect(ctx context.Context, id, viewerID string) (*DirectConversation, error)
	ListDirects(ctx context.Context, userID string) ([]DirectConversation, error)
	InsertGroup(ctx context.Context, g *GroupConversation) error
	ListGroups(ctx context.Context, userID string) ([]GroupConversation, error)
}
