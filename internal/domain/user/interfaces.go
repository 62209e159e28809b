package user

import "context"

// Repository provides persistence for users and friendships.
type Repository interface {
	Insert(ctx context.Context, u *User) error
	Get(ctx context.Context, id string) (*User, error)
	FindByProvider(ctx context.Context, provider, providerID string) (*User, error)
	FindByName(ctx context.Context, name string) (*User, error)
	Search(ctx context.Context, query string) ([]User, error)
	UpdateStatus(ctx context.Context, id, status string) error
	AddFriend(ctx context.Context, userID, friendID string) error
	ListFriends(ctx context.Context, userID string) ([]User, error)
}
