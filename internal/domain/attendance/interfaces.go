package attendance

import "context"

// Repository provides persistence for attendance entries. Upsert is a single
// atomic insert-or-update on the (user, date) unique key.
type Repository interface {
	Upsert(ctx context.Context, userID, date string, patch Patch) (*Entry, error)
	// List returns a user's entries, optionally restricted to one month
	// (YYYY-MM prefix), ordered by date ascending.
	List(ctx context.Context, userID, month string) ([]Entry, error)
}
