package user

import "time"

// User is a registered workspace member. ID is immutable once assigned;
// status is the one field that mutates after registration.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Avatar     string    `json:"avatar"`
	Status     string    `json:"status"`
	Provider   string    `json:"provider,omitempty"`
	ProviderID string    `json:"providerId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RegisterResult reports whether registration created a new user or
// resolved to an existing one.
type RegisterResult struct {
	User  *User `json:"user"`
	IsNew bool  `json:"isNew"`
}
