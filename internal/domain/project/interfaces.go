package project

import "context"

// Repository provides persistence for projects and their data aggregates.
// Update and UpsertData apply per-field merge semantics in a single atomic
// statement: the merge decision for each field is made against the row as it
// existed at the start of the operation.
type Repository interface {
	Insert(ctx context.Context, p *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	// List returns all projects, or with userID set, those the user created
	// or appears in by value inside members. Newest first.
	List(ctx context.Context, userID string) ([]Project, error)
	Update(ctx context.Context, id string, patch Patch) error
	// Delete removes the project and its data aggregate together.
	Delete(ctx context.Context, id string) error
	GetData(ctx context.Context, projectID string) (*Data, error)
	UpsertData(ctx context.Context, projectID string, patch DataPatch) error
}
