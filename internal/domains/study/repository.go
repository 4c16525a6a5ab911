package study

import "context"

// Repository is the data access contract for education entries.
type Repository interface {
	// List returns all entries ordered start_date DESC.
	List(ctx context.Context) ([]Study, error)

	// Upsert inserts (ID zero) or replaces (known ID) an entry.
	Upsert(ctx context.Context, entity *Study) (*Study, error)

	// Delete removes an entry or returns ErrStudyNotFound.
	Delete(ctx context.Context, id int64) error
}
