package experience

import "context"

// Repository is the data access contract for work history entries.
type Repository interface {
	// List returns all entries ordered start_date DESC (newest first).
	List(ctx context.Context) ([]WorkExperience, error)

	// Upsert inserts (ID zero) or replaces (known ID) an entry and
	// returns the persisted row.
	Upsert(ctx context.Context, entity *WorkExperience) (*WorkExperience, error)

	// Delete removes an entry or returns ErrExperienceNotFound.
	Delete(ctx context.Context, id int64) error
}
