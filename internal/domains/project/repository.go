package project

import "context"

// Repository is the data access contract for projects.
type Repository interface {
	// ListPublished returns published projects newest first by
	// published_at.
	ListPublished(ctx context.Context) ([]Project, error)

	// ListAll returns every project regardless of status, same order.
	ListAll(ctx context.Context) ([]Project, error)

	// GetBySlug returns one project or ErrProjectNotFound.
	GetBySlug(ctx context.Context, slug string) (*Project, error)

	// GetByID returns one project or ErrProjectNotFound.
	GetByID(ctx context.Context, id int64) (*Project, error)

	// Create inserts a project. A slug collision fails with
	// ErrDuplicateSlug and leaves the existing row untouched.
	Create(ctx context.Context, entity *Project) (*Project, error)

	// Update replaces an existing project's fields.
	Update(ctx context.Context, entity *Project) (*Project, error)

	// UpdateImages replaces the gallery slots of one project.
	UpdateImages(ctx context.Context, id int64, images []string) error

	// Delete removes a project row.
	Delete(ctx context.Context, id int64) error
}
