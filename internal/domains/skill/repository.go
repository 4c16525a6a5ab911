package skill

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for technical skills.
type Repository interface {
	// List returns all skills ordered category ASC, level DESC.
	List(ctx context.Context) ([]TechnicalSkill, error)

	// Upsert inserts (ID zero) or replaces (known ID) a skill owned
	// by the given user. Replacing another user's skill fails with
	// ErrNotOwner.
	Upsert(ctx context.Context, entity *TechnicalSkill) (*TechnicalSkill, error)

	// Delete removes a skill owned by userID.
	Delete(ctx context.Context, id int64, userID uuid.UUID) error
}
