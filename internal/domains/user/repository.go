package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for accounts and their
// display profiles.
type Repository interface {
	// FindByEmail returns an account or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID returns an account or ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetProfile returns the display profile or ErrProfileNotFound.
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)

	// UpsertProfile inserts or replaces the display profile.
	UpsertProfile(ctx context.Context, profile *Profile) (*Profile, error)

	// UpdateAvatar sets only the profile's avatar URL.
	UpdateAvatar(ctx context.Context, userID uuid.UUID, avatarURL string) error
}
