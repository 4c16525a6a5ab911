package introduction

import "context"

// Repository is the data access contract for the introduction
// singleton.
type Repository interface {
	// Get returns the singleton row or ErrIntroductionNotFound.
	Get(ctx context.Context) (*Introduction, error)

	// Upsert inserts or replaces the singleton row and returns the
	// persisted state.
	Upsert(ctx context.Context, entity *Introduction) (*Introduction, error)

	// UpdateAvatar sets only the avatar URL on the singleton row.
	UpdateAvatar(ctx context.Context, avatarURL string) error
}
