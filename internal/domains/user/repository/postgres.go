package repository

import (
	"context"
	"errors"
	"fmt"

	"portfolio-backend/internal/domains/user"
	"portfolio-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

const userColumns = `id, email, password_hash, role, email_confirmed_at, created_at, updated_at`

func scanUser(row pgx.Row) (*user.User, error) {
	entity := &user.User{}
	err := row.Scan(
		&entity.ID,
		&entity.Email,
		&entity.PasswordHash,
		&entity.Role,
		&entity.EmailConfirmedAt,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	entity, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		logger.Error("FindByEmail: database error", err)
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return entity, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	entity, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		logger.Error("FindByID: database error", err)
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return entity, nil
}

const profileColumns = `user_id, name, role, avatar_url, updated_at`

func (r *postgresRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*user.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE user_id = $1`, profileColumns)

	profile := &user.Profile{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Name,
		&profile.Role,
		&profile.AvatarURL,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrProfileNotFound
		}
		logger.Error("GetProfile: database error", err)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

func (r *postgresRepository) UpsertProfile(ctx context.Context, profile *user.Profile) (*user.Profile, error) {
	query := fmt.Sprintf(`
		INSERT INTO profiles (user_id, name, role, avatar_url, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			role = EXCLUDED.role,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = EXCLUDED.updated_at
		RETURNING %s
	`, profileColumns)

	persisted := &user.Profile{}
	err := r.pool.QueryRow(ctx, query,
		profile.UserID,
		profile.Name,
		profile.Role,
		profile.AvatarURL,
		profile.UpdatedAt,
	).Scan(
		&persisted.UserID,
		&persisted.Name,
		&persisted.Role,
		&persisted.AvatarURL,
		&persisted.UpdatedAt,
	)
	if err != nil {
		logger.Error("UpsertProfile: database error", err)
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return persisted, nil
}

func (r *postgresRepository) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatarURL string) error {
	const query = `UPDATE profiles SET avatar_url = $1, updated_at = NOW() WHERE user_id = $2`

	result, err := r.pool.Exec(ctx, query, avatarURL, userID)
	if err != nil {
		logger.Error("UpdateAvatar: database error", err)
		return fmt.Errorf("failed to update avatar: %w", err)
	}

	if result.RowsAffected() == 0 {
		return user.ErrProfileNotFound
	}

	return nil
}
