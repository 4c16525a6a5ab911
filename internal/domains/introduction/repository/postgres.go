package repository

import (
	"context"
	"errors"
	"fmt"

	"portfolio-backend/internal/domains/introduction"
	"portfolio-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) introduction.Repository {
	return &postgresRepository{pool: pool}
}

const columns = `id, name, title, description, avatar_url, github_url, linkedin_url, discord_url, email, created_at, updated_at`

func scanIntroduction(row pgx.Row) (*introduction.Introduction, error) {
	entity := &introduction.Introduction{}
	err := row.Scan(
		&entity.ID,
		&entity.Name,
		&entity.Title,
		&entity.Description,
		&entity.AvatarURL,
		&entity.GithubURL,
		&entity.LinkedinURL,
		&entity.DiscordURL,
		&entity.Email,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *postgresRepository) Get(ctx context.Context) (*introduction.Introduction, error) {
	query := fmt.Sprintf(`SELECT %s FROM introduction WHERE id = $1`, columns)

	entity, err := scanIntroduction(r.pool.QueryRow(ctx, query, introduction.SingletonID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, introduction.ErrIntroductionNotFound
		}
		logger.Error("Get: database error", err)
		return nil, fmt.Errorf("failed to get introduction: %w", err)
	}

	return entity, nil
}

// Upsert targets the singleton id; a concurrent save simply
// overwrites (last write wins).
func (r *postgresRepository) Upsert(ctx context.Context, entity *introduction.Introduction) (*introduction.Introduction, error) {
	query := fmt.Sprintf(`
		INSERT INTO introduction (
			id, name, title, description, avatar_url,
			github_url, linkedin_url, discord_url, email,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), $10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			avatar_url = EXCLUDED.avatar_url,
			github_url = EXCLUDED.github_url,
			linkedin_url = EXCLUDED.linkedin_url,
			discord_url = EXCLUDED.discord_url,
			email = EXCLUDED.email,
			updated_at = EXCLUDED.updated_at
		RETURNING %s`, columns)

	persisted, err := scanIntroduction(r.pool.QueryRow(ctx, query,
		introduction.SingletonID,
		entity.Name,
		entity.Title,
		entity.Description,
		entity.AvatarURL,
		entity.GithubURL,
		entity.LinkedinURL,
		entity.DiscordURL,
		entity.Email,
		entity.UpdatedAt,
	))
	if err != nil {
		logger.Error("Upsert: database error", err)
		return nil, fmt.Errorf("failed to upsert introduction: %w", err)
	}

	return persisted, nil
}

func (r *postgresRepository) UpdateAvatar(ctx context.Context, avatarURL string) error {
	const query = `
		UPDATE introduction
		SET avatar_url = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.pool.Exec(ctx, query, avatarURL, introduction.SingletonID)
	if err != nil {
		logger.Error("UpdateAvatar: database error", err)
		return fmt.Errorf("failed to update avatar: %w", err)
	}

	if result.RowsAffected() == 0 {
		return introduction.ErrIntroductionNotFound
	}

	return nil
}
