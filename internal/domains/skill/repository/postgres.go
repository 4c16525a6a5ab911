package repository

import (
	"context"
	"errors"
	"fmt"

	"portfolio-backend/internal/domains/skill"
	"portfolio-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) skill.Repository {
	return &postgresRepository{pool: pool}
}

const columns = `id, user_id, name, category, level, created_at, updated_at`

func (r *postgresRepository) List(ctx context.Context) ([]skill.TechnicalSkill, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM technical_skills
		ORDER BY category ASC, level DESC
	`, columns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("List: query failed", err)
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	entities := make([]skill.TechnicalSkill, 0)
	for rows.Next() {
		entity := skill.TechnicalSkill{}
		err := rows.Scan(
			&entity.ID,
			&entity.UserID,
			&entity.Name,
			&entity.Category,
			&entity.Level,
			&entity.CreatedAt,
			&entity.UpdatedAt,
		)
		if err != nil {
			logger.Error("List: scan error", err)
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		entities = append(entities, entity)
	}

	if err = rows.Err(); err != nil {
		logger.Error("List: rows error", err)
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	return entities, nil
}

func (r *postgresRepository) Upsert(ctx context.Context, entity *skill.TechnicalSkill) (*skill.TechnicalSkill, error) {
	if entity.ID == 0 {
		return r.insert(ctx, entity)
	}
	return r.replace(ctx, entity)
}

func (r *postgresRepository) insert(ctx context.Context, entity *skill.TechnicalSkill) (*skill.TechnicalSkill, error) {
	query := fmt.Sprintf(`
		INSERT INTO technical_skills (user_id, name, category, level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), $5)
		RETURNING %s
	`, columns)

	created := &skill.TechnicalSkill{}
	err := r.pool.QueryRow(ctx, query,
		entity.UserID,
		entity.Name,
		entity.Category,
		entity.Level,
		entity.UpdatedAt,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Name,
		&created.Category,
		&created.Level,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		logger.Error("Upsert: insert failed", err)
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	return created, nil
}

// replace only touches rows owned by the same user; zero rows back
// means either absent or someone else's skill.
func (r *postgresRepository) replace(ctx context.Context, entity *skill.TechnicalSkill) (*skill.TechnicalSkill, error) {
	query := fmt.Sprintf(`
		UPDATE technical_skills
		SET name = $1, category = $2, level = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6
		RETURNING %s
	`, columns)

	updated := &skill.TechnicalSkill{}
	err := r.pool.QueryRow(ctx, query,
		entity.Name,
		entity.Category,
		entity.Level,
		entity.UpdatedAt,
		entity.ID,
		entity.UserID,
	).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.Name,
		&updated.Category,
		&updated.Level,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMiss(ctx, entity.ID)
		}
		logger.Error("Upsert: replace failed", err)
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) classifyMiss(ctx context.Context, id int64) error {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM technical_skills WHERE id = $1)", id,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}
	if exists {
		return skill.ErrNotOwner
	}
	return skill.ErrSkillNotFound
}

func (r *postgresRepository) Delete(ctx context.Context, id int64, userID uuid.UUID) error {
	const query = `DELETE FROM technical_skills WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		logger.Error("Delete: database error", err)
		return fmt.Errorf("failed to delete skill: %w", err)
	}

	if result.RowsAffected() == 0 {
		return r.classifyMiss(ctx, id)
	}

	return nil
}
