package repository

import (
	"context"
	"fmt"

	"portfolio-backend/internal/domains/experience"
	"portfolio-backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) experience.Repository {
	return &postgresRepository{pool: pool}
}

const columns = `id, company, role, description, technologies, start_date, end_date, created_at, updated_at`

func (r *postgresRepository) List(ctx context.Context) ([]experience.WorkExperience, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM work_experience
		ORDER BY start_date DESC
	`, columns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("List: query failed", err)
		return nil, fmt.Errorf("failed to list work experience: %w", err)
	}
	defer rows.Close()

	entities := make([]experience.WorkExperience, 0)
	for rows.Next() {
		entity := experience.WorkExperience{}
		err := rows.Scan(
			&entity.ID,
			&entity.Company,
			&entity.Role,
			&entity.Description,
			&entity.Technologies,
			&entity.StartDate,
			&entity.EndDate,
			&entity.CreatedAt,
			&entity.UpdatedAt,
		)
		if err != nil {
			logger.Error("List: scan error", err)
			return nil, fmt.Errorf("failed to scan work experience: %w", err)
		}
		entities = append(entities, entity)
	}

	if err = rows.Err(); err != nil {
		logger.Error("List: rows error", err)
		return nil, fmt.Errorf("failed to list work experience: %w", err)
	}

	return entities, nil
}

func (r *postgresRepository) Upsert(ctx context.Context, entity *experience.WorkExperience) (*experience.WorkExperience, error) {
	if entity.ID == 0 {
		return r.insert(ctx, entity)
	}
	return r.replace(ctx, entity)
}

func (r *postgresRepository) insert(ctx context.Context, entity *experience.WorkExperience) (*experience.WorkExperience, error) {
	query := fmt.Sprintf(`
		INSERT INTO work_experience (
			company, role, description, technologies, start_date, end_date, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), $7)
		RETURNING %s
	`, columns)

	created := &experience.WorkExperience{}
	err := r.pool.QueryRow(ctx, query,
		entity.Company,
		entity.Role,
		entity.Description,
		entity.Technologies,
		entity.StartDate,
		entity.EndDate,
		entity.UpdatedAt,
	).Scan(
		&created.ID,
		&created.Company,
		&created.Role,
		&created.Description,
		&created.Technologies,
		&created.StartDate,
		&created.EndDate,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		logger.Error("Upsert: insert failed", err)
		return nil, fmt.Errorf("failed to create work experience: %w", err)
	}

	return created, nil
}

// replace uses INSERT .. ON CONFLICT so a stale client-held id still
// lands as a full-row write.
func (r *postgresRepository) replace(ctx context.Context, entity *experience.WorkExperience) (*experience.WorkExperience, error) {
	query := fmt.Sprintf(`
		INSERT INTO work_experience (
			id, company, role, description, technologies, start_date, end_date, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), $8)
		ON CONFLICT (id) DO UPDATE SET
			company = EXCLUDED.company,
			role = EXCLUDED.role,
			description = EXCLUDED.description,
			technologies = EXCLUDED.technologies,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			updated_at = EXCLUDED.updated_at
		RETURNING %s
	`, columns)

	updated := &experience.WorkExperience{}
	err := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Company,
		entity.Role,
		entity.Description,
		entity.Technologies,
		entity.StartDate,
		entity.EndDate,
		entity.UpdatedAt,
	).Scan(
		&updated.ID,
		&updated.Company,
		&updated.Role,
		&updated.Description,
		&updated.Technologies,
		&updated.StartDate,
		&updated.EndDate,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		logger.Error("Upsert: replace failed", err)
		return nil, fmt.Errorf("failed to update work experience: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM work_experience WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Error("Delete: database error", err)
		return fmt.Errorf("failed to delete work experience: %w", err)
	}

	if result.RowsAffected() == 0 {
		return experience.ErrExperienceNotFound
	}

	return nil
}
