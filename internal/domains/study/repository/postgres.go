package repository

import (
	"context"
	"fmt"

	"portfolio-backend/internal/domains/study"
	"portfolio-backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) study.Repository {
	return &postgresRepository{pool: pool}
}

const columns = `id, institution, degree, field, description, start_date, end_date, created_at, updated_at`

func (r *postgresRepository) List(ctx context.Context) ([]study.Study, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM studies
		ORDER BY start_date DESC
	`, columns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("List: query failed", err)
		return nil, fmt.Errorf("failed to list studies: %w", err)
	}
	defer rows.Close()

	entities := make([]study.Study, 0)
	for rows.Next() {
		entity := study.Study{}
		err := rows.Scan(
			&entity.ID,
			&entity.Institution,
			&entity.Degree,
			&entity.Field,
			&entity.Description,
			&entity.StartDate,
			&entity.EndDate,
			&entity.CreatedAt,
			&entity.UpdatedAt,
		)
		if err != nil {
			logger.Error("List: scan error", err)
			return nil, fmt.Errorf("failed to scan study: %w", err)
		}
		entities = append(entities, entity)
	}

	if err = rows.Err(); err != nil {
		logger.Error("List: rows error", err)
		return nil, fmt.Errorf("failed to list studies: %w", err)
	}

	return entities, nil
}

func (r *postgresRepository) Upsert(ctx context.Context, entity *study.Study) (*study.Study, error) {
	if entity.ID == 0 {
		return r.insert(ctx, entity)
	}
	return r.replace(ctx, entity)
}

func (r *postgresRepository) insert(ctx context.Context, entity *study.Study) (*study.Study, error) {
	query := fmt.Sprintf(`
		INSERT INTO studies (
			institution, degree, field, description, start_date, end_date, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), $7)
		RETURNING %s
	`, columns)

	created := &study.Study{}
	err := r.pool.QueryRow(ctx, query,
		entity.Institution,
		entity.Degree,
		entity.Field,
		entity.Description,
		entity.StartDate,
		entity.EndDate,
		entity.UpdatedAt,
	).Scan(
		&created.ID,
		&created.Institution,
		&created.Degree,
		&created.Field,
		&created.Description,
		&created.StartDate,
		&created.EndDate,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		logger.Error("Upsert: insert failed", err)
		return nil, fmt.Errorf("failed to create study: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) replace(ctx context.Context, entity *study.Study) (*study.Study, error) {
	query := fmt.Sprintf(`
		INSERT INTO studies (
			id, institution, degree, field, description, start_date, end_date, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), $8)
		ON CONFLICT (id) DO UPDATE SET
			institution = EXCLUDED.institution,
			degree = EXCLUDED.degree,
			field = EXCLUDED.field,
			description = EXCLUDED.description,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			updated_at = EXCLUDED.updated_at
		RETURNING %s
	`, columns)

	updated := &study.Study{}
	err := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Institution,
		entity.Degree,
		entity.Field,
		entity.Description,
		entity.StartDate,
		entity.EndDate,
		entity.UpdatedAt,
	).Scan(
		&updated.ID,
		&updated.Institution,
		&updated.Degree,
		&updated.Field,
		&updated.Description,
		&updated.StartDate,
		&updated.EndDate,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		logger.Error("Upsert: replace failed", err)
		return nil, fmt.Errorf("failed to update study: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM studies WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Error("Delete: database error", err)
		return fmt.Errorf("failed to delete study: %w", err)
	}

	if result.RowsAffected() == 0 {
		return study.ErrStudyNotFound
	}

	return nil
}
