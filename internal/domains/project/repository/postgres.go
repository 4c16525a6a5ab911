package repository

import (
	"context"
	"errors"
	"fmt"

	"portfolio-backend/internal/domains/project"
	"portfolio-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) project.Repository {
	return &postgresRepository{pool: pool}
}

const columns = `id, user_id, slug, title, summary, content, images, video_url,
	technologies, tag, link, featured, status, published_at, created_at, updated_at`

func scanProject(row pgx.Row) (*project.Project, error) {
	entity := &project.Project{}
	err := row.Scan(
		&entity.ID,
		&entity.UserID,
		&entity.Slug,
		&entity.Title,
		&entity.Summary,
		&entity.Content,
		&entity.Images,
		&entity.VideoURL,
		&entity.Technologies,
		&entity.Tag,
		&entity.Link,
		&entity.Featured,
		&entity.Status,
		&entity.PublishedAt,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	entity.NormalizeImages()
	return entity, nil
}

func (r *postgresRepository) list(ctx context.Context, query string) ([]project.Project, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("List: query failed", err)
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	entities := make([]project.Project, 0)
	for rows.Next() {
		entity, err := scanProject(rows)
		if err != nil {
			logger.Error("List: scan error", err)
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		entities = append(entities, *entity)
	}

	if err = rows.Err(); err != nil {
		logger.Error("List: rows error", err)
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return entities, nil
}

func (r *postgresRepository) ListPublished(ctx context.Context) ([]project.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		WHERE status = 'published'
		ORDER BY published_at DESC NULLS LAST, created_at DESC
	`, columns)
	return r.list(ctx, query)
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]project.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		ORDER BY published_at DESC NULLS LAST, created_at DESC
	`, columns)
	return r.list(ctx, query)
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*project.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE slug = $1`, columns)

	entity, err := scanProject(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, project.ErrProjectNotFound
		}
		logger.Error("GetBySlug: database error", err)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return entity, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*project.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1`, columns)

	entity, err := scanProject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, project.ErrProjectNotFound
		}
		logger.Error("GetByID: database error", err)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return entity, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *project.Project) (*project.Project, error) {
	query := fmt.Sprintf(`
		INSERT INTO projects (
			user_id, slug, title, summary, content, images, video_url,
			technologies, tag, link, featured, status, published_at,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), $14)
		RETURNING %s
	`, columns)

	created, err := scanProject(r.pool.QueryRow(ctx, query,
		entity.UserID,
		entity.Slug,
		entity.Title,
		entity.Summary,
		entity.Content,
		entity.Images,
		entity.VideoURL,
		entity.Technologies,
		entity.Tag,
		entity.Link,
		entity.Featured,
		entity.Status,
		entity.PublishedAt,
		entity.UpdatedAt,
	))
	if err != nil {
		if isDuplicateSlug(err) {
			return nil, project.ErrDuplicateSlug
		}
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, entity *project.Project) (*project.Project, error) {
	query := fmt.Sprintf(`
		UPDATE projects
		SET slug = $1, title = $2, summary = $3, content = $4, video_url = $5,
			technologies = $6, tag = $7, link = $8, featured = $9, status = $10,
			published_at = $11, updated_at = $12
		WHERE id = $13
		RETURNING %s
	`, columns)

	updated, err := scanProject(r.pool.QueryRow(ctx, query,
		entity.Slug,
		entity.Title,
		entity.Summary,
		entity.Content,
		entity.VideoURL,
		entity.Technologies,
		entity.Tag,
		entity.Link,
		entity.Featured,
		entity.Status,
		entity.PublishedAt,
		entity.UpdatedAt,
		entity.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, project.ErrProjectNotFound
		}
		if isDuplicateSlug(err) {
			return nil, project.ErrDuplicateSlug
		}
		logger.Error("Update: database error", err)
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) UpdateImages(ctx context.Context, id int64, images []string) error {
	const query = `UPDATE projects SET images = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.pool.Exec(ctx, query, images, id)
	if err != nil {
		logger.Error("UpdateImages: database error", err)
		return fmt.Errorf("failed to update project images: %w", err)
	}

	if result.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM projects WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Error("Delete: database error", err)
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

// isDuplicateSlug matches the unique index on projects.slug.
func isDuplicateSlug(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "projects_slug_key"
	}
	return false
}
