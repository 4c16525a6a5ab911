package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"
)

const (
	publishedCacheKey = "projects:list:published"
	allCacheKey       = "projects:list:all"
	cacheTTL          = 60 * time.Second
)

// ObjectStorage is the slice of the storage layer project media needs.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	RemoveFolder(ctx context.Context, prefix string) error
}

type Service interface {
	// List returns projects newest first by published_at. With
	// includeDrafts false only published projects are returned. Read
	// failures degrade to an empty list.
	List(ctx context.Context, includeDrafts bool) ([]project.Project, error)

	// GetBySlug returns one project or project.ErrProjectNotFound.
	GetBySlug(ctx context.Context, slug string) (*project.Project, error)

	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	Update(ctx context.Context, id int64, req project.UpdateRequest) (*project.Project, error)

	// Delete removes the project row and then its media folder. The
	// storage sweep is best effort; a failed sweep leaves orphaned
	// objects but never resurrects the row.
	Delete(ctx context.Context, id int64) error

	// UploadImage validates the payload as a real JPEG or PNG, stores
	// it under projects/<slug>/<index>-<random>.<ext> and records the
	// public URL in the gallery slot.
	UploadImage(ctx context.Context, id int64, index int, data []byte) (*project.Project, error)
}

type service struct {
	repo      project.Repository
	cache     cache.Cache
	storage   ObjectStorage
	processor *storage.ImageProcessor
}

func NewService(repo project.Repository, c cache.Cache, store ObjectStorage) Service {
	return &service{
		repo:      repo,
		cache:     c,
		storage:   store,
		processor: storage.NewImageProcessor(),
	}
}

func (s *service) List(ctx context.Context, includeDrafts bool) ([]project.Project, error) {
	key := publishedCacheKey
	if includeDrafts {
		key = allCacheKey
	}

	if s.cache != nil {
		var cached []project.Project
		if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
			return cached, nil
		}
	}

	var (
		entities []project.Project
		err      error
	)
	if includeDrafts {
		entities, err = s.repo.ListAll(ctx)
	} else {
		entities, err = s.repo.ListPublished(ctx)
	}
	if err != nil {
		logger.Error("projects read failed, returning empty list", err)
		return []project.Project{}, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, entities, cacheTTL); err != nil {
			logger.Error("projects cache set failed", err)
		}
	}

	return entities, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*project.Project, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *service) Create(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	return created, nil
}

func (s *service) Update(ctx context.Context, id int64, req project.UpdateRequest) (*project.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(entity)

	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)

	if s.storage != nil {
		prefix := storage.ProjectsPrefix + entity.Slug + "/"
		if err := s.storage.RemoveFolder(ctx, prefix); err != nil {
			logger.Error("project media sweep failed", err)
		}
	}

	return nil
}

func (s *service) UploadImage(ctx context.Context, id int64, index int, data []byte) (*project.Project, error) {
	if index < 0 || index >= project.ImageSlots {
		return nil, project.ErrInvalidImageIdx
	}

	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.processor.ValidateImage(data); err != nil {
		return nil, err
	}
	ext, contentType, err := s.processor.DetectFormat(data)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s%s/%d-%s.%s",
		storage.ProjectsPrefix, entity.Slug, index, randomSuffix(), ext)

	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	entity.SetImage(index, url)
	if err := s.repo.UpdateImages(ctx, id, entity.Images); err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	return entity, nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, publishedCacheKey, allCacheKey); err != nil {
		logger.Error("projects cache invalidation failed", err)
	}
}

// randomSuffix keeps re-uploads to the same slot from colliding on a
// stale CDN-cached key.
func randomSuffix() string {
	return uuid.New().String()[:8]
}
