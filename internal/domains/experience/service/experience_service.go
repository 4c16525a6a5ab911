package service

import (
	"context"
	"time"

	"portfolio-backend/internal/domains/experience"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"
)

const (
	cacheKey = "experience:list"
	cacheTTL = 60 * time.Second
)

type Service interface {
	// List returns the timeline newest first. Read failures degrade
	// to an empty list with a log line.
	List(ctx context.Context) ([]experience.WorkExperience, error)

	Upsert(ctx context.Context, req experience.UpsertRequest) (*experience.WorkExperience, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo  experience.Repository
	cache cache.Cache
}

func NewService(repo experience.Repository, c cache.Cache) Service {
	return &service{repo: repo, cache: c}
}

func (s *service) List(ctx context.Context) ([]experience.WorkExperience, error) {
	if s.cache != nil {
		var cached []experience.WorkExperience
		if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	entities, err := s.repo.List(ctx)
	if err != nil {
		logger.Error("experience read failed, returning empty list", err)
		return []experience.WorkExperience{}, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, entities, cacheTTL); err != nil {
			logger.Error("experience cache set failed", err)
		}
	}

	return entities, nil
}

func (s *service) Upsert(ctx context.Context, req experience.UpsertRequest) (*experience.WorkExperience, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	persisted, err := s.repo.Upsert(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	return persisted, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)

	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		logger.Error("experience cache invalidation failed", err)
	}
}
