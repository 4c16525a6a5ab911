package service

import (
	"context"
	"errors"
	"time"

	"portfolio-backend/internal/domains/introduction"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"
)

const (
	cacheKey = "introduction"
	cacheTTL = 60 * time.Second
)

// Service owns the introduction singleton: cached public reads and
// authenticated replacement.
type Service interface {
	// Get returns the introduction, or nil when the row does not
	// exist yet. Read failures degrade to nil with a log line so the
	// public page still renders.
	Get(ctx context.Context) (*introduction.Introduction, error)

	// Upsert validates and replaces the singleton, returning the
	// persisted state.
	Upsert(ctx context.Context, req introduction.UpsertRequest) (*introduction.Introduction, error)
}

type service struct {
	repo  introduction.Repository
	cache cache.Cache
}

func NewService(repo introduction.Repository, c cache.Cache) Service {
	return &service{repo: repo, cache: c}
}

func (s *service) Get(ctx context.Context) (*introduction.Introduction, error) {
	// Cache-aside read.
	if s.cache != nil {
		var cached introduction.Introduction
		if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
			return &cached, nil
		}
	}

	entity, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, introduction.ErrIntroductionNotFound) {
			return nil, nil
		}
		// Fail open: visitors get an empty section, not an error page.
		logger.Error("introduction read failed, returning empty", err)
		return nil, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, entity, cacheTTL); err != nil {
			logger.Error("introduction cache set failed", err)
		}
	}

	return entity, nil
}

func (s *service) Upsert(ctx context.Context, req introduction.UpsertRequest) (*introduction.Introduction, error) {
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

func (s *service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		logger.Error("introduction cache invalidation failed", err)
	}
}
