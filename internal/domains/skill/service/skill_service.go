package service

import (
	"context"
	"time"

	"portfolio-backend/internal/domains/skill"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"

	"github.com/google/uuid"
)

const (
	cacheKey = "skills:list"
	cacheTTL = 60 * time.Second
)

type Service interface {
	// List returns skills ordered category ASC, level DESC. Read
	// failures degrade to an empty list.
	List(ctx context.Context) ([]skill.TechnicalSkill, error)

	// ListGrouped returns display groups: categories alphabetically,
	// names alphabetically within each group.
	ListGrouped(ctx context.Context) ([]skill.SkillGroup, error)

	Upsert(ctx context.Context, req skill.UpsertRequest) (*skill.TechnicalSkill, error)
	Delete(ctx context.Context, id int64, userID uuid.UUID) error
}

type service struct {
	repo  skill.Repository
	cache cache.Cache
}

func NewService(repo skill.Repository, c cache.Cache) Service {
	return &service{repo: repo, cache: c}
}

func (s *service) List(ctx context.Context) ([]skill.TechnicalSkill, error) {
	if s.cache != nil {
		var cached []skill.TechnicalSkill
		if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	entities, err := s.repo.List(ctx)
	if err != nil {
		logger.Error("skills read failed, returning empty list", err)
		return []skill.TechnicalSkill{}, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, entities, cacheTTL); err != nil {
			logger.Error("skills cache set failed", err)
		}
	}

	return entities, nil
}

func (s *service) ListGrouped(ctx context.Context) ([]skill.SkillGroup, error) {
	entities, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return skill.GroupByCategory(entities), nil
}

func (s *service) Upsert(ctx context.Context, req skill.UpsertRequest) (*skill.TechnicalSkill, error) {
	// Validation runs before any store access.
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

func (s *service) Delete(ctx context.Context, id int64, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
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
		logger.Error("skills cache invalidation failed", err)
	}
}
