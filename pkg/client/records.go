package client

import (
	"context"
	"fmt"
	"net/http"

	"portfolio-backend/internal/domains/experience"
	"portfolio-backend/internal/domains/introduction"
	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/domains/skill"
	"portfolio-backend/internal/domains/study"
	"portfolio-backend/pkg/logger"
)

// Records is the typed CRUD surface per entity. Reads never propagate
// transport or server errors: they log and return an empty collection
// (nil for the introduction singleton) so a broken backend renders an
// empty page, not an error page. Writes return the server's message.
type Records struct {
	client *Client
}

func (r *Records) GetIntroduction(ctx context.Context) *introduction.Introduction {
	var result introduction.Introduction
	if err := r.client.do(ctx, http.MethodGet, "/api/v1/introduction", nil, &result); err != nil {
		logger.Error("introduction fetch failed", err)
		return nil
	}
	if result.ID == 0 {
		return nil
	}
	return &result
}

func (r *Records) ListExperience(ctx context.Context) []experience.WorkExperience {
	result := make([]experience.WorkExperience, 0)
	if err := r.client.do(ctx, http.MethodGet, "/api/v1/experience", nil, &result); err != nil {
		logger.Error("experience fetch failed", err)
		return []experience.WorkExperience{}
	}
	return result
}

func (r *Records) ListStudies(ctx context.Context) []study.Study {
	result := make([]study.Study, 0)
	if err := r.client.do(ctx, http.MethodGet, "/api/v1/studies", nil, &result); err != nil {
		logger.Error("studies fetch failed", err)
		return []study.Study{}
	}
	return result
}

func (r *Records) ListSkills(ctx context.Context) []skill.TechnicalSkill {
	result := make([]skill.TechnicalSkill, 0)
	if err := r.client.do(ctx, http.MethodGet, "/api/v1/skills", nil, &result); err != nil {
		logger.Error("skills fetch failed", err)
		return []skill.TechnicalSkill{}
	}
	return result
}

func (r *Records) ListProjects(ctx context.Context) []project.Project {
	result := make([]project.Project, 0)
	if err := r.client.do(ctx, http.MethodGet, "/api/v1/projects", nil, &result); err != nil {
		logger.Error("projects fetch failed", err)
		return []project.Project{}
	}
	return result
}

// GetProjectBySlug is the one read that reports absence: the detail
// route needs to distinguish "not found" from "render empty".
func (r *Records) GetProjectBySlug(ctx context.Context, slug string) (*project.Project, error) {
	var result project.Project
	if err := r.client.do(ctx, http.MethodGet, "/api/v1/projects/"+slug, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *Records) UpsertIntroduction(ctx context.Context, req introduction.UpsertRequest) (*introduction.Introduction, error) {
	var result introduction.Introduction
	if err := r.client.do(ctx, http.MethodPut, "/api/v1/introduction", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *Records) UpsertExperience(ctx context.Context, req experience.UpsertRequest) (*experience.WorkExperience, error) {
	var result experience.WorkExperience
	if err := r.client.do(ctx, http.MethodPut, "/api/v1/experience", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *Records) UpsertStudy(ctx context.Context, req study.UpsertRequest) (*study.Study, error) {
	var result study.Study
	if err := r.client.do(ctx, http.MethodPut, "/api/v1/studies", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *Records) UpsertSkill(ctx context.Context, req skill.UpsertRequest) (*skill.TechnicalSkill, error) {
	var result skill.TechnicalSkill
	if err := r.client.do(ctx, http.MethodPut, "/api/v1/skills", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *Records) CreateProject(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
	var result project.Project
	if err := r.client.do(ctx, http.MethodPost, "/api/v1/projects", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *Records) UpdateProject(ctx context.Context, id int64, req project.UpdateRequest) (*project.Project, error) {
	var result project.Project
	path := fmt.Sprintf("/api/v1/projects/%d", id)
	if err := r.client.do(ctx, http.MethodPut, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *Records) DeleteProject(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/v1/projects/%d", id)
	return r.client.do(ctx, http.MethodDelete, path, nil, nil)
}

func (r *Records) DeleteExperience(ctx context.Context, id int64) error {
	return r.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/experience/%d", id), nil, nil)
}

func (r *Records) DeleteStudy(ctx context.Context, id int64) error {
	return r.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/studies/%d", id), nil, nil)
}

func (r *Records) DeleteSkill(ctx context.Context, id int64) error {
	return r.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/skills/%d", id), nil, nil)
}
