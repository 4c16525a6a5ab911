package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/introduction"
)

type fakeRepo struct {
	stored *introduction.Introduction
	getErr error
}

func (r *fakeRepo) Get(ctx context.Context) (*introduction.Introduction, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.stored == nil {
		return nil, introduction.ErrIntroductionNotFound
	}
	copied := *r.stored
	return &copied, nil
}

func (r *fakeRepo) Upsert(ctx context.Context, entity *introduction.Introduction) (*introduction.Introduction, error) {
	entity.ID = introduction.SingletonID
	r.stored = entity
	copied := *entity
	return &copied, nil
}

func (r *fakeRepo) UpdateAvatar(ctx context.Context, avatarURL string) error {
	if r.stored == nil {
		return introduction.ErrIntroductionNotFound
	}
	r.stored.AvatarURL = avatarURL
	return nil
}

func TestGetMissingRowReturnsNil(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)

	entity, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Nil(t, entity)
}

func TestGetFailsOpenOnRepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{getErr: errors.New("connection refused")}, nil)

	entity, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Nil(t, entity)
}

func TestUpsertAlwaysTargetsSingleton(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil)

	persisted, err := svc.Upsert(context.Background(), introduction.UpsertRequest{
		Name:  "Ada Lovelace",
		Title: "Software Engineer",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(introduction.SingletonID), persisted.ID)

	// A second save replaces the same row.
	again, err := svc.Upsert(context.Background(), introduction.UpsertRequest{
		Name:  "Ada Lovelace",
		Title: "Staff Engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, persisted.ID, again.ID)
	assert.Equal(t, "Staff Engineer", repo.stored.Title)
}

func TestUpsertRejectsMissingName(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil)

	_, err := svc.Upsert(context.Background(), introduction.UpsertRequest{})

	require.Error(t, err)
	assert.Nil(t, repo.stored)
}

func TestUpsertRejectsMalformedEmail(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)

	_, err := svc.Upsert(context.Background(), introduction.UpsertRequest{
		Name:  "Ada",
		Email: "not-an-email",
	})

	assert.Error(t, err)
}
