package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/skill"
)

type fakeRepo struct {
	entries []skill.TechnicalSkill
	listErr error
	nextID  int64
	calls   int
}

func (r *fakeRepo) List(ctx context.Context) ([]skill.TechnicalSkill, error) {
	r.calls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.entries, nil
}

func (r *fakeRepo) Upsert(ctx context.Context, entity *skill.TechnicalSkill) (*skill.TechnicalSkill, error) {
	if entity.ID == 0 {
		r.nextID++
		entity.ID = r.nextID
		r.entries = append(r.entries, *entity)
	} else {
		for i := range r.entries {
			if r.entries[i].ID != entity.ID {
				continue
			}
			if r.entries[i].UserID != entity.UserID {
				return nil, skill.ErrNotOwner
			}
			r.entries[i] = *entity
		}
	}
	copied := *entity
	return &copied, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64, userID uuid.UUID) error {
	for i := range r.entries {
		if r.entries[i].ID != id {
			continue
		}
		if r.entries[i].UserID != userID {
			return skill.ErrNotOwner
		}
		r.entries = append(r.entries[:i], r.entries[i+1:]...)
		return nil
	}
	return skill.ErrSkillNotFound
}

// memoryCache is a minimal in-process stand-in for Redis.
type memoryCache struct {
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (c *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.data, key)
	}
	return nil
}

func (c *memoryCache) Ping(ctx context.Context) error { return nil }

func TestListFailsOpenToEmpty(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection refused")}
	svc := NewService(repo, nil)

	entities, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, entities)
}

func TestListUsesCacheOnSecondRead(t *testing.T) {
	repo := &fakeRepo{entries: []skill.TechnicalSkill{{ID: 1, Name: "Go", Category: "Backend", Level: 9}}}
	svc := NewService(repo, newMemoryCache())

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	second, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls)
}

func TestListGroupedOrdersCategories(t *testing.T) {
	repo := &fakeRepo{entries: []skill.TechnicalSkill{
		{ID: 1, Name: "Postgres", Category: "Databases", Level: 8},
		{ID: 2, Name: "Go", Category: "Backend", Level: 9},
		{ID: 3, Name: "Gin", Category: "Backend", Level: 7},
	}}
	svc := NewService(repo, nil)

	groups, err := svc.ListGrouped(context.Background())

	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Backend", groups[0].Category)
	assert.Equal(t, []string{"Gin", "Go"}, []string{groups[0].Skills[0].Name, groups[0].Skills[1].Name})
	assert.Equal(t, "Databases", groups[1].Category)
}

func TestUpsertInvalidatesCache(t *testing.T) {
	repo := &fakeRepo{}
	cache := newMemoryCache()
	svc := NewService(repo, cache)

	_, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Contains(t, cache.data, "skills:list")

	_, err = svc.Upsert(context.Background(), skill.UpsertRequest{
		Name:     "Go",
		Category: "Backend",
		Level:    9,
		UserID:   uuid.New(),
	})
	require.NoError(t, err)

	assert.NotContains(t, cache.data, "skills:list")
}

func TestUpsertRejectsOutOfRangeLevel(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil)

	_, err := svc.Upsert(context.Background(), skill.UpsertRequest{
		Name:     "Go",
		Category: "Backend",
		Level:    11,
		UserID:   uuid.New(),
	})

	require.Error(t, err)
	assert.Empty(t, repo.entries)
}

func TestDeleteForeignSkillReportsNotOwner(t *testing.T) {
	owner := uuid.New()
	repo := &fakeRepo{entries: []skill.TechnicalSkill{{ID: 1, UserID: owner, Name: "Go", Category: "Backend", Level: 9}}}
	svc := NewService(repo, nil)

	err := svc.Delete(context.Background(), 1, uuid.New())

	assert.ErrorIs(t, err, skill.ErrNotOwner)
	require.NoError(t, svc.Delete(context.Background(), 1, owner))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1, owner), skill.ErrSkillNotFound)
}
