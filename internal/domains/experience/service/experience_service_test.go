package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/experience"
)

type fakeRepo struct {
	entries []experience.WorkExperience
	listErr error
	nextID  int64
	calls   int
}

func (r *fakeRepo) List(ctx context.Context) ([]experience.WorkExperience, error) {
	r.calls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.entries, nil
}

func (r *fakeRepo) Upsert(ctx context.Context, entity *experience.WorkExperience) (*experience.WorkExperience, error) {
	if entity.ID == 0 {
		r.nextID++
		entity.ID = r.nextID
		r.entries = append(r.entries, *entity)
	} else {
		for i := range r.entries {
			if r.entries[i].ID == entity.ID {
				r.entries[i] = *entity
			}
		}
	}
	copied := *entity
	return &copied, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) error {
	for i := range r.entries {
		if r.entries[i].ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return experience.ErrExperienceNotFound
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
	repo := &fakeRepo{entries: []experience.WorkExperience{{ID: 1, Company: "Acme"}}}
	svc := NewService(repo, newMemoryCache())

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	second, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls)
}

func TestUpsertInvalidatesCache(t *testing.T) {
	repo := &fakeRepo{}
	cache := newMemoryCache()
	svc := NewService(repo, cache)

	_, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Contains(t, cache.data, "experience:list")

	_, err = svc.Upsert(context.Background(), experience.UpsertRequest{
		Company:   "Acme",
		Role:      "Engineer",
		StartDate: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.NotContains(t, cache.data, "experience:list")
}

func TestUpsertRoundTrip(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil)

	start := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	persisted, err := svc.Upsert(context.Background(), experience.UpsertRequest{
		Company:      "Acme",
		Role:         "Engineer",
		Description:  "Built things",
		Technologies: []string{"go", "postgres"},
		StartDate:    start,
	})
	require.NoError(t, err)
	require.NotZero(t, persisted.ID)

	entities, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "Acme", entities[0].Company)
	assert.Equal(t, []string{"go", "postgres"}, entities[0].Technologies)
	assert.True(t, entities[0].StartDate.Equal(start))
}

func TestUpsertRejectsEndBeforeStart(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil)

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(-1, 0, 0)

	_, err := svc.Upsert(context.Background(), experience.UpsertRequest{
		Company:   "Acme",
		Role:      "Engineer",
		StartDate: start,
		EndDate:   &end,
	})

	require.Error(t, err)
	assert.Empty(t, repo.entries)
}
