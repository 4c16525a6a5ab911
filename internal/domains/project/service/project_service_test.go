package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/project"
)

type fakeRepo struct {
	mu       sync.Mutex
	nextID   int64
	rows     map[int64]project.Project
	listErr  error
	imageSet map[int64][]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[int64]project.Project), imageSet: make(map[int64][]string)}
}

func (r *fakeRepo) ListPublished(ctx context.Context) ([]project.Project, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := []project.Project{}
	for _, p := range r.rows {
		if p.IsPublished() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAll(ctx context.Context) ([]project.Project, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := []project.Project{}
	for _, p := range r.rows {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeRepo) GetBySlug(ctx context.Context, slug string) (*project.Project, error) {
	for _, p := range r.rows {
		if p.Slug == slug {
			copied := p
			return &copied, nil
		}
	}
	return nil, project.ErrProjectNotFound
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*project.Project, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, project.ErrProjectNotFound
	}
	copied := p
	return &copied, nil
}

func (r *fakeRepo) Create(ctx context.Context, entity *project.Project) (*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.rows {
		if p.Slug == entity.Slug {
			return nil, project.ErrDuplicateSlug
		}
	}
	r.nextID++
	created := *entity
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	r.rows[created.ID] = created
	return &created, nil
}

func (r *fakeRepo) Update(ctx context.Context, entity *project.Project) (*project.Project, error) {
	if _, ok := r.rows[entity.ID]; !ok {
		return nil, project.ErrProjectNotFound
	}
	r.rows[entity.ID] = *entity
	copied := *entity
	return &copied, nil
}

func (r *fakeRepo) UpdateImages(ctx context.Context, id int64, images []string) error {
	p, ok := r.rows[id]
	if !ok {
		return project.ErrProjectNotFound
	}
	p.Images = images
	r.rows[id] = p
	r.imageSet[id] = images
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return project.ErrProjectNotFound
	}
	delete(r.rows, id)
	return nil
}

type fakeStorage struct {
	uploads         []string
	removedPrefixes []string
}

func (s *fakeStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	s.uploads = append(s.uploads, key)
	return "http://storage.local/portfolio/" + key, nil
}

func (s *fakeStorage) RemoveFolder(ctx context.Context, prefix string) error {
	s.removedPrefixes = append(s.removedPrefixes, prefix)
	return nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestCreateDerivesSlugFromTitle(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, &fakeStorage{})

	created, err := svc.Create(context.Background(), project.CreateRequest{
		Title:  "Año de Diseño",
		Status: project.StatusPublished,
	})

	require.NoError(t, err)
	assert.Equal(t, "ano-de-diseno", created.Slug)
	assert.NotNil(t, created.PublishedAt)
	assert.Len(t, created.Images, project.ImageSlots)
}

func TestCreateDuplicateSlugLeavesExistingUntouched(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, &fakeStorage{})

	first, err := svc.Create(context.Background(), project.CreateRequest{Title: "My Project"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), project.CreateRequest{Title: "My Project"})
	require.ErrorIs(t, err, project.ErrDuplicateSlug)

	// The original row is unchanged.
	stored, err := repo.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Title, stored.Title)
	assert.Equal(t, first.Slug, stored.Slug)
	assert.Len(t, repo.rows, 1)
}

func TestListFailsOpenToEmpty(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("connection refused")
	svc := NewService(repo, nil, &fakeStorage{})

	entities, err := svc.List(context.Background(), false)

	require.NoError(t, err)
	assert.Empty(t, entities)
}

func TestListHidesDraftsFromAnonymous(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, &fakeStorage{})

	_, err := svc.Create(context.Background(), project.CreateRequest{Title: "Published", Status: project.StatusPublished})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), project.CreateRequest{Title: "Draft"})
	require.NoError(t, err)

	visible, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	all, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteRemovesMediaFolder(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStorage{}
	svc := NewService(repo, nil, store)

	created, err := svc.Create(context.Background(), project.CreateRequest{Title: "Old Work"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
	require.Len(t, store.removedPrefixes, 1)
	assert.Equal(t, "projects/old-work/", store.removedPrefixes[0])
}

func TestUploadImageStoresSlotURL(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStorage{}
	svc := NewService(repo, nil, store)

	created, err := svc.Create(context.Background(), project.CreateRequest{Title: "Gallery"})
	require.NoError(t, err)

	updated, err := svc.UploadImage(context.Background(), created.ID, 1, pngBytes(t))
	require.NoError(t, err)

	require.Len(t, store.uploads, 1)
	key := store.uploads[0]
	assert.True(t, strings.HasPrefix(key, "projects/gallery/1-"), "key %q", key)
	assert.True(t, strings.HasSuffix(key, ".png"), "key %q", key)

	require.Len(t, updated.Images, project.ImageSlots)
	assert.Empty(t, updated.Images[0])
	assert.Contains(t, updated.Images[1], key)
}

func TestUploadImageRejectsBadIndex(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStorage{}
	svc := NewService(repo, nil, store)

	_, err := svc.UploadImage(context.Background(), 1, 2, pngBytes(t))
	assert.ErrorIs(t, err, project.ErrInvalidImageIdx)
	assert.Empty(t, store.uploads)
}

func TestUploadImageRejectsNonImagePayload(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStorage{}
	svc := NewService(repo, nil, store)

	created, err := svc.Create(context.Background(), project.CreateRequest{Title: "Gallery"})
	require.NoError(t, err)

	_, err = svc.UploadImage(context.Background(), created.ID, 0, []byte("definitely not an image"))
	require.Error(t, err)
	assert.Empty(t, store.uploads)
}
