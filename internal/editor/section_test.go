package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecord struct {
	ID   int64
	Name string
}

func TestSectionEditorSuccessfulSave(t *testing.T) {
	toasts := NewToastQueue()
	defer toasts.Close()

	refreshed := 0
	saved := fakeRecord{}
	editor := NewSectionEditor("introduction",
		func(ctx context.Context, draft fakeRecord) (fakeRecord, error) {
			saved = draft
			draft.ID = 42
			return draft, nil
		},
		func() { refreshed++ },
		toasts,
	)

	editor.Edit(fakeRecord{Name: "old"})
	assert.Equal(t, Editing, editor.State())

	editor.SetDraft(fakeRecord{Name: "new"})
	require.NoError(t, editor.Submit(context.Background()))

	assert.Equal(t, Viewing, editor.State())
	assert.Equal(t, "new", saved.Name)
	assert.Equal(t, int64(42), editor.Draft().ID)
	assert.Equal(t, 1, refreshed)

	active := toasts.Active()
	require.Len(t, active, 1)
	assert.Equal(t, ToastSuccess, active[0].Variant)
}

func TestSectionEditorFailedSaveKeepsDraft(t *testing.T) {
	toasts := NewToastQueue()
	defer toasts.Close()

	editor := NewSectionEditor("experience",
		func(ctx context.Context, draft fakeRecord) (fakeRecord, error) {
			return fakeRecord{}, errors.New("boom")
		},
		nil,
		toasts,
	)

	editor.Edit(fakeRecord{Name: "draft"})
	err := editor.Submit(context.Background())
	require.Error(t, err)

	// Still editing, draft and error preserved, one danger toast.
	assert.Equal(t, Editing, editor.State())
	assert.Equal(t, "draft", editor.Draft().Name)
	assert.EqualError(t, editor.LastError(), "boom")

	active := toasts.Active()
	require.Len(t, active, 1)
	assert.Equal(t, ToastDanger, active[0].Variant)
}

func TestSectionEditorIdempotentResubmitStillToasts(t *testing.T) {
	toasts := NewToastQueue()
	defer toasts.Close()

	editor := NewSectionEditor("studies",
		func(ctx context.Context, draft fakeRecord) (fakeRecord, error) {
			return draft, nil
		},
		nil,
		toasts,
	)

	record := fakeRecord{ID: 1, Name: "unchanged"}

	editor.Edit(record)
	require.NoError(t, editor.Submit(context.Background()))
	editor.Edit(record)
	require.NoError(t, editor.Submit(context.Background()))

	// One success toast per attempt, even when nothing changed.
	assert.Len(t, toasts.Active(), 2)
}

func TestSectionEditorCancelDiscardsDraft(t *testing.T) {
	editor := NewSectionEditor[fakeRecord]("skills",
		func(ctx context.Context, draft fakeRecord) (fakeRecord, error) {
			t.Fatal("save must not run on cancel")
			return draft, nil
		},
		nil,
		nil,
	)

	editor.Edit(fakeRecord{Name: "wip"})
	editor.Cancel()

	assert.Equal(t, Viewing, editor.State())
	assert.Zero(t, editor.Draft())
}

func TestSectionEditorSubmitGuards(t *testing.T) {
	editor := NewSectionEditor("projects",
		func(ctx context.Context, draft fakeRecord) (fakeRecord, error) {
			return draft, nil
		},
		nil,
		nil,
	)

	// Submit without an open draft is rejected.
	assert.Error(t, editor.Submit(context.Background()))
}

func TestSectionEditorStaleCompletionAfterClose(t *testing.T) {
	toasts := NewToastQueue()
	defer toasts.Close()

	started := make(chan struct{})
	release := make(chan struct{})

	editor := NewSectionEditor("introduction",
		func(ctx context.Context, draft fakeRecord) (fakeRecord, error) {
			close(started)
			<-release
			return draft, nil
		},
		nil,
		toasts,
	)

	editor.Edit(fakeRecord{Name: "late"})

	done := make(chan error, 1)
	go func() { done <- editor.Submit(context.Background()) }()

	<-started
	editor.Close()
	close(release)

	require.NoError(t, <-done)

	// The completion landed after unmount: no toast, no state change.
	assert.Empty(t, toasts.Active())
	assert.Equal(t, Viewing, editor.State())
}

func TestSectionEditorDraftIsACopy(t *testing.T) {
	editor := NewSectionEditor[fakeRecord]("introduction",
		func(ctx context.Context, draft fakeRecord) (fakeRecord, error) {
			return draft, nil
		},
		nil,
		nil,
	)

	shared := fakeRecord{ID: 7, Name: "shared"}
	editor.Edit(shared)

	draft := editor.Draft()
	draft.Name = "mutated"
	editor.SetDraft(draft)

	// The record handed to Edit is untouched until save succeeds.
	assert.Equal(t, "shared", shared.Name)
}
