package editor

import (
	"context"
	"fmt"
	"sync"
)

// EditorState is the per-section edit lifecycle.
type EditorState int

const (
	Viewing EditorState = iota
	Editing
	Saving
)

// SectionEditor drives one editable section of the page. The draft is
// a private copy of the selected record; the shared collection is
// never touched until a save succeeds. Saves follow last-writer-wins,
// and every save attempt ends in exactly one toast.
type SectionEditor[T any] struct {
	save    func(ctx context.Context, draft T) (T, error)
	refresh func()
	toasts  *ToastQueue
	label   string

	mu      sync.Mutex
	state   EditorState
	draft   T
	lastErr error
	closed  bool
}

// NewSectionEditor builds an editor for one entity type. save
// persists a draft and returns the stored row; refresh, when not nil,
// is invoked after each successful save to re-fetch the collection.
func NewSectionEditor[T any](label string, save func(ctx context.Context, draft T) (T, error), refresh func(), toasts *ToastQueue) *SectionEditor[T] {
	return &SectionEditor[T]{
		save:    save,
		refresh: refresh,
		toasts:  toasts,
		label:   label,
		state:   Viewing,
	}
}

func (e *SectionEditor[T]) State() EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Edit enters editing with a copy of record as the draft. For "add
// new", pass the zero-valued shape.
func (e *SectionEditor[T]) Edit(record T) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.state == Saving {
		return
	}
	e.state = Editing
	e.draft = record
	e.lastErr = nil
}

func (e *SectionEditor[T]) Draft() T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// SetDraft replaces the draft while editing. Ignored in any other
// state.
func (e *SectionEditor[T]) SetDraft(draft T) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Editing {
		return
	}
	e.draft = draft
}

// LastError is the failure of the most recent save attempt, cleared
// on the next Edit or successful Submit.
func (e *SectionEditor[T]) LastError() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Cancel discards the draft unconditionally. No confirmation, no
// toast.
func (e *SectionEditor[T]) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Editing {
		return
	}
	var zero T
	e.state = Viewing
	e.draft = zero
	e.lastErr = nil
}

// Submit persists the draft. Success patches the draft from the
// stored row, fires one success toast, triggers the refresh callback
// and returns to Viewing. Failure fires one danger toast and stays in
// Editing with the draft intact. A Submit while a save is in flight
// is dropped, as is a completion that lands after Close.
func (e *SectionEditor[T]) Submit(ctx context.Context) error {
	e.mu.Lock()
	if e.closed || e.state != Editing {
		e.mu.Unlock()
		return fmt.Errorf("nothing to submit")
	}
	e.state = Saving
	draft := e.draft
	e.mu.Unlock()

	persisted, err := e.save(ctx, draft)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}

	if err != nil {
		e.state = Editing
		e.lastErr = err
		e.mu.Unlock()

		if e.toasts != nil {
			e.toasts.Push(ToastDanger, fmt.Sprintf("Failed to save %s: %v", e.label, err))
		}
		return err
	}

	e.state = Viewing
	e.draft = persisted
	e.lastErr = nil
	e.mu.Unlock()

	if e.toasts != nil {
		e.toasts.Push(ToastSuccess, fmt.Sprintf("%s saved", e.label))
	}
	if e.refresh != nil {
		e.refresh()
	}

	return nil
}

// Close marks the editor unmounted. In-flight save completions are
// dropped silently.
func (e *SectionEditor[T]) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.state = Viewing
}
