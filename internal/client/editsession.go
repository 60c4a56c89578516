package client

import (
	"context"
	"errors"

	"github.com/sakif/property-board/internal/model"
)

// ErrNotEditing is returned by draft operations when no edit is in progress.
var ErrNotEditing = errors.New("no edit in progress")

// EditDraft is the local working copy of a record's mutable fields while an
// edit is in progress. It is a COPY of the target record, never a reference —
// changing the draft must not touch the snapshot.
type EditDraft struct {
	Title    string
	Price    float64
	Location string
}

// updater is the slice of the API the session needs for Save. *Client
// satisfies it; tests substitute a fake.
type updater interface {
	Update(ctx context.Context, id string, draft model.PropertyDraft) (*model.Property, error)
}

// EditSession tracks the single record, if any, currently being edited.
//
// A two-state machine:
//
//	Idle    --StartEdit-->  Editing(targetID, draft copy)
//	Editing --Cancel-->     Idle       (draft discarded, no network)
//	Editing --Set*-->       Editing    (draft changes locally only)
//	Editing --Save ok-->    Idle
//	Editing --Save fail-->  Editing    (draft survives for retry or cancel)
//
// At most one record is in edit at a time; StartEdit while editing replaces
// the current target rather than stacking.
//
// The session is client-local UI state driven from a single goroutine (the
// command loop), so it carries no lock.
type EditSession struct {
	editing  bool
	targetID string
	draft    EditDraft
}

// NewEditSession returns a session in the Idle state.
func NewEditSession() *EditSession {
	return &EditSession{}
}

// Editing reports whether an edit is in progress.
func (s *EditSession) Editing() bool {
	return s.editing
}

// TargetID returns the id of the record being edited, or "" when Idle.
func (s *EditSession) TargetID() string {
	if !s.editing {
		return ""
	}
	return s.targetID
}

// Draft returns the current working copy. Zero value when Idle.
func (s *EditSession) Draft() EditDraft {
	if !s.editing {
		return EditDraft{}
	}
	return s.draft
}

// StartEdit enters (or re-enters) the Editing state, pre-filling the draft
// from the record's mutable fields.
func (s *EditSession) StartEdit(p model.Property) {
	s.editing = true
	s.targetID = p.ID
	s.draft = EditDraft{
		Title:    p.Title,
		Price:    p.Price,
		Location: p.Location,
	}
}

// Cancel discards the draft and returns to Idle. No store interaction.
func (s *EditSession) Cancel() {
	s.editing = false
	s.targetID = ""
	s.draft = EditDraft{}
}

// SetTitle changes the draft title locally.
func (s *EditSession) SetTitle(title string) error {
	if !s.editing {
		return ErrNotEditing
	}
	s.draft.Title = title
	return nil
}

// SetPrice changes the draft price locally.
func (s *EditSession) SetPrice(price float64) error {
	if !s.editing {
		return ErrNotEditing
	}
	s.draft.Price = price
	return nil
}

// SetLocation changes the draft location locally.
func (s *EditSession) SetLocation(location string) error {
	if !s.editing {
		return ErrNotEditing
	}
	s.draft.Location = location
	return nil
}

// Save submits the draft as a full-replace update. On success the session
// returns to Idle; on failure it STAYS in Editing so the user can retry or
// cancel — a failed save must never silently drop the draft.
func (s *EditSession) Save(ctx context.Context, api updater) (*model.Property, error) {
	if !s.editing {
		return nil, ErrNotEditing
	}

	price := s.draft.Price
	updated, err := api.Update(ctx, s.targetID, model.PropertyDraft{
		Title:    s.draft.Title,
		Price:    &price,
		Location: s.draft.Location,
	})
	if err != nil {
		return nil, err
	}

	s.Cancel()
	return updated, nil
}
