package session

import (
	"context"
	"fmt"

	"github.com/sujalbistaa/postpilot/internal/models"
)

// Command is a single user action.
type Command interface {
	apply(ctx context.Context, s *Session) (Result, error)
}

// SetField overwrites one scalar draft field.
type SetField struct {
	Name  string
	Value string
}

func (c SetField) apply(_ context.Context, s *Session) (Result, error) {
	return Result{}, s.form.SetField(c.Name, c.Value)
}

// TogglePlatform flips a platform in the draft.
type TogglePlatform struct {
	Platform models.Platform
}

func (c TogglePlatform) apply(_ context.Context, s *Session) (Result, error) {
	s.form.TogglePlatform(c.Platform)
	return Result{}, nil
}

// BeginCreate opens an empty form.
type BeginCreate struct{}

func (BeginCreate) apply(_ context.Context, s *Session) (Result, error) {
	s.form.BeginCreate()
	return Result{}, nil
}

// BeginEdit opens the form on an existing post. Unknown ids leave the form
// untouched.
type BeginEdit struct {
	ID int64
}

func (c BeginEdit) apply(ctx context.Context, s *Session) (Result, error) {
	post, found, err := s.store.Get(ctx, c.ID)
	if err != nil {
		return Result{}, fmt.Errorf("begin edit: %w", err)
	}
	if found {
		s.form.BeginEdit(post)
	}
	return Result{}, nil
}

// Reset discards the draft and closes the form.
type Reset struct{}

func (Reset) apply(_ context.Context, s *Session) (Result, error) {
	s.form.Reset()
	return Result{Closed: true}, nil
}

// Submit creates or updates a post from the draft.
type Submit struct{}

func (Submit) apply(ctx context.Context, s *Session) (Result, error) {
	return s.submit(ctx)
}

// Delete removes a post once the user has confirmed it.
type Delete struct {
	ID        int64
	Confirmed bool
}

func (c Delete) apply(ctx context.Context, s *Session) (Result, error) {
	if !c.Confirmed {
		return Result{}, ErrDeleteNotConfirmed
	}
	deleted, err := s.store.Delete(ctx, c.ID)
	if err != nil {
		return Result{}, fmt.Errorf("delete: %w", err)
	}
	res := Result{Deleted: deleted}
	if id, editing := s.form.EditingID(); editing && id == c.ID {
		s.form.Reset()
		res.Closed = true
	}
	return res, nil
}
