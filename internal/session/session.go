// Package session turns user actions into commands against a per-browser
// form and the shared post store.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sujalbistaa/postpilot/internal/form"
	"github.com/sujalbistaa/postpilot/internal/models"
)

// ErrDeleteNotConfirmed is returned for a delete the user has not confirmed.
var ErrDeleteNotConfirmed = errors.New("delete not confirmed")

// MissingFieldsNotice is shown after a rejected submit.
const MissingFieldsNotice = "Please fill in all required fields"

// PostStore is the part of the store a session writes through.
type PostStore interface {
	Get(ctx context.Context, id int64) (models.Post, bool, error)
	Create(ctx context.Context, draft models.Draft) (models.Post, error)
	Update(ctx context.Context, id int64, draft models.Draft) (models.Post, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Result describes what a command changed.
type Result struct {
	// Post is the created or updated post, when there is one.
	Post    *models.Post
	Created bool
	Updated bool
	Deleted bool
	// Closed is set when the command closed the form.
	Closed bool
}

// Session owns one form. Commands on a session run one at a time.
type Session struct {
	mu     sync.Mutex
	form   *form.Form
	store  PostStore
	notice string
}

// New returns a session with a closed, empty form.
func New(store PostStore) *Session {
	return &Session{form: form.New(), store: store}
}

// Dispatch applies cmd and reports its effect.
func (s *Session) Dispatch(ctx context.Context, cmd Command) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cmd.apply(ctx, s)
}

// View is a point-in-time copy of the form for rendering.
type View struct {
	Open      bool
	Editing   bool
	EditingID int64
	Draft     models.Draft
	Notice    string
}

// Snapshot copies the form state and consumes the pending notice.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, editing := s.form.EditingID()
	v := View{
		Open:      s.form.IsOpen(),
		Editing:   editing,
		EditingID: id,
		Draft:     s.form.Draft(),
		Notice:    s.notice,
	}
	s.notice = ""
	return v
}

func (s *Session) submit(ctx context.Context) (Result, error) {
	draft := s.form.Draft()
	if id, editing := s.form.EditingID(); editing {
		post, found, err := s.store.Update(ctx, id, draft)
		if err != nil {
			return s.rejected(err)
		}
		s.form.Reset()
		res := Result{Updated: found, Closed: true}
		if found {
			res.Post = &post
		}
		return res, nil
	}

	post, err := s.store.Create(ctx, draft)
	if err != nil {
		return s.rejected(err)
	}
	s.form.Reset()
	return Result{Post: &post, Created: true, Closed: true}, nil
}

func (s *Session) rejected(err error) (Result, error) {
	if errors.Is(err, models.ErrMissingRequiredField) {
		s.notice = MissingFieldsNotice
		return Result{}, err
	}
	return Result{}, fmt.Errorf("submit: %w", err)
}

// Notify queues a one-shot message for the next rendered page.
func (s *Session) Notify(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = msg
}
