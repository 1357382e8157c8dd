// Package form holds the transient state of the create/edit post form.
package form

import (
	"errors"
	"fmt"

	"github.com/sujalbistaa/postpilot/internal/models"
)

// ErrUnknownField is returned by SetField for names that are not scalar
// draft fields.
var ErrUnknownField = errors.New("unknown form field")

// Scalar draft field names, as posted by the browser form.
const (
	FieldContent       = "content"
	FieldScheduledDate = "scheduledDate"
	FieldScheduledTime = "scheduledTime"
	FieldStatus        = "status"
)

// Fields lists every name SetField accepts.
var Fields = []string{FieldContent, FieldScheduledDate, FieldScheduledTime, FieldStatus}

// Form is a draft plus an optional edit target. With no target the form
// creates a new post on submit.
type Form struct {
	draft     models.Draft
	editingID int64
	editing   bool
	open      bool
}

// New returns a closed form with an empty draft.
func New() *Form {
	return &Form{draft: models.NewDraft()}
}

// SetField overwrites one scalar field of the draft.
func (f *Form) SetField(name, value string) error {
	switch name {
	case FieldContent:
		f.draft.Content = value
	case FieldScheduledDate:
		f.draft.ScheduledDate = value
	case FieldScheduledTime:
		f.draft.ScheduledTime = value
	case FieldStatus:
		f.draft.Status = models.Status(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// TogglePlatform adds the platform when absent and removes it when present.
func (f *Form) TogglePlatform(platform models.Platform) {
	kept := make([]models.Platform, 0, len(f.draft.Platforms)+1)
	removed := false
	for _, p := range f.draft.Platforms {
		if p == platform {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		kept = append(kept, platform)
	}
	f.draft.Platforms = kept
}

// BeginEdit loads the post into the draft and targets it on submit.
func (f *Form) BeginEdit(post models.Post) {
	f.draft = models.DraftFromPost(post)
	f.editingID = post.ID
	f.editing = true
	f.open = true
}

// BeginCreate opens an empty form for a new post.
func (f *Form) BeginCreate() {
	f.clear()
	f.open = true
}

// Reset empties the form and closes it.
func (f *Form) Reset() {
	f.clear()
	f.open = false
}

func (f *Form) clear() {
	f.draft = models.NewDraft()
	f.editingID = 0
	f.editing = false
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() models.Draft {
	d := f.draft
	d.Platforms = append([]models.Platform{}, f.draft.Platforms...)
	return d
}

// EditingID reports the post being edited, if any.
func (f *Form) EditingID() (int64, bool) {
	return f.editingID, f.editing
}

// IsOpen reports whether the form should be shown.
func (f *Form) IsOpen() bool {
	return f.open
}
