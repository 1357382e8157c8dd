package models

import (
	"errors"
	"testing"
	"time"
)

func validDraft() Draft {
	return Draft{
		Content:       "Launch day",
		Platforms:     []Platform{PlatformTwitter},
		ScheduledDate: "2025-01-15",
		ScheduledTime: "10:00",
		Status:        StatusScheduled,
	}
}

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Draft)
		want   error
	}{
		{name: "complete", mutate: func(*Draft) {}},
		{name: "empty content", mutate: func(d *Draft) { d.Content = "" }, want: ErrMissingRequiredField},
		{name: "no platforms", mutate: func(d *Draft) { d.Platforms = nil }, want: ErrMissingRequiredField},
		{name: "empty date", mutate: func(d *Draft) { d.ScheduledDate = "" }, want: ErrMissingRequiredField},
		{name: "empty time", mutate: func(d *Draft) { d.ScheduledTime = "" }, want: ErrMissingRequiredField},
		{name: "empty status is allowed", mutate: func(d *Draft) { d.Status = "" }},
		{name: "whitespace content counts as present", mutate: func(d *Draft) { d.Content = "  " }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(&d)
			err := d.Validate()
			if !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft()
	if d.Status != StatusScheduled {
		t.Fatalf("Status = %q, want %q", d.Status, StatusScheduled)
	}
	if d.Platforms == nil || len(d.Platforms) != 0 {
		t.Fatalf("Platforms = %#v, want empty non-nil slice", d.Platforms)
	}
	if d.Content != "" || d.ScheduledDate != "" || d.ScheduledTime != "" {
		t.Fatalf("unexpected non-empty fields: %+v", d)
	}
}

func TestDraftNormalized(t *testing.T) {
	d := Draft{Platforms: []Platform{PlatformTwitter, PlatformLinkedIn, PlatformTwitter}}
	got := d.Normalized()
	if len(got.Platforms) != 2 || got.Platforms[0] != PlatformTwitter || got.Platforms[1] != PlatformLinkedIn {
		t.Fatalf("Platforms = %v, want [twitter linkedin]", got.Platforms)
	}
	if got.Status != StatusScheduled {
		t.Fatalf("Status = %q, want %q", got.Status, StatusScheduled)
	}
	if len(d.Platforms) != 3 {
		t.Fatalf("Normalized mutated the receiver: %v", d.Platforms)
	}
}

func TestDraftNormalizedPadsSchedule(t *testing.T) {
	tests := []struct {
		date, clock         string
		wantDate, wantClock string
	}{
		{"2025-01-15", "10:00", "2025-01-15", "10:00"},
		{"2025-1-5", "9:00", "2025-01-05", "09:00"},
		{"2025-01-15", "9:5", "2025-01-15", "09:05"},
		{"soon", "noon", "soon", "noon"},
		{"", "", "", ""},
	}
	for _, tc := range tests {
		got := Draft{ScheduledDate: tc.date, ScheduledTime: tc.clock}.Normalized()
		if got.ScheduledDate != tc.wantDate || got.ScheduledTime != tc.wantClock {
			t.Fatalf("Normalized(%q, %q) = %q, %q, want %q, %q",
				tc.date, tc.clock, got.ScheduledDate, got.ScheduledTime, tc.wantDate, tc.wantClock)
		}
	}
}

func TestKnownPlatform(t *testing.T) {
	for _, p := range Platforms {
		if !KnownPlatform(p) {
			t.Fatalf("KnownPlatform(%q) = false", p)
		}
	}
	for _, p := range []Platform{"Twitter", "mastodon", ""} {
		if KnownPlatform(p) {
			t.Fatalf("KnownPlatform(%q) = true", p)
		}
	}
}

func TestDraftFromPostCopiesPlatforms(t *testing.T) {
	p := Post{
		ID:            7,
		Content:       "hello",
		Platforms:     []Platform{PlatformFacebook},
		ScheduledDate: "2025-02-01",
		ScheduledTime: "08:15",
		Status:        StatusDraft,
		CreatedAt:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	d := DraftFromPost(p)
	d.Platforms[0] = PlatformInstagram
	if p.Platforms[0] != PlatformFacebook {
		t.Fatal("DraftFromPost shares the platform slice with the post")
	}
	if d.Content != p.Content || d.ScheduledDate != p.ScheduledDate || d.ScheduledTime != p.ScheduledTime || d.Status != p.Status {
		t.Fatalf("DraftFromPost = %+v, want fields of %+v", d, p)
	}
}

func TestPostHasPlatform(t *testing.T) {
	p := Post{Platforms: []Platform{PlatformTwitter, PlatformLinkedIn}}
	if !p.HasPlatform(PlatformLinkedIn) {
		t.Fatal("expected linkedin to be present")
	}
	if p.HasPlatform(PlatformInstagram) {
		t.Fatal("expected instagram to be absent")
	}
}
