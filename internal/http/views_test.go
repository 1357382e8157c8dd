package http

import (
	"testing"

	"github.com/sujalbistaa/postpilot/internal/models"
)

func TestFormatSchedule(t *testing.T) {
	tests := []struct {
		date, clock, want string
	}{
		{"2025-01-15", "10:00", "Jan 15, 2025 at 10:00 AM"},
		{"2025-01-10", "14:30", "Jan 10, 2025 at 02:30 PM"},
		{"2024-12-20", "09:00", "Dec 20, 2024 at 09:00 AM"},
		{"soon", "10:00", "soon 10:00"},
	}
	for _, tc := range tests {
		if got := formatSchedule(tc.date, tc.clock); got != tc.want {
			t.Fatalf("formatSchedule(%q, %q) = %q, want %q", tc.date, tc.clock, got, tc.want)
		}
	}
}

func TestFormatShortDate(t *testing.T) {
	if got := formatShortDate("2025-01-15", "10:00"); got != "Jan 15" {
		t.Fatalf("formatShortDate = %q, want %q", got, "Jan 15")
	}
	if got := formatShortDate("2025-13-40", "10:00"); got != "2025-13-40" {
		t.Fatalf("formatShortDate = %q, want raw date", got)
	}
}

func TestStylesFallBackToGray(t *testing.T) {
	if got := platformStyle(models.PlatformInstagram); got != "bg-pink-100 text-pink-700" {
		t.Fatalf("platformStyle(instagram) = %q", got)
	}
	if got := platformStyle("mastodon"); got != fallbackStyle {
		t.Fatalf("platformStyle(mastodon) = %q, want %q", got, fallbackStyle)
	}
	if got := statusStyle(models.StatusFailed); got != "bg-red-100 text-red-800" {
		t.Fatalf("statusStyle(failed) = %q", got)
	}
	if got := statusStyle("archived"); got != fallbackStyle {
		t.Fatalf("statusStyle(archived) = %q, want %q", got, fallbackStyle)
	}
}

func TestLabels(t *testing.T) {
	if got := label("linkedin"); got != "Linkedin" {
		t.Fatalf("label(linkedin) = %q, want %q", got, "Linkedin")
	}
	if got := platformInitial(models.PlatformTwitter); got != "T" {
		t.Fatalf("platformInitial(twitter) = %q, want %q", got, "T")
	}
	if got := platformInitial(""); got != "" {
		t.Fatalf("platformInitial(\"\") = %q, want empty", got)
	}
}

func TestLoadTemplates(t *testing.T) {
	tmpl, err := loadTemplates()
	if err != nil {
		t.Fatalf("loadTemplates() error = %v", err)
	}
	for _, name := range []string{"index", "stats", "posts", "calendar", "analytics", "form", "confirm"} {
		if tmpl.Lookup(name) == nil {
			t.Fatalf("template %q not defined", name)
		}
	}
}
