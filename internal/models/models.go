package models

import (
	"errors"
	"time"
)

// ErrMissingRequiredField is returned when a draft is submitted without
// content, a platform, a date or a time. It is never reported per field.
var ErrMissingRequiredField = errors.New("missing required field")

// Platform is a target social network.
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
)

// Platforms lists the known platforms in display order.
var Platforms = []Platform{PlatformTwitter, PlatformFacebook, PlatformInstagram, PlatformLinkedIn}

// KnownPlatform reports whether p is one of Platforms.
func KnownPlatform(p Platform) bool {
	return containsPlatform(Platforms, p)
}

// Status is the lifecycle label of a post.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusFailed    Status = "failed"
)

// FormStatuses are the statuses a user can pick in the post form.
// Failed is only ever set by a publisher.
var FormStatuses = []Status{StatusScheduled, StatusDraft, StatusPublished}

// Post represents a single scheduled social media message.
type Post struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Content       string     `gorm:"not null" json:"content"`
	Platforms     []Platform `gorm:"serializer:json;not null" json:"platforms"`
	ScheduledDate string     `gorm:"not null;index:idx_posts_schedule,priority:1" json:"scheduledDate"`
	ScheduledTime string     `gorm:"not null;index:idx_posts_schedule,priority:2" json:"scheduledTime"`
	Status        Status     `gorm:"not null;index" json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// HasPlatform reports whether the post targets p.
func (p Post) HasPlatform(platform Platform) bool {
	return containsPlatform(p.Platforms, platform)
}

// Draft holds the editable fields of a post before it is submitted.
type Draft struct {
	Content       string     `json:"content" form:"content"`
	Platforms     []Platform `json:"platforms" form:"platforms"`
	ScheduledDate string     `json:"scheduledDate" form:"scheduledDate"`
	ScheduledTime string     `json:"scheduledTime" form:"scheduledTime"`
	Status        Status     `json:"status" form:"status"`
}

// NewDraft returns an empty draft with the default status.
func NewDraft() Draft {
	return Draft{
		Platforms: []Platform{},
		Status:    StatusScheduled,
	}
}

// DraftFromPost copies the editable fields of p.
func DraftFromPost(p Post) Draft {
	return Draft{
		Content:       p.Content,
		Platforms:     append([]Platform{}, p.Platforms...),
		ScheduledDate: p.ScheduledDate,
		ScheduledTime: p.ScheduledTime,
		Status:        p.Status,
	}
}

// Validate checks that every required field is present.
func (d Draft) Validate() error {
	if d.Content == "" || d.ScheduledDate == "" || d.ScheduledTime == "" || len(d.Platforms) == 0 {
		return ErrMissingRequiredField
	}
	return nil
}

// HasPlatform reports whether the draft targets p.
func (d Draft) HasPlatform(platform Platform) bool {
	return containsPlatform(d.Platforms, platform)
}

// Normalized returns a copy with duplicate platforms removed, an empty
// status defaulted to scheduled and the date and time zero-padded
// (2025-1-5 -> 2025-01-05, 9:00 -> 09:00) so they sort as strings.
// Values that do not parse are kept as given.
func (d Draft) Normalized() Draft {
	out := d
	out.Platforms = UniquePlatforms(d.Platforms)
	if out.Status == "" {
		out.Status = StatusScheduled
	}
	out.ScheduledDate = padLayout(d.ScheduledDate, "2006-1-2", "2006-01-02")
	out.ScheduledTime = padLayout(d.ScheduledTime, "15:4", "15:04")
	return out
}

func padLayout(value, loose, strict string) string {
	t, err := time.Parse(loose, value)
	if err != nil {
		return value
	}
	return t.Format(strict)
}

// UniquePlatforms drops repeated entries, keeping first-seen order.
func UniquePlatforms(in []Platform) []Platform {
	out := make([]Platform, 0, len(in))
	for _, p := range in {
		if !containsPlatform(out, p) {
			out = append(out, p)
		}
	}
	return out
}

func containsPlatform(list []Platform, platform Platform) bool {
	for _, p := range list {
		if p == platform {
			return true
		}
	}
	return false
}

// Stats aggregates the collection by status. Failed posts count towards
// Total only.
type Stats struct {
	Total     int `json:"total"`
	Scheduled int `json:"scheduled"`
	Published int `json:"published"`
	Draft     int `json:"draft"`
}

// PlatformCount is the number of posts targeting a platform.
type PlatformCount struct {
	Platform Platform `json:"platform"`
	Count    int      `json:"count"`
}
