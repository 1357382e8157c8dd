// Package store keeps the post collection and answers the queries behind the
// list, calendar and analytics views.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sujalbistaa/postpilot/internal/models"
)

// Store is the post collection. It is safe for concurrent use; the
// underlying database serializes access.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the source of createdAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New wraps an already migrated database.
func New(db *gorm.DB, opts ...Option) *Store {
	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every post, most recently created first.
func (s *Store) List(ctx context.Context) ([]models.Post, error) {
	posts := make([]models.Post, 0)
	if err := s.db.WithContext(ctx).Order("id desc").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Get looks up a single post.
func (s *Store) Get(ctx context.Context, id int64) (models.Post, bool, error) {
	var post models.Post
	err := s.db.WithContext(ctx).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Post{}, false, nil
	}
	if err != nil {
		return models.Post{}, false, fmt.Errorf("get post %d: %w", id, err)
	}
	return post, true, nil
}

// Create validates the draft and stores it as a new post with a fresh id
// and creation time.
func (s *Store) Create(ctx context.Context, draft models.Draft) (models.Post, error) {
	if err := draft.Validate(); err != nil {
		return models.Post{}, err
	}
	draft = draft.Normalized()

	post := models.Post{
		Content:       draft.Content,
		Platforms:     draft.Platforms,
		ScheduledDate: draft.ScheduledDate,
		ScheduledTime: draft.ScheduledTime,
		Status:        draft.Status,
		CreatedAt:     s.now(),
	}
	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return models.Post{}, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// Update replaces every field of the post except its id and creation time.
// found is false, and nothing changes, when no post has that id.
func (s *Store) Update(ctx context.Context, id int64, draft models.Draft) (models.Post, bool, error) {
	if err := draft.Validate(); err != nil {
		return models.Post{}, false, err
	}
	draft = draft.Normalized()

	var post models.Post
	found := true
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				found = false
				return nil
			}
			return err
		}
		post.Content = draft.Content
		post.Platforms = draft.Platforms
		post.ScheduledDate = draft.ScheduledDate
		post.ScheduledTime = draft.ScheduledTime
		post.Status = draft.Status
		return tx.Save(&post).Error
	})
	if err != nil {
		return models.Post{}, false, fmt.Errorf("update post %d: %w", id, err)
	}
	if !found {
		return models.Post{}, false, nil
	}
	return post, true, nil
}

// Delete removes the post with the given id. Missing ids are not an error.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Post{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete post %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Stats counts posts by status.
func (s *Store) Stats(ctx context.Context) (models.Stats, error) {
	var rows []struct {
		Status models.Status
		Count  int
	}
	err := s.db.WithContext(ctx).
		Model(&models.Post{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return models.Stats{}, fmt.Errorf("post stats: %w", err)
	}

	var stats models.Stats
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case models.StatusScheduled:
			stats.Scheduled = row.Count
		case models.StatusPublished:
			stats.Published = row.Count
		case models.StatusDraft:
			stats.Draft = row.Count
		}
	}
	return stats, nil
}

// Upcoming returns scheduled posts, earliest slot first.
func (s *Store) Upcoming(ctx context.Context) ([]models.Post, error) {
	posts := make([]models.Post, 0)
	err := s.db.WithContext(ctx).
		Where("status = ?", models.StatusScheduled).
		Order("scheduled_date asc, scheduled_time asc, id asc").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("upcoming posts: %w", err)
	}
	return posts, nil
}

// CountByPlatform counts posts whose platform set contains platform.
func (s *Store) CountByPlatform(ctx context.Context, platform models.Platform) (int, error) {
	var count int64
	// platforms is stored as a JSON array of strings; match elements exactly.
	err := s.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("EXISTS (SELECT 1 FROM json_each(posts.platforms) WHERE json_each.value = ?)", string(platform)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count %s posts: %w", platform, err)
	}
	return int(count), nil
}

// PlatformCounts runs CountByPlatform for every known platform.
func (s *Store) PlatformCounts(ctx context.Context) ([]models.PlatformCount, error) {
	out := make([]models.PlatformCount, 0, len(models.Platforms))
	for _, p := range models.Platforms {
		n, err := s.CountByPlatform(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, models.PlatformCount{Platform: p, Count: n})
	}
	return out, nil
}

// Seed stores drafts so that List returns them in the given order.
func (s *Store) Seed(ctx context.Context, drafts []models.Draft) ([]models.Post, error) {
	seeded := make([]models.Post, len(drafts))
	for i := len(drafts) - 1; i >= 0; i-- {
		post, err := s.Create(ctx, drafts[i])
		if err != nil {
			return nil, fmt.Errorf("seed post %d: %w", i, err)
		}
		seeded[i] = post
	}
	return seeded, nil
}
