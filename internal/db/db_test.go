package db

import (
	"testing"

	"github.com/sujalbistaa/postpilot/internal/models"
)

func TestInitMigratesPosts(t *testing.T) {
	database, err := Init(Options{})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if !database.Migrator().HasTable(&models.Post{}) {
		t.Fatal("posts table missing after Init")
	}
	if !database.Migrator().HasIndex(&models.Post{}, "idx_posts_schedule") {
		t.Fatal("schedule index missing after Init")
	}
}

func TestInitIsolatesDatabases(t *testing.T) {
	first, err := Init(Options{})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	second, err := Init(Options{})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	post := models.Post{
		Content:       "only in first",
		Platforms:     []models.Platform{models.PlatformTwitter},
		ScheduledDate: "2025-01-01",
		ScheduledTime: "09:00",
		Status:        models.StatusDraft,
	}
	if err := first.Create(&post).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	var count int64
	if err := second.Model(&models.Post{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("second database sees %d posts, want 0", count)
	}
}
