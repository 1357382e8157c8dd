package db

import (
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sujalbistaa/postpilot/internal/models"
)

// memoryDSN opens a private in-memory database. Every connection to it gets
// its own database, so the pool is pinned to a single connection.
const memoryDSN = ":memory:"

// Options tweaks how the in-memory database is opened.
type Options struct {
	LogSQL bool
}

// Init opens the in-memory SQLite database that holds all posts and migrates
// the schema. Nothing is written to disk; the data lives as long as the
// returned handle.
func Init(opts Options) (*gorm.DB, error) {
	level := logger.Silent
	if opts.LogSQL {
		level = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(memoryDSN), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if err := db.AutoMigrate(&models.Post{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Println("In-memory post database ready.")
	return db, nil
}
