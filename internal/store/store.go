// Package store persists best scores per difficulty slot in SQLite.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// BestScore is one row of best_scores.
type BestScore struct {
	Slot      string  `gorm:"primaryKey;size:64"`
	Score     float64 `gorm:"not null"`
	UpdatedAt time.Time
}

func (BestScore) TableName() string { return "best_scores" }

// Store implements game.BestStore.
type Store struct {
	db *gorm.DB
}

// Open connects to the database at path, creating it and its directory if
// needed. An empty path opens a private in-memory database.
func Open(path string) (*Store, error) {
	dsn := "file::memory:"
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
		dsn = path
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open store %q: %w", dsn, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access sql interface: %w", err)
	}
	// One connection keeps an in-memory database alive and serialises writes.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&BestScore{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return &Store{db: db}, nil
}

// LoadBest returns the stored best for key, or 0 if the slot has never been set.
func (s *Store) LoadBest(key string) (float64, error) {
	var row BestScore
	err := s.db.Where("slot = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load best %q: %w", key, err)
	}
	return row.Score, nil
}

// SaveBest records score for key unless a higher one is already stored.
func (s *Store) SaveBest(key string, score float64) error {
	row := BestScore{Slot: key, Score: score, UpdatedAt: time.Now()}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slot"}},
		DoUpdates: clause.Assignments(map[string]any{
			"score":      gorm.Expr("MAX(best_scores.score, excluded.score)"),
			"updated_at": gorm.Expr("CASE WHEN excluded.score > best_scores.score THEN excluded.updated_at ELSE best_scores.updated_at END"),
		}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save best %q: %w", key, err)
	}
	return nil
}

// All lists every slot ordered by name.
func (s *Store) All() ([]BestScore, error) {
	var rows []BestScore
	if err := s.db.Order("slot").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list best scores: %w", err)
	}
	return rows, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
