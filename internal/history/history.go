// Package history persists comparison results to a local sqlite database
// so past comparisons can be audited after run directories are cleaned
// up. One database row per (comparison batch, seed, method).
package history

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sumo-tools/sumoeval/internal/models"
)

// Entry is one persisted per-method comparison result.
type Entry struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	BatchID   string `gorm:"index"`
	Seed      int    `gorm:"index"`
	Method    string

	MeanWaitingTime *float64
	CO2Total        *float64
	Teleports       *int
	Ended           *int
	Points          int
	SourcePath      string
	NetworkPath     string

	WaitingWinner  string
	TeleportWinner string
	CO2Winner      string
	PointsWinner   string
}

// Store wraps the history database.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the history database at path and migrates its
// schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("history: opening %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("history: migrating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Save appends one batch of comparison rows under a shared batch id.
func (s *Store) Save(batchID string, rows []models.ComparisonRow) error {
	var entries []Entry
	for _, row := range rows {
		for _, m := range models.AllMethods {
			r := row.Record(m)
			entries = append(entries, Entry{
				BatchID:         batchID,
				Seed:            row.Seed,
				Method:          string(m),
				MeanWaitingTime: r.MeanWaitingTime,
				CO2Total:        r.CO2Total,
				Teleports:       r.Teleports,
				Ended:           r.Ended,
				Points:          row.Points[m],
				SourcePath:      r.SourcePath,
				NetworkPath:     r.NetworkPath,
				WaitingWinner:   models.WinnerLabel(row.WaitingWinner),
				TeleportWinner:  models.WinnerLabel(row.TeleportWinner),
				CO2Winner:       models.WinnerLabel(row.CO2Winner),
				PointsWinner:    models.WinnerLabel(row.PointsWinner),
			})
		}
	}
	if len(entries) == 0 {
		return nil
	}
	if err := s.db.Create(&entries).Error; err != nil {
		return fmt.Errorf("history: saving %d entries: %w", len(entries), err)
	}
	return nil
}

// Recent returns the most recently created entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	var entries []Entry
	err := s.db.Order("id desc").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("history: querying: %w", err)
	}
	return entries, nil
}
