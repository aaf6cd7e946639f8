// Package storage keeps the history of calculated shots in a SQLite database.
package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gehtsoft-usa/go_shotcalc"
	"github.com/gehtsoft-usa/go_shotcalc/bmath/unit"
	"github.com/gehtsoft-usa/go_shotcalc/internal/input"
)

// Run is one calculated shot.
type Run struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Source         string    `json:"source" gorm:"index"` // cli, api or form
	Shot           string    `json:"shot"`
	Material       string    `json:"material"`
	Diameter       float64   `json:"diameter"`        // inches
	Weight         float64   `json:"weight"`          // grains
	MuzzleVelocity float64   `json:"muzzle_velocity"` // fps
	Crosswind      float64   `json:"crosswind"`       // mph
	Altitude       float64   `json:"altitude"`        // feet
	Temperature    float64   `json:"temperature"`     // °F
	BC             float64   `json:"bc"`
	EffectiveRange int       `json:"effective_range"` // yards, -1 if none
	Samples        int       `json:"samples"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"`
}

// NewRun describes the calculation of the settings.
func NewRun(source string, s input.Settings, result go_shotcalc.TrajectoryResult) Run {
	return Run{
		Source:         source,
		Shot:           s.Value(input.FieldShotSize),
		Material:       s.Value(input.FieldMaterial),
		Diameter:       s.Diameter().In(unit.DistanceInch),
		Weight:         result.PelletWeight().In(unit.WeightGrain),
		MuzzleVelocity: s.MuzzleVelocity().In(unit.VelocityFPS),
		Crosswind:      s.Crosswind().In(unit.VelocityMPH),
		Altitude:       s.Altitude().In(unit.DistanceFoot),
		Temperature:    s.Temperature().In(unit.TemperatureFahrenheit),
		BC:             s.BallisticCoefficient(),
		EffectiveRange: result.EffectiveRange(),
		Samples:        result.Len(),
	}
}

// ErrClosed is returned after Close.
var ErrClosed = errors.New("storage: database is closed")

// Store is the persistence layer of the run history.
type Store struct {
	db *gorm.DB
}

// Open opens the database file, creating it and its tables when necessary.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Run{}); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, fmt.Errorf("storage: migrate %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// SaveRun stores the run and returns it with the ID and creation time set.
func (s *Store) SaveRun(r Run) (Run, error) {
	if s.db == nil {
		return Run{}, ErrClosed
	}
	r.ID = 0
	if err := s.db.Create(&r).Error; err != nil {
		return Run{}, fmt.Errorf("storage: save run: %w", err)
	}
	return r, nil
}

// RecentRuns returns the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	var runs []Run
	result := s.db.Order("created_at desc").Order("id desc").Limit(limit).Find(&runs)
	if result.Error != nil {
		return nil, fmt.Errorf("storage: recent runs: %w", result.Error)
	}
	return runs, nil
}

// ErrNotFound is returned by GetRun for an unknown ID.
var ErrNotFound = errors.New("storage: run not found")

// GetRun returns the run with the ID given.
func (s *Store) GetRun(id uint) (Run, error) {
	if s.db == nil {
		return Run{}, ErrClosed
	}
	var r Run
	if err := s.db.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Run{}, ErrNotFound
		}
		return Run{}, fmt.Errorf("storage: get run %d: %w", id, err)
	}
	return r, nil
}

// CountRuns returns the number of stored runs.
func (s *Store) CountRuns() (int64, error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	var count int64
	if err := s.db.Model(&Run{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("storage: count runs: %w", err)
	}
	return count, nil
}

// Ping checks that the database is reachable.
func (s *Store) Ping() error {
	if s.db == nil {
		return ErrClosed
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	s.db = nil
	return sqlDB.Close()
}
