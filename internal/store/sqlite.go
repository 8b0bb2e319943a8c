package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ytget/juice-tracker/internal/model"
)

// juiceRow is the table model for juice entries
type juiceRow struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	Color       string `gorm:"size:16;not null"`
	Rating      int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (juiceRow) TableName() string {
	return "juices"
}

func toRow(j model.Juice) juiceRow {
	return juiceRow{
		ID:          j.ID,
		Name:        j.Name,
		Description: j.Description,
		Color:       j.Color.String(),
		Rating:      j.Rating,
	}
}

func (r juiceRow) toModel() model.Juice {
	c, ok := model.ParseColor(r.Color)
	if !ok {
		log.Warn().Int64("id", r.ID).Str("color", r.Color).Msg("unknown stored color, using default")
	}
	return model.Juice{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Color:       c,
		Rating:      model.ClampRating(r.Rating),
	}
}

// SQLiteStore implements Store on top of GORM and SQLite
type SQLiteStore struct {
	DB   *gorm.DB
	Path string

	mu       sync.RWMutex
	onUpdate func()
}

// gormWriter routes GORM log lines into zerolog
type gormWriter struct{}

func (gormWriter) Printf(format string, args ...interface{}) {
	log.Debug().Str("component", "gorm").Msgf(format, args...)
}

func createGormLogger() gormlogger.Interface {
	return gormlogger.New(gormWriter{}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// OpenSQLite opens (or creates) the database at path and migrates the schema
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: createGormLogger()})
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.AutoMigrate(&juiceRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate juices table: %w", err)
	}

	log.Info().Str("path", path).Msg("SQLite store opened")
	return &SQLiteStore{DB: db, Path: path}, nil
}

// SetUpdateCallback sets the callback function for store updates
func (s *SQLiteStore) SetUpdateCallback(callback func()) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

func (s *SQLiteStore) notifyUpdate() {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()
	notify(callback)
}

// List returns all entries ordered by id
func (s *SQLiteStore) List(ctx context.Context) ([]model.Juice, error) {
	var rows []juiceRow
	if err := s.DB.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list juices: %w", err)
	}

	juices := make([]model.Juice, 0, len(rows))
	for _, r := range rows {
		juices = append(juices, r.toModel())
	}
	return juices, nil
}

// FetchByID returns the entry with the given id
func (s *SQLiteStore) FetchByID(ctx context.Context, id int64) (*model.Juice, error) {
	var row juiceRow
	err := s.DB.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("juice %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch juice %d: %w", id, err)
	}

	j := row.toModel()
	return &j, nil
}

// Persist inserts a new entry or updates the existing row with the same id.
// An update for an id that is not stored yet creates the row with that id.
func (s *SQLiteStore) Persist(ctx context.Context, juice model.Juice) (model.Juice, error) {
	if err := juice.Validate(); err != nil {
		return model.Juice{}, fmt.Errorf("%w: %v", ErrInvalidJuice, err)
	}

	row := toRow(juice)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if juice.IsNew() {
			return tx.Create(&row).Error
		}

		var existing juiceRow
		err := tx.First(&existing, juice.ID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&row).Error
		case err != nil:
			return err
		}

		row.CreatedAt = existing.CreatedAt
		return tx.Save(&row).Error
	})
	if err != nil {
		return model.Juice{}, fmt.Errorf("failed to persist juice: %w", err)
	}

	log.Debug().Int64("id", row.ID).Msg("juice persisted")
	s.notifyUpdate()
	return row.toModel(), nil
}

// Delete removes the entry with the given id
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	res := s.DB.WithContext(ctx).Delete(&juiceRow{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete juice %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("juice %d: %w", id, ErrNotFound)
	}

	s.notifyUpdate()
	return nil
}

// Close closes the underlying database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
