package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/Paurushmuley/Week3-Paurush-Muley/internal/weather"
)

// GormStore is the relational implementation of weather.Store.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an opened GORM connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the observations table.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&weather.Observation{})
}

// BulkCreate inserts the whole batch in a single Create call; the driver runs
// the multi-row insert in one transaction, so a failure commits nothing.
// An empty batch is a successful no-op.
func (s *GormStore) BulkCreate(ctx context.Context, observations []weather.Observation) error {
	if len(observations) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&observations).Error
}

// FindByCity returns every observation whose city exactly matches city.
func (s *GormStore) FindByCity(ctx context.Context, city string) ([]weather.Observation, error) {
	observations := make([]weather.Observation, 0)
	err := s.db.WithContext(ctx).
		Where("city = ?", city).
		Find(&observations).Error
	if err != nil {
		return nil, err
	}
	return observations, nil
}

// FindLatestPerCity returns the most recent observation for each distinct
// city. When two rows for a city share the maximum time, the row with the
// larger id (the later insert) wins.
func (s *GormStore) FindLatestPerCity(ctx context.Context) ([]weather.Observation, error) {
	observations := make([]weather.Observation, 0)
	err := s.db.WithContext(ctx).Raw(
		`SELECT o.id, o.city, o.country, o.weather, o.time, o.longitude, o.latitude
		 FROM observations o
		 WHERE o.id = (
		   SELECT o2.id FROM observations o2
		   WHERE o2.city = o.city
		   ORDER BY o2.time DESC, o2.id DESC
		   LIMIT 1
		 )
		 ORDER BY o.city`,
	).Scan(&observations).Error
	if err != nil {
		return nil, err
	}
	return observations, nil
}

// Ping verifies the underlying database connection.
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
