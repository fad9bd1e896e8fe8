package store

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Paurushmuley/Week3-Paurush-Muley/internal/weather"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	s := NewGormStore(db)
	require.NoError(t, s.Migrate())
	return s
}

func obs(city, country, condition string, ts time.Time) weather.Observation {
	return weather.Observation{
		City:      city,
		Country:   country,
		Weather:   condition,
		Time:      ts,
		Longitude: 2.3,
		Latitude:  48.8,
	}
}

func TestBulkCreateAndFindByCity(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	err := s.BulkCreate(ctx, []weather.Observation{
		obs("Paris", "FR", "Sunny", now),
		obs("Paris", "FR", "Cloudy", now.Add(time.Hour)),
		obs("London", "GB", "Rain", now),
	})
	require.NoError(t, err)

	paris, err := s.FindByCity(ctx, "Paris")
	require.NoError(t, err)
	require.Len(t, paris, 2)
	for _, o := range paris {
		assert.Equal(t, "Paris", o.City)
		assert.NotZero(t, o.ID)
	}

	// Exact match only: a different casing is a different city.
	lower, err := s.FindByCity(ctx, "paris")
	require.NoError(t, err)
	assert.Empty(t, lower)
	assert.NotNil(t, lower)
}

func TestBulkCreateEmptyBatchIsNoOp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.BulkCreate(ctx, nil))
	require.NoError(t, s.BulkCreate(ctx, []weather.Observation{}))

	latest, err := s.FindLatestPerCity(ctx)
	require.NoError(t, err)
	assert.Empty(t, latest)
	assert.NotNil(t, latest)
}

func TestRepeatedIngestionDoublesRows(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	batch := []weather.Observation{
		obs("Paris", "FR", "Sunny", now),
		obs("London", "GB", "Rain", now),
	}

	require.NoError(t, s.BulkCreate(ctx, batch))

	again := []weather.Observation{
		obs("Paris", "FR", "Sunny", now),
		obs("London", "GB", "Rain", now),
	}
	require.NoError(t, s.BulkCreate(ctx, again))

	paris, err := s.FindByCity(ctx, "Paris")
	require.NoError(t, err)
	assert.Len(t, paris, 2, "no dedup: same batch twice doubles the rows")
}

func TestFindLatestPerCity(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	err := s.BulkCreate(ctx, []weather.Observation{
		obs("Paris", "FR", "Sunny", base),
		obs("Paris", "FR", "Cloudy", base.Add(2*time.Hour)),
		obs("Paris", "FR", "Rain", base.Add(time.Hour)),
		obs("London", "GB", "Fog", base),
		obs("London", "GB", "Rain", base.Add(time.Hour)),
	})
	require.NoError(t, err)

	latest, err := s.FindLatestPerCity(ctx)
	require.NoError(t, err)
	require.Len(t, latest, 2, "exactly one row per distinct city")

	byCity := make(map[string]weather.Observation, len(latest))
	for _, o := range latest {
		byCity[o.City] = o
	}

	assert.Equal(t, "Cloudy", byCity["Paris"].Weather)
	assert.Equal(t, base.Add(2*time.Hour).Unix(), byCity["Paris"].Time.Unix())
	assert.Equal(t, "Rain", byCity["London"].Weather)
}

func TestFindLatestPerCityTieBreaksOnID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	ts := time.Now().UTC().Truncate(time.Second)

	// Two Paris rows with the identical maximum timestamp.
	require.NoError(t, s.BulkCreate(ctx, []weather.Observation{
		obs("Paris", "FR", "first", ts),
		obs("Paris", "FR", "second", ts),
	}))

	latest, err := s.FindLatestPerCity(ctx)
	require.NoError(t, err)
	require.Len(t, latest, 1)

	// The later insert (larger id) wins the tie.
	assert.Equal(t, "second", latest[0].Weather)
}

func TestPing(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}
