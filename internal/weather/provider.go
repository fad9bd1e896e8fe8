package weather

import (
	"context"
)

// Geocoder resolves a city/country pair to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, city, country string) (Coordinates, error)
}

// ConditionProvider abstracts the current-conditions source (e.g. WeatherAPI.com).
// It returns the provider's free-text condition description for the coordinates.
type ConditionProvider interface {
	Current(ctx context.Context, coord Coordinates) (string, error)
}

// Store is the contract the relational store (and any future store) must satisfy.
type Store interface {
	// BulkCreate persists the batch atomically: either every observation is
	// committed or none is. An empty batch is a no-op success.
	BulkCreate(ctx context.Context, observations []Observation) error

	// FindByCity returns every observation whose city exactly matches city.
	FindByCity(ctx context.Context, city string) ([]Observation, error)

	// FindLatestPerCity returns, for each distinct city in storage, the single
	// observation with the maximum Time. Ties on Time go to the larger ID.
	FindLatestPerCity(ctx context.Context) ([]Observation, error)

	// Ping verifies the underlying connection is alive.
	Ping(ctx context.Context) error
}

// Notifier dispatches a rendered weather report to a recipient.
type Notifier interface {
	Send(ctx context.Context, to string, observations []Observation) error
}
