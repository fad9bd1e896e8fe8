package weather

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ResolutionError reports that a single batch item could not be resolved to an
// observation, identifying the offending city/country pair.
type ResolutionError struct {
	City    string
	Country string
	Err     error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving %s,%s: %v", e.City, e.Country, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// StorageError reports that a fully resolved batch could not be persisted.
// It is distinct from ResolutionError so callers can tell a bad input city
// from an unavailable store.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("persisting weather data: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Service orchestrates geocoding, condition lookup, persistence and mail.
type Service struct {
	store    Store
	geocoder Geocoder
	provider ConditionProvider
	notifier Notifier
	logger   *zap.Logger
}

// NewService creates a new Service.
func NewService(store Store, geocoder Geocoder, provider ConditionProvider, notifier Notifier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    store,
		geocoder: geocoder,
		provider: provider,
		notifier: notifier,
		logger:   logger,
	}
}

// Ingest resolves every location in the batch to a full observation and then
// persists the whole batch in a single store call.
//
// Resolution runs sequentially in input order: each item is geocoded, its
// current condition fetched, and its Time stamped at that point in processing.
// The first failure aborts the entire batch before anything touches the store,
// so the store only ever sees a complete, consistent batch. A persistence
// failure after full resolution surfaces as a StorageError instead.
func (s *Service) Ingest(ctx context.Context, batch []Location) error {
	observations := make([]Observation, 0, len(batch))

	for _, loc := range batch {
		coord, err := s.geocoder.Resolve(ctx, loc.City, loc.Country)
		if err != nil {
			s.logger.Warn("geocoding failed",
				zap.String("location", loc.Key()),
				zap.Error(err))
			return &ResolutionError{City: loc.City, Country: loc.Country, Err: err}
		}

		condition, err := s.provider.Current(ctx, coord)
		if err != nil {
			s.logger.Warn("condition lookup failed",
				zap.String("location", loc.Key()),
				zap.Float64("latitude", coord.Latitude),
				zap.Float64("longitude", coord.Longitude),
				zap.Error(err))
			return &ResolutionError{City: loc.City, Country: loc.Country, Err: err}
		}

		observations = append(observations, Observation{
			City:      loc.City,
			Country:   loc.Country,
			Weather:   condition,
			Time:      time.Now().UTC(),
			Longitude: coord.Longitude,
			Latitude:  coord.Latitude,
		})
	}

	if err := s.store.BulkCreate(ctx, observations); err != nil {
		s.logger.Error("bulk create failed",
			zap.Int("batch_size", len(observations)),
			zap.Error(err))
		return &StorageError{Err: err}
	}

	s.logger.Info("weather batch ingested", zap.Int("count", len(observations)))
	return nil
}

// Report returns the observations backing the dashboard and the mail report:
// every row for city when a filter is given, otherwise the latest row per
// distinct city.
func (s *Service) Report(ctx context.Context, city string) ([]Observation, error) {
	if city != "" {
		return s.store.FindByCity(ctx, city)
	}
	return s.store.FindLatestPerCity(ctx)
}

// EmailReport fetches the report for city (or the latest-per-city view when
// city is empty) and mails it to the given address.
func (s *Service) EmailReport(ctx context.Context, city, to string) error {
	observations, err := s.Report(ctx, city)
	if err != nil {
		return &StorageError{Err: err}
	}

	if err := s.notifier.Send(ctx, to, observations); err != nil {
		s.logger.Error("report mail failed",
			zap.String("to", to),
			zap.Error(err))
		return err
	}

	s.logger.Info("report mailed",
		zap.String("to", to),
		zap.Int("rows", len(observations)))
	return nil
}

// PingStore delegates to the underlying store.
func (s *Service) PingStore(ctx context.Context) error {
	return s.store.Ping(ctx)
}
