package weather

import (
	"time"
)

// Location identifies a place to ingest weather for.
// It is the item submitted by callers of the save-mapping endpoint
// and is never persisted on its own.
type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// Key returns a canonical string key for logging this location.
func (l Location) Key() string {
	return l.City + ":" + l.Country
}

// Coordinates is a resolved latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Observation is one persisted weather reading for a city.
// Rows are only ever inserted: repeated ingestion of the same city
// creates new rows, nothing is updated or deleted.
type Observation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	City      string    `gorm:"not null;index" json:"city"`
	Country   string    `gorm:"not null" json:"country"`
	Weather   string    `gorm:"not null" json:"weather"`
	Time      time.Time `gorm:"not null" json:"time"` // ingestion instant, always UTC
	Longitude float64   `gorm:"not null" json:"longitude"`
	Latitude  float64   `gorm:"not null" json:"latitude"`
}
