package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/Paurushmuley/Week3-Paurush-Muley/internal/weather"
)

// APINinjasGeocoder implements the weather.Geocoder interface against the
// API Ninjas geocoding endpoint.
type APINinjasGeocoder struct {
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewAPINinjasGeocoder(client *http.Client, apiKey string) *APINinjasGeocoder {
	return &APINinjasGeocoder{
		apiKey:  apiKey,
		baseURL: "https://api.api-ninjas.com/v1/geocoding",
		client:  client,
		circuit: newBreaker("geocoding"),
	}
}

// Resolve looks up the coordinates for a city/country pair. The first match in
// the provider's candidate list is taken as canonical; an empty list is a
// resolution failure, not a panic.
func (g *APINinjasGeocoder) Resolve(ctx context.Context, city, country string) (weather.Coordinates, error) {
	if g.apiKey == "" {
		return weather.Coordinates{}, fmt.Errorf("geocoding api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("city", city)
		values.Set("country", country)

		u := fmt.Sprintf("%s?%s", g.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("X-Api-Key", g.apiKey)
		return req, nil
	}

	resp, err := doRequest(ctx, g.client, g.circuit, buildRequest)
	if err != nil {
		return weather.Coordinates{}, err
	}
	defer resp.Body.Close()

	var matches []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		return weather.Coordinates{}, fmt.Errorf("decoding geocoding response: %w", err)
	}

	if len(matches) == 0 {
		return weather.Coordinates{}, fmt.Errorf("no geocoding matches for %s,%s", city, country)
	}

	return weather.Coordinates{
		Latitude:  matches[0].Latitude,
		Longitude: matches[0].Longitude,
	}, nil
}
