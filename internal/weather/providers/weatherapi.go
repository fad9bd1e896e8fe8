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

const rapidAPIHost = "weatherapi-com.p.rapidapi.com"

// WeatherAPIProvider implements the weather.ConditionProvider interface for
// WeatherAPI.com accessed through RapidAPI.
type WeatherAPIProvider struct {
	apiKey  string
	baseURL string
	host    string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewWeatherAPIProvider(client *http.Client, apiKey string) *WeatherAPIProvider {
	return &WeatherAPIProvider{
		apiKey:  apiKey,
		baseURL: "https://" + rapidAPIHost + "/current.json",
		host:    rapidAPIHost,
		client:  client,
		circuit: newBreaker("weatherapi"),
	}
}

// Current returns the provider's free-text condition description for the
// given coordinates.
func (p *WeatherAPIProvider) Current(ctx context.Context, coord weather.Coordinates) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("weather api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		// WeatherAPI uses "q" for location; "lat,lon" selects the nearest station.
		values.Set("q", fmt.Sprintf("%f,%f", coord.Latitude, coord.Longitude))

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("X-RapidAPI-Key", p.apiKey)
		req.Header.Set("X-RapidAPI-Host", p.host)
		return req, nil
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var payload struct {
		Current struct {
			Condition struct {
				Text string `json:"text"`
			} `json:"condition"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decoding weather response: %w", err)
	}

	if payload.Current.Condition.Text == "" {
		return "", fmt.Errorf("weather response missing current condition")
	}

	return payload.Current.Condition.Text, nil
}
