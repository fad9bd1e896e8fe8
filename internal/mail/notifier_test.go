package mail

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paurushmuley/Week3-Paurush-Muley/internal/weather"
)

func TestRenderReport(t *testing.T) {
	body, err := renderReport([]weather.Observation{
		{
			ID:        1,
			City:      "Paris",
			Country:   "FR",
			Weather:   "Sunny",
			Time:      time.Now().UTC(),
			Longitude: 2.3,
			Latitude:  48.8,
		},
		{
			ID:      2,
			City:    "London",
			Country: "GB",
			Weather: "Rain",
		},
	})
	require.NoError(t, err)

	assert.Contains(t, body, "<th>City</th>")
	assert.Contains(t, body, "<td>Paris</td>")
	assert.Contains(t, body, "<td>Sunny</td>")
	assert.Contains(t, body, "<td>2.3</td>")
	assert.Contains(t, body, "<td>London</td>")
}

func TestRenderReportEscapesProviderText(t *testing.T) {
	body, err := renderReport([]weather.Observation{
		{City: "Paris", Weather: `<script>alert("x")</script>`},
	})
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>")
}

func TestRenderReportEmpty(t *testing.T) {
	body, err := renderReport(nil)
	require.NoError(t, err)

	assert.Contains(t, body, "<thead>")
	assert.NotContains(t, body, "<td>")
}
