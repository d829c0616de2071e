package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/models"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Client fetches daily temperature extremes from the Open-Meteo forecast
// API. It is a pure collaborator: the analysis engines never call it, they
// only consume the tables it returns.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a weather client with a conservative timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

// Forecast is the parsed daily forecast, Fahrenheit throughout.
type Forecast struct {
	TodayHigh    *float64
	TodayLow     *float64
	TomorrowHigh *float64
	TomorrowLow  *float64
	Daily        []models.DailyTemperature
}

type openMeteoResponse struct {
	Daily struct {
		Time             []string  `json:"time"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		Temperature2mMin []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

// FetchDailyForecast retrieves the daily high/low forecast for the given
// coordinates, starting today.
func (c *Client) FetchDailyForecast(ctx context.Context, lat, lon float64, days int) (*Forecast, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", lat))
	params.Set("longitude", fmt.Sprintf("%f", lon))
	params.Set("daily", "temperature_2m_max,temperature_2m_min")
	params.Set("temperature_unit", "fahrenheit")
	params.Set("timezone", "America/New_York")
	params.Set("forecast_days", fmt.Sprintf("%d", days))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build forecast request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast request failed with status %d", resp.StatusCode)
	}

	var parsed openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode forecast response: %w", err)
	}

	forecast := &Forecast{}
	for i, day := range parsed.Daily.Time {
		if i >= len(parsed.Daily.Temperature2mMax) || i >= len(parsed.Daily.Temperature2mMin) {
			break
		}
		date, err := time.Parse("2006-01-02", day)
		if err != nil {
			continue
		}
		high := parsed.Daily.Temperature2mMax[i]
		low := parsed.Daily.Temperature2mMin[i]
		forecast.Daily = append(forecast.Daily, models.DailyTemperature{
			Date: date,
			High: high,
			Low:  low,
		})
		switch i {
		case 0:
			forecast.TodayHigh = &high
			forecast.TodayLow = &low
		case 1:
			forecast.TomorrowHigh = &high
			forecast.TomorrowLow = &low
		}
	}

	return forecast, nil
}
