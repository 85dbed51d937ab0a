package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type OpenWeatherClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewOpenWeatherClient(apiKey string) *OpenWeatherClient {
	return &OpenWeatherClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *OpenWeatherClient) Name() string {
	return "OpenWeatherMap"
}

// CurrentByCity fetches current conditions for a city in imperial units.
// Any failure yields an error, never a partial Report.
func (c *OpenWeatherClient) CurrentByCity(city string) (*Report, error) {
	reqURL := fmt.Sprintf(
		"https://api.openweathermap.org/data/2.5/weather?q=%s&appid=%s&units=imperial",
		url.QueryEscape(city), c.apiKey,
	)

	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("openweather fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openweather status %d for %q", resp.StatusCode, city)
	}

	var raw owResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("openweather decode: %w", err)
	}

	if len(raw.Weather) == 0 {
		return nil, fmt.Errorf("openweather: empty conditions for %q", city)
	}

	location := raw.Name
	if location == "" {
		location = city
	}

	return &Report{
		Location:    location,
		Temperature: raw.Main.Temp,
		FeelsLike:   raw.Main.FeelsLike,
		Humidity:    raw.Main.Humidity,
		Description: raw.Weather[0].Description,
		Icon:        raw.Weather[0].Icon,
	}, nil
}

type owResponse struct {
	Name    string        `json:"name"`
	Main    owMain        `json:"main"`
	Weather []owCondition `json:"weather"`
}

type owMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

type owCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
