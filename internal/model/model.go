package model

import "time"

// NewsItem is one article in the current dashboard cycle. Location is
// derived from the article text, not supplied by the news provider.
type NewsItem struct {
	ID            int64     `json:"id,omitempty"`
	Headline      string    `json:"headline"`
	Description   string    `json:"description"`
	URL           string    `json:"url"`
	Source        string    `json:"source"`
	Location      string    `json:"location,omitempty"`
	PublishedDate string    `json:"published_date"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// WeatherRecord holds current conditions for one derived location.
// Temperatures are in Fahrenheit. One record per unique location per cycle.
type WeatherRecord struct {
	ID          int64   `json:"id,omitempty"`
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Date        string  `json:"date"`
}

// StockRecord holds the latest price for one ticker. One record per unique
// ticker per cycle; price and date are overwritten in place on refresh.
type StockRecord struct {
	ID          int64   `json:"id,omitempty"`
	Ticker      string  `json:"ticker"`
	CompanyName string  `json:"company_name"`
	Price       float64 `json:"price"`
	Date        string  `json:"date"`
}
