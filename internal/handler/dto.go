package handler

type NewsResponse struct {
	ID            int64  `json:"id"`
	Headline      string `json:"headline"`
	Description   string `json:"description"`
	URL           string `json:"url"`
	Source        string `json:"source"`
	Location      string `json:"location,omitempty"`
	PublishedDate string `json:"published_date"`
}

type WeatherResponse struct {
	ID          int64   `json:"id"`
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Date        string  `json:"date"`
}

type StockResponse struct {
	ID          int64   `json:"id"`
	Ticker      string  `json:"ticker"`
	CompanyName string  `json:"company_name"`
	Price       float64 `json:"price"`
	Date        string  `json:"date"`
}

type DashboardResponse struct {
	Date        string            `json:"date"`
	LastRefresh string            `json:"last_refresh"`
	News        []NewsResponse    `json:"news"`
	Weather     []WeatherResponse `json:"weather"`
	Stocks      []StockResponse   `json:"stocks"`
}

type DatesResponse struct {
	Dates []string `json:"dates"`
}

type RefreshResponse struct {
	Updated int `json:"updated"`
}

type AutoRefreshRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}
