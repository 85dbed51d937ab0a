package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zudevon/ez-dash/internal/model"
)

// Dashboard is the presentation contract: date selection, refresh triggers,
// the auto-refresh toggle, and read accessors for the three collections.
type Dashboard interface {
	EnsureLoaded(date string) error
	Reload(date string) error
	RefreshStocks(force bool) int
	News() ([]model.NewsItem, error)
	Weather() ([]model.WeatherRecord, error)
	Stocks() ([]model.StockRecord, error)
	Dates() []string
	SetAutoRefresh(enabled bool)
	LastRefresh() time.Time
}

type DashboardHandler struct {
	dashboard Dashboard
}

func NewDashboardHandler(dashboard Dashboard) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetDashboard loads the selected date if needed and returns the full
// snapshot. An empty news list signals the frontend to show its
// "no data, try refresh" state.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	date, ok := h.selectedDate(c)
	if !ok {
		return
	}

	if err := h.dashboard.EnsureLoaded(date); err != nil {
		slog.Error("error loading dashboard", "date", date, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	res, err := h.snapshot(date)
	if err != nil {
		slog.Error("error reading session store", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, res)
}

// PostRefresh forces a full reload for the selected date.
func (h *DashboardHandler) PostRefresh(c *gin.Context) {
	date, ok := h.selectedDate(c)
	if !ok {
		return
	}

	if err := h.dashboard.Reload(date); err != nil {
		slog.Error("error reloading dashboard", "date", date, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload dashboard"})
		return
	}

	res, err := h.snapshot(date)
	if err != nil {
		slog.Error("error reading session store", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, res)
}

// PostStockRefresh is the manual stock refresh trigger; it bypasses the
// auto-refresh interval gate.
func (h *DashboardHandler) PostStockRefresh(c *gin.Context) {
	updated := h.dashboard.RefreshStocks(true)
	c.JSON(http.StatusOK, RefreshResponse{Updated: updated})
}

func (h *DashboardHandler) PutAutoRefresh(c *gin.Context) {
	var req AutoRefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	h.dashboard.SetAutoRefresh(*req.Enabled)
	c.JSON(http.StatusOK, gin.H{"auto_refresh": *req.Enabled})
}

func (h *DashboardHandler) GetDates(c *gin.Context) {
	c.JSON(http.StatusOK, DatesResponse{Dates: h.dashboard.Dates()})
}

func (h *DashboardHandler) GetNews(c *gin.Context) {
	items, err := h.dashboard.News()
	if err != nil {
		slog.Error("error fetching news rows", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, newsResponses(items))
}

func (h *DashboardHandler) GetWeather(c *gin.Context) {
	records, err := h.dashboard.Weather()
	if err != nil {
		slog.Error("error fetching weather rows", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, weatherResponses(records))
}

func (h *DashboardHandler) GetStocks(c *gin.Context) {
	records, err := h.dashboard.Stocks()
	if err != nil {
		slog.Error("error fetching stock rows", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, stockResponses(records))
}

func (h *DashboardHandler) GetHealth(c *gin.Context) {
	if _, err := h.dashboard.Stocks(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

// selectedDate validates the date query parameter against the selectable
// window (last 7 days); missing means today. Writes the error response
// itself and returns ok=false on rejection.
func (h *DashboardHandler) selectedDate(c *gin.Context) (string, bool) {
	dates := h.dashboard.Dates()

	date := c.Query("date")
	if date == "" {
		return dates[0], true
	}

	for _, d := range dates {
		if d == date {
			return date, true
		}
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be within the last 7 days"})
	return "", false
}

func (h *DashboardHandler) snapshot(date string) (*DashboardResponse, error) {
	items, err := h.dashboard.News()
	if err != nil {
		return nil, err
	}

	weather, err := h.dashboard.Weather()
	if err != nil {
		return nil, err
	}

	stocks, err := h.dashboard.Stocks()
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		Date:        date,
		LastRefresh: h.dashboard.LastRefresh().Format(time.RFC3339),
		News:        newsResponses(items),
		Weather:     weatherResponses(weather),
		Stocks:      stockResponses(stocks),
	}, nil
}

func newsResponses(items []model.NewsItem) []NewsResponse {
	res := make([]NewsResponse, 0, len(items))
	for _, n := range items {
		res = append(res, NewsResponse{
			ID:            n.ID,
			Headline:      n.Headline,
			Description:   n.Description,
			URL:           n.URL,
			Source:        n.Source,
			Location:      n.Location,
			PublishedDate: n.PublishedDate,
		})
	}
	return res
}

func weatherResponses(records []model.WeatherRecord) []WeatherResponse {
	res := make([]WeatherResponse, 0, len(records))
	for _, w := range records {
		res = append(res, WeatherResponse{
			ID:          w.ID,
			Location:    w.Location,
			Temperature: w.Temperature,
			FeelsLike:   w.FeelsLike,
			Humidity:    w.Humidity,
			Description: w.Description,
			Icon:        w.Icon,
			Date:        w.Date,
		})
	}
	return res
}

func stockResponses(records []model.StockRecord) []StockResponse {
	res := make([]StockResponse, 0, len(records))
	for _, s := range records {
		res = append(res, StockResponse{
			ID:          s.ID,
			Ticker:      s.Ticker,
			CompanyName: s.CompanyName,
			Price:       s.Price,
			Date:        s.Date,
		})
	}
	return res
}
