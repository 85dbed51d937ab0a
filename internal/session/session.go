package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/zudevon/ez-dash/internal/model"
)

// MinRefreshInterval gates automatic stock refreshes to stay inside
// provider rate limits.
const MinRefreshInterval = 60 * time.Second

// Store is the scratch session store rebuilt on every enrichment cycle.
type Store interface {
	ReplaceAll(news []model.NewsItem, weather []model.WeatherRecord, stocks []model.StockRecord) error
	AllNews() ([]model.NewsItem, error)
	AllWeather() ([]model.WeatherRecord, error)
	AllStocks() ([]model.StockRecord, error)
	UpdateStockPrice(ticker string, price float64, date string) error
}

// Enricher produces a full cycle snapshot and refreshed stock prices.
type Enricher interface {
	Enrich(date string) ([]model.NewsItem, []model.WeatherRecord, []model.StockRecord)
	RefreshStocks(tickers []string) []model.StockRecord
}

// Session holds the mutable state of one dashboard session: which date is
// loaded, which tickers are on display, and when stocks were last
// refreshed. It is constructed explicitly and passed around; there are no
// package-level singletons, so multiple sessions can coexist safely.
type Session struct {
	mu       sync.Mutex
	store    Store
	enricher Enricher
	now      func() time.Time

	loadedDate  string
	tickers     []string
	lastRefresh time.Time
	autoRefresh bool
}

func New(store Store, enricher Enricher) *Session {
	return &Session{
		store:       store,
		enricher:    enricher,
		now:         time.Now,
		autoRefresh: true,
	}
}

// EnsureLoaded runs a full cycle when date differs from what is loaded.
// When the date is already loaded it instead runs a gated stock refresh:
// auto-refresh on, tickers present, and at least MinRefreshInterval since
// the last refresh.
func (s *Session) EnsureLoaded(date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loadedDate != date {
		return s.reload(date)
	}

	if s.autoRefresh && len(s.tickers) > 0 && s.now().Sub(s.lastRefresh) >= MinRefreshInterval {
		s.refreshStocks()
	}

	return nil
}

// Reload forces a full cycle for date even if it is already loaded.
func (s *Session) Reload(date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reload(date)
}

func (s *Session) reload(date string) error {
	newsData, weatherData, stockData := s.enricher.Enrich(date)

	if err := s.store.ReplaceAll(newsData, weatherData, stockData); err != nil {
		return fmt.Errorf("rebuilding session store: %w", err)
	}

	tickers := make([]string, 0, len(stockData))
	for _, st := range stockData {
		tickers = append(tickers, st.Ticker)
	}

	s.tickers = tickers
	s.loadedDate = date
	s.lastRefresh = s.now()

	slog.Info("session reloaded", "date", date,
		"news", len(newsData), "weather", len(weatherData), "stocks", len(stockData))
	return nil
}

// RefreshStocks updates displayed stock prices in place. A forced refresh
// (explicit user action) bypasses the interval gate; an unforced one is
// dropped when auto-refresh is off or the gate has not elapsed. Returns the
// number of rows updated.
func (s *Session) RefreshStocks(force bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tickers) == 0 {
		return 0
	}

	if !force {
		if !s.autoRefresh || s.now().Sub(s.lastRefresh) < MinRefreshInterval {
			return 0
		}
	}

	return s.refreshStocks()
}

func (s *Session) refreshStocks() int {
	updated := s.enricher.RefreshStocks(s.tickers)

	count := 0
	for _, st := range updated {
		if err := s.store.UpdateStockPrice(st.Ticker, st.Price, st.Date); err != nil {
			slog.Error("error updating stock price", "ticker", st.Ticker, "error", err)
			continue
		}
		count++
	}

	s.lastRefresh = s.now()
	return count
}

func (s *Session) News() ([]model.NewsItem, error) { return s.store.AllNews() }

func (s *Session) Weather() ([]model.WeatherRecord, error) { return s.store.AllWeather() }

func (s *Session) Stocks() ([]model.StockRecord, error) { return s.store.AllStocks() }

// Dates lists the selectable dates: the last 7 calendar days, newest first.
func (s *Session) Dates() []string {
	dates := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, s.now().AddDate(0, 0, -i).Format("2006-01-02"))
	}
	return dates
}

func (s *Session) SetAutoRefresh(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoRefresh = enabled
}

func (s *Session) LastRefresh() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRefresh
}

func (s *Session) LoadedDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadedDate
}
