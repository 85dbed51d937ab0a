package enrich

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/zudevon/ez-dash/internal/model"
	"github.com/zudevon/ez-dash/pkg/news"
	"github.com/zudevon/ez-dash/pkg/stock"
	"github.com/zudevon/ez-dash/pkg/weather"
)

type stubNews struct {
	articles  []news.Article
	err       error
	topCalls  int
	dateCalls int
}

func (s *stubNews) TopHeadlines(country string, pageSize int) ([]news.Article, error) {
	s.topCalls++
	return s.articles, s.err
}

func (s *stubNews) EverythingOnDate(date string, pageSize int) ([]news.Article, error) {
	s.dateCalls++
	return s.articles, s.err
}

func (s *stubNews) Name() string { return "stub-news" }

type stubWeather struct {
	err   error
	calls []string
}

func (s *stubWeather) CurrentByCity(city string) (*weather.Report, error) {
	s.calls = append(s.calls, city)
	if s.err != nil {
		return nil, s.err
	}
	return &weather.Report{
		Location:    city,
		Temperature: 70.0,
		FeelsLike:   68.0,
		Humidity:    50,
		Description: "clear sky",
		Icon:        "01d",
	}, nil
}

func (s *stubWeather) Name() string { return "stub-weather" }

type stubStocks struct {
	failing map[string]bool
	calls   []string
}

func (s *stubStocks) LatestPrice(ticker string) (*stock.Quote, error) {
	s.calls = append(s.calls, ticker)
	if s.failing[ticker] {
		return nil, errors.New("provider down")
	}
	return &stock.Quote{
		Ticker:      ticker,
		CompanyName: ticker,
		Price:       150.0,
		Date:        "2024-01-01",
	}, nil
}

func (s *stubStocks) Name() string { return "stub-stocks" }

type stubCache struct {
	entries map[string][]model.NewsItem
	puts    int
}

func (s *stubCache) Get(date string) ([]model.NewsItem, bool) {
	items, ok := s.entries[date]
	return items, ok
}

func (s *stubCache) Put(date string, items []model.NewsItem) error {
	if s.entries == nil {
		s.entries = make(map[string][]model.NewsItem)
	}
	s.entries[date] = items
	s.puts++
	return nil
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	}
}

func newTestOrchestrator(n *stubNews, w *stubWeather, s *stubStocks, c NewsCache) *Orchestrator {
	o := NewOrchestrator(n, w, s, c)
	o.now = fixedClock()
	return o
}

func TestEnrichDedupsLocationsAndTickers(t *testing.T) {
	newsClient := &stubNews{articles: []news.Article{
		{Title: "Apple announces new plant in France", PublishedAt: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)},
		{Title: "France welcomes Apple investment", PublishedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)},
	}}
	weatherClient := &stubWeather{}
	stockClient := &stubStocks{}

	o := newTestOrchestrator(newsClient, weatherClient, stockClient, &stubCache{})
	newsData, weatherData, stockData := o.Enrich("2024-03-15")

	assert.Equal(t, 2, len(newsData))
	assert.Equal(t, "Paris", newsData[0].Location)

	// One weather call and one stock call despite two mentions each.
	assert.Equal(t, []string{"Paris"}, weatherClient.calls)
	assert.Equal(t, []string{"AAPL"}, stockClient.calls)
	assert.Equal(t, 1, len(weatherData))
	assert.Equal(t, 1, len(stockData))
	assert.Equal(t, "Apple", stockData[0].CompanyName)
}

func TestEnrichCollapsesTickerAliases(t *testing.T) {
	newsClient := &stubNews{articles: []news.Article{
		{Title: "Meta rebrands as Facebook parent restructures"},
	}}
	stockClient := &stubStocks{}

	o := newTestOrchestrator(newsClient, &stubWeather{}, stockClient, &stubCache{})
	_, _, stockData := o.Enrich("2024-03-15")

	// Two aliases, one ticker, one fetch; first alias's name wins.
	assert.Equal(t, []string{"META"}, stockClient.calls)
	assert.Equal(t, 1, len(stockData))
	assert.Equal(t, "META", stockData[0].Ticker)
	assert.Equal(t, "Meta", stockData[0].CompanyName)
}

func TestEnrichSP500FallbackWhenNoCompanies(t *testing.T) {
	newsClient := &stubNews{articles: []news.Article{
		{Title: "Local election results announced"},
	}}
	stockClient := &stubStocks{}

	o := newTestOrchestrator(newsClient, &stubWeather{}, stockClient, &stubCache{})
	_, _, stockData := o.Enrich("2024-03-15")

	assert.Equal(t, 1, len(stockData))
	assert.Equal(t, "SPY", stockData[0].Ticker)
	assert.Equal(t, "S&P 500 ETF", stockData[0].CompanyName)
}

func TestEnrichEmptyStocksWhenFallbackFails(t *testing.T) {
	newsClient := &stubNews{articles: []news.Article{
		{Title: "Local election results announced"},
	}}
	stockClient := &stubStocks{failing: map[string]bool{"SPY": true}}

	o := newTestOrchestrator(newsClient, &stubWeather{}, stockClient, &stubCache{})
	_, _, stockData := o.Enrich("2024-03-15")

	assert.Equal(t, 0, len(stockData))
}

func TestEnrichFailedLookupsAreSkipped(t *testing.T) {
	newsClient := &stubNews{articles: []news.Article{
		{Title: "Apple and Microsoft report earnings in France"},
	}}
	stockClient := &stubStocks{failing: map[string]bool{"AAPL": true}}
	weatherClient := &stubWeather{err: errors.New("provider down")}

	o := newTestOrchestrator(newsClient, weatherClient, stockClient, &stubCache{})
	newsData, weatherData, stockData := o.Enrich("2024-03-15")

	// Partial batch: the failing lookups vanish, the rest survive.
	assert.Equal(t, 1, len(newsData))
	assert.Equal(t, 0, len(weatherData))
	assert.Equal(t, 1, len(stockData))
	assert.Equal(t, "MSFT", stockData[0].Ticker)
}

func TestEnrichUsesTopHeadlinesForToday(t *testing.T) {
	newsClient := &stubNews{}

	o := newTestOrchestrator(newsClient, &stubWeather{}, &stubStocks{}, &stubCache{})
	o.Enrich("2024-03-15")

	assert.Equal(t, 1, newsClient.topCalls)
	assert.Equal(t, 0, newsClient.dateCalls)
}

func TestEnrichUsesDateQueryForPastDates(t *testing.T) {
	newsClient := &stubNews{}

	o := newTestOrchestrator(newsClient, &stubWeather{}, &stubStocks{}, &stubCache{})
	o.Enrich("2024-03-10")

	assert.Equal(t, 0, newsClient.topCalls)
	assert.Equal(t, 1, newsClient.dateCalls)
}

func TestEnrichServesNewsFromCache(t *testing.T) {
	cached := []model.NewsItem{
		{Headline: "Apple announces new plant in France", Location: "Paris", PublishedDate: "2024-03-14T09:00:00Z"},
	}
	cache := &stubCache{entries: map[string][]model.NewsItem{"2024-03-14": cached}}
	newsClient := &stubNews{}
	weatherClient := &stubWeather{}
	stockClient := &stubStocks{}

	o := newTestOrchestrator(newsClient, weatherClient, stockClient, cache)
	newsData, weatherData, stockData := o.Enrich("2024-03-14")

	// News provider untouched; weather and stocks still fetched fresh.
	assert.Equal(t, 0, newsClient.topCalls)
	assert.Equal(t, 0, newsClient.dateCalls)
	assert.Equal(t, 1, len(newsData))
	assert.Equal(t, []string{"Paris"}, weatherClient.calls)
	assert.Equal(t, []string{"AAPL"}, stockClient.calls)
	assert.Equal(t, 1, len(weatherData))
	assert.Equal(t, 1, len(stockData))
}

func TestEnrichCachesFetchedBatch(t *testing.T) {
	cache := &stubCache{}
	newsClient := &stubNews{articles: []news.Article{{Title: "Quiet day"}}}

	o := newTestOrchestrator(newsClient, &stubWeather{}, &stubStocks{}, cache)
	o.Enrich("2024-03-15")

	assert.Equal(t, 1, cache.puts)
	assert.Equal(t, 1, len(cache.entries["2024-03-15"]))
}

func TestEnrichNewsFailureYieldsEmptyBatch(t *testing.T) {
	newsClient := &stubNews{err: errors.New("provider down")}
	stockClient := &stubStocks{}

	o := newTestOrchestrator(newsClient, &stubWeather{}, stockClient, &stubCache{})
	newsData, weatherData, stockData := o.Enrich("2024-03-15")

	assert.Equal(t, 0, len(newsData))
	assert.Equal(t, 0, len(weatherData))
	// The index fallback still applies to an empty scan.
	assert.Equal(t, 1, len(stockData))
	assert.Equal(t, "SPY", stockData[0].Ticker)
}

func TestRefreshStocksOmitsFailures(t *testing.T) {
	stockClient := &stubStocks{failing: map[string]bool{"MSFT": true}}

	o := newTestOrchestrator(&stubNews{}, &stubWeather{}, stockClient, &stubCache{})
	updated := o.RefreshStocks([]string{"AAPL", "MSFT"})

	assert.Equal(t, 1, len(updated))
	assert.Equal(t, "AAPL", updated[0].Ticker)
	assert.Equal(t, 150.0, updated[0].Price)
	assert.Equal(t, "2024-01-01", updated[0].Date)
}
