package enrich

import (
	"log/slog"
	"time"

	"github.com/zudevon/ez-dash/internal/extract"
	"github.com/zudevon/ez-dash/internal/model"
	"github.com/zudevon/ez-dash/pkg/news"
	"github.com/zudevon/ez-dash/pkg/stock"
	"github.com/zudevon/ez-dash/pkg/weather"
)

// NewsCache shields the news provider from repeat fetches for a date.
type NewsCache interface {
	Get(date string) ([]model.NewsItem, bool)
	Put(date string, items []model.NewsItem) error
}

// Orchestrator runs one enrichment cycle: obtain a news batch, derive a
// location and mentioned companies per article, and fan out deduplicated
// weather and stock lookups. Calls are sequential; a single failed lookup
// is logged and skipped, never aborting the batch.
type Orchestrator struct {
	News     news.Client
	Weather  weather.Client
	Stocks   stock.Client
	Cache    NewsCache
	PageSize int
	Country  string

	now func() time.Time
}

func NewOrchestrator(n news.Client, w weather.Client, s stock.Client, c NewsCache) *Orchestrator {
	return &Orchestrator{
		News:     n,
		Weather:  w,
		Stocks:   s,
		Cache:    c,
		PageSize: 5,
		Country:  "us",
		now:      time.Now,
	}
}

// Enrich produces the three aligned collections for one dashboard cycle.
// Only news is served from the cache; weather and stock data are fetched
// fresh on every call. Collection order follows first-encounter order.
func (o *Orchestrator) Enrich(date string) ([]model.NewsItem, []model.WeatherRecord, []model.StockRecord) {
	items := o.newsBatch(date)

	var weatherData []model.WeatherRecord
	var stockData []model.StockRecord
	seenLocations := make(map[string]bool)
	seenTickers := make(map[string]bool)

	for _, item := range items {
		if loc := item.Location; loc != "" && !seenLocations[loc] {
			report, err := o.Weather.CurrentByCity(loc)
			if err != nil {
				slog.Error("error fetching weather", "city", loc, "error", err)
			} else {
				weatherData = append(weatherData, model.WeatherRecord{
					Location:    report.Location,
					Temperature: report.Temperature,
					FeelsLike:   report.FeelsLike,
					Humidity:    report.Humidity,
					Description: report.Description,
					Icon:        report.Icon,
					Date:        o.now().Format("2006-01-02 15:04:05"),
				})
				seenLocations[loc] = true
			}
		}

		for _, company := range extract.Companies(item.Headline, item.Description) {
			if seenTickers[company.Ticker] {
				continue
			}
			quote, err := o.Stocks.LatestPrice(company.Ticker)
			if err != nil {
				slog.Error("error fetching stock", "ticker", company.Ticker, "error", err)
				continue
			}
			stockData = append(stockData, model.StockRecord{
				Ticker:      quote.Ticker,
				CompanyName: company.Name,
				Price:       quote.Price,
				Date:        quote.Date,
			})
			seenTickers[company.Ticker] = true
		}
	}

	// No companies anywhere in the batch: show the index instead of an
	// empty panel. Weather gets no such fallback.
	if len(stockData) == 0 {
		quote, err := stock.SP500Proxy(o.Stocks)
		if err != nil {
			slog.Error("error fetching S&P 500 proxy", "error", err)
		} else {
			stockData = append(stockData, model.StockRecord{
				Ticker:      quote.Ticker,
				CompanyName: quote.CompanyName,
				Price:       quote.Price,
				Date:        quote.Date,
			})
		}
	}

	return items, weatherData, stockData
}

// newsBatch returns cached items for the date when present, otherwise
// fetches from the provider and caches the result. A failed fetch yields an
// empty batch; the dashboard renders that as "no data, refresh".
func (o *Orchestrator) newsBatch(date string) []model.NewsItem {
	if o.Cache != nil {
		if items, ok := o.Cache.Get(date); ok && len(items) > 0 {
			slog.Info("using cached news", "date", date, "count", len(items))
			return items
		}
	}

	var articles []news.Article
	var err error
	if date == o.now().Format("2006-01-02") {
		articles, err = o.News.TopHeadlines(o.Country, o.PageSize)
	} else {
		articles, err = o.News.EverythingOnDate(date, o.PageSize)
	}
	if err != nil {
		slog.Error("error fetching news", "date", date, "error", err)
		return nil
	}

	items := make([]model.NewsItem, 0, len(articles))
	for _, a := range articles {
		headline := a.Title
		if headline == "" {
			headline = "No Title"
		}
		source := a.Source
		if source == "" {
			source = "Unknown"
		}
		publishedAt := a.PublishedAt
		if publishedAt.IsZero() {
			publishedAt = o.now()
		}

		items = append(items, model.NewsItem{
			Headline:      headline,
			Description:   a.Description,
			URL:           a.URL,
			Source:        source,
			Location:      extract.Location(a.Title, a.Description),
			PublishedDate: publishedAt.Format(time.RFC3339),
		})
	}

	if o.Cache != nil {
		if err := o.Cache.Put(date, items); err != nil {
			slog.Warn("error caching news", "date", date, "error", err)
		}
	}

	return items
}

// RefreshStocks re-fetches prices for the supplied tickers, omitting
// failures. It is stateless and time-unaware; callers decide when to run it
// and write results back into the session store.
func (o *Orchestrator) RefreshStocks(tickers []string) []model.StockRecord {
	var updated []model.StockRecord
	for _, ticker := range tickers {
		quote, err := o.Stocks.LatestPrice(ticker)
		if err != nil {
			slog.Error("error refreshing stock", "ticker", ticker, "error", err)
			continue
		}
		updated = append(updated, model.StockRecord{
			Ticker:      quote.Ticker,
			CompanyName: quote.CompanyName,
			Price:       quote.Price,
			Date:        quote.Date,
		})
	}
	return updated
}
