package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/zudevon/ez-dash/db"
	"github.com/zudevon/ez-dash/internal/cache"
	"github.com/zudevon/ez-dash/internal/enrich"
	"github.com/zudevon/ez-dash/internal/repository"
	"github.com/zudevon/ez-dash/pkg/news"
	"github.com/zudevon/ez-dash/pkg/stock"
	"github.com/zudevon/ez-dash/pkg/weather"
)

// Runs one enrichment cycle and rebuilds the session store. Useful for
// priming the dashboard from cron before users arrive.
func main() {

	date := flag.String("date", time.Now().Format("2006-01-02"), "date to load (YYYY-MM-DD)")
	flag.Parse()

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	database, err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer database.Close()

	repo := repository.NewSessionRepository(database)
	if err := repo.Init(); err != nil {
		log.Fatalf("error creating session tables: %v", err)
	}

	newsKey := os.Getenv("NEWS_API_KEY")
	if newsKey == "" {
		slog.Error("NEWS_API_KEY is not configured")
		return
	}

	cacheDir := os.Getenv("CACHE_DIR")
	if cacheDir == "" {
		cacheDir = ".cache"
	}

	newsCache, err := cache.New(cacheDir, cache.DefaultRetention)
	if err != nil {
		log.Fatalf("error opening news cache: %v", err)
	}

	orchestrator := enrich.NewOrchestrator(
		news.NewNewsAPIClient(newsKey),
		weather.NewOpenWeatherClient(os.Getenv("WEATHER_API_KEY")),
		stockClient(),
		newsCache,
	)

	newsData, weatherData, stockData := orchestrator.Enrich(*date)

	if err := repo.ReplaceAll(newsData, weatherData, stockData); err != nil {
		log.Fatalf("error rebuilding session store: %v", err)
	}

	slog.Info("load complete", "date", *date,
		"news", len(newsData), "weather", len(weatherData), "stocks", len(stockData))
}

// stockClient picks the price provider by which API key is configured.
func stockClient() stock.Client {
	if key := os.Getenv("TIINGO_API_KEY"); key != "" {
		return stock.NewTiingoClient(key)
	}
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		return stock.NewFinnhubClient(key)
	}
	slog.Warn("no stock API key configured, stock lookups will return no data")
	return stock.NewTiingoClient("")
}
