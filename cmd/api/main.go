package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/zudevon/ez-dash/db"
	"github.com/zudevon/ez-dash/internal/cache"
	"github.com/zudevon/ez-dash/internal/enrich"
	"github.com/zudevon/ez-dash/internal/handler"
	"github.com/zudevon/ez-dash/internal/repository"
	"github.com/zudevon/ez-dash/internal/session"
	"github.com/zudevon/ez-dash/pkg/news"
	"github.com/zudevon/ez-dash/pkg/stock"
	"github.com/zudevon/ez-dash/pkg/weather"
)

func main() {

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

	if purged := newsCache.PurgeExpired(); purged > 0 {
		slog.Info("purged expired cache entries", "count", purged)
	}

	orchestrator := enrich.NewOrchestrator(
		news.NewNewsAPIClient(newsKey),
		weather.NewOpenWeatherClient(os.Getenv("WEATHER_API_KEY")),
		stockClient(),
		newsCache,
	)

	sess := session.New(repo, orchestrator)
	dashboardHandler := handler.NewDashboardHandler(sess)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/dashboard", dashboardHandler.GetDashboard)
	r.GET("/dates", dashboardHandler.GetDates)
	r.GET("/news", dashboardHandler.GetNews)
	r.GET("/weather", dashboardHandler.GetWeather)
	r.GET("/stocks", dashboardHandler.GetStocks)
	r.POST("/refresh", dashboardHandler.PostRefresh)
	r.POST("/stocks/refresh", dashboardHandler.PostStockRefresh)
	r.PUT("/settings/autorefresh", dashboardHandler.PutAutoRefresh)
	r.GET("/health", dashboardHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
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
