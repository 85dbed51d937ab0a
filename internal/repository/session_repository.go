package repository

import (
	"database/sql"

	"github.com/zudevon/ez-dash/internal/model"
)

// SessionRepository owns the per-session scratch tables. Each enrichment
// cycle rebuilds all three tables; the dashboard reads from them.
type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Init creates the scratch tables if they do not exist. news_id links are
// informational only; readers aggregate whole tables instead of joining.
func (r *SessionRepository) Init() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS news (
			id SERIAL PRIMARY KEY,
			headline TEXT NOT NULL,
			description TEXT,
			url TEXT,
			source TEXT,
			location TEXT,
			published_date TEXT,
			created_at TIMESTAMPTZ DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS weather (
			id SERIAL PRIMARY KEY,
			location TEXT NOT NULL,
			temperature DOUBLE PRECISION,
			feels_like DOUBLE PRECISION,
			humidity INTEGER,
			description TEXT,
			icon TEXT,
			date TEXT,
			news_id INTEGER REFERENCES news (id) ON DELETE CASCADE
		);

		CREATE TABLE IF NOT EXISTS stocks (
			id SERIAL PRIMARY KEY,
			ticker TEXT NOT NULL,
			company_name TEXT,
			price DOUBLE PRECISION,
			date TEXT,
			news_id INTEGER REFERENCES news (id) ON DELETE CASCADE
		);
	`)
	return err
}

// ReplaceAll atomically swaps the session snapshot for a new batch.
func (r *SessionRepository) ReplaceAll(news []model.NewsItem, weather []model.WeatherRecord, stocks []model.StockRecord) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"stocks", "weather", "news"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	for _, n := range news {
		_, err := tx.Exec(`
			INSERT INTO news(headline, description, url, source, location, published_date)
			VALUES($1, $2, $3, $4, $5, $6)
		`, n.Headline, n.Description, n.URL, n.Source, n.Location, n.PublishedDate)
		if err != nil {
			return err
		}
	}

	for _, w := range weather {
		_, err := tx.Exec(`
			INSERT INTO weather(location, temperature, feels_like, humidity, description, icon, date)
			VALUES($1, $2, $3, $4, $5, $6, $7)
		`, w.Location, w.Temperature, w.FeelsLike, w.Humidity, w.Description, w.Icon, w.Date)
		if err != nil {
			return err
		}
	}

	for _, s := range stocks {
		_, err := tx.Exec(`
			INSERT INTO stocks(ticker, company_name, price, date)
			VALUES($1, $2, $3, $4)
		`, s.Ticker, s.CompanyName, s.Price, s.Date)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *SessionRepository) AllNews() ([]model.NewsItem, error) {
	rows, err := r.db.Query(`
		SELECT id, headline, COALESCE(description, ''), COALESCE(url, ''),
			COALESCE(source, ''), COALESCE(location, ''), COALESCE(published_date, ''), created_at
		FROM news
		ORDER BY published_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.NewsItem
	for rows.Next() {
		var n model.NewsItem
		err := rows.Scan(&n.ID, &n.Headline, &n.Description, &n.URL, &n.Source, &n.Location, &n.PublishedDate, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}

	return items, rows.Err()
}

func (r *SessionRepository) AllWeather() ([]model.WeatherRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, location, temperature, feels_like, humidity,
			COALESCE(description, ''), COALESCE(icon, ''), COALESCE(date, '')
		FROM weather
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.WeatherRecord
	for rows.Next() {
		var w model.WeatherRecord
		err := rows.Scan(&w.ID, &w.Location, &w.Temperature, &w.FeelsLike, &w.Humidity, &w.Description, &w.Icon, &w.Date)
		if err != nil {
			return nil, err
		}
		records = append(records, w)
	}

	return records, rows.Err()
}

// AllStocks preserves first-encounter order from the enrichment scan.
func (r *SessionRepository) AllStocks() ([]model.StockRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, ticker, COALESCE(company_name, ticker), price, COALESCE(date, '')
		FROM stocks
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.StockRecord
	for rows.Next() {
		var s model.StockRecord
		err := rows.Scan(&s.ID, &s.Ticker, &s.CompanyName, &s.Price, &s.Date)
		if err != nil {
			return nil, err
		}
		records = append(records, s)
	}

	return records, rows.Err()
}

// UpdateStockPrice overwrites price and date in place for one ticker.
// Never inserts; tickers absent from a refresh keep their last values.
func (r *SessionRepository) UpdateStockPrice(ticker string, price float64, date string) error {
	_, err := r.db.Exec(`
		UPDATE stocks SET price = $1, date = $2 WHERE ticker = $3
	`, price, date, ticker)
	return err
}

// ClearAll empties the scratch tables.
func (r *SessionRepository) ClearAll() error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"stocks", "weather", "news"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	return tx.Commit()
}
