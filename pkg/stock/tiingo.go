package stock

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type TiingoClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewTiingoClient(apiKey string) *TiingoClient {
	return &TiingoClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *TiingoClient) Name() string {
	return "Tiingo"
}

// LatestPrice fetches the most recent daily price for a ticker. A missing
// close falls back to the adjusted close; if both are absent the quote is
// no data rather than a misleading $0.00.
func (c *TiingoClient) LatestPrice(ticker string) (*Quote, error) {
	ticker = strings.ToUpper(ticker)

	url := fmt.Sprintf(
		"https://api.tiingo.com/tiingo/daily/%s/prices?token=%s",
		ticker, c.apiKey,
	)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("tiingo fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tiingo status %d for %s", resp.StatusCode, ticker)
	}

	var prices []tiingoPrice
	if err := json.NewDecoder(resp.Body).Decode(&prices); err != nil {
		return nil, fmt.Errorf("tiingo decode: %w", err)
	}

	if len(prices) == 0 {
		return nil, fmt.Errorf("tiingo: no price series for %s", ticker)
	}

	latest := prices[0]

	var price float64
	switch {
	case latest.Close != nil:
		price = *latest.Close
	case latest.AdjClose != nil:
		price = *latest.AdjClose
	default:
		return nil, fmt.Errorf("tiingo: no close price for %s", ticker)
	}

	date := latest.Date
	if date == "" {
		date = time.Now().Format(time.RFC3339)
	}

	return &Quote{
		Ticker:      ticker,
		CompanyName: ticker,
		Price:       price,
		Date:        date,
	}, nil
}

type tiingoPrice struct {
	Date     string   `json:"date"`
	Close    *float64 `json:"close"`
	AdjClose *float64 `json:"adjClose"`
}
