package stock

import (
	"context"
	"fmt"
	"strings"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

// LatestPrice fetches the current quote for a ticker. Finnhub reports a
// zero price for unknown symbols, which counts as no data.
func (c *FinnhubClient) LatestPrice(ticker string) (*Quote, error) {
	ticker = strings.ToUpper(ticker)

	res, _, err := c.client.Quote(context.Background()).Symbol(ticker).Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub quote: %w", err)
	}

	if res.C == nil || *res.C == 0 {
		return nil, fmt.Errorf("finnhub: no price data for %s", ticker)
	}

	date := time.Now().Format(time.RFC3339)
	if res.T != nil && *res.T > 0 {
		date = time.Unix(*res.T, 0).Format(time.RFC3339)
	}

	return &Quote{
		Ticker:      ticker,
		CompanyName: ticker,
		Price:       float64(*res.C),
		Date:        date,
	}, nil
}
