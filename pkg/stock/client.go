package stock

// Quote is the latest known price for one ticker. Date is the provider's
// trading date when reported, otherwise the capture time.
type Quote struct {
	Ticker      string
	CompanyName string
	Price       float64
	Date        string
}

type Client interface {
	LatestPrice(ticker string) (*Quote, error)
	Name() string
}

// SP500Proxy returns the S&P 500 index level via the SPY ETF, relabeled for
// display. Used as the dashboard fallback when no companies were extracted.
func SP500Proxy(c Client) (*Quote, error) {
	quote, err := c.LatestPrice("SPY")
	if err != nil {
		return nil, err
	}
	quote.Ticker = "SPY"
	quote.CompanyName = "S&P 500 ETF"
	return quote, nil
}
