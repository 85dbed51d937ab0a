package news

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type NewsAPIClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewNewsAPIClient(apiKey string) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

// TopHeadlines fetches the current top headlines for a country.
func (c *NewsAPIClient) TopHeadlines(country string, pageSize int) ([]Article, error) {
	url := fmt.Sprintf(
		"https://newsapi.org/v2/top-headlines?country=%s&pageSize=%d&apiKey=%s",
		country, pageSize, c.apiKey,
	)
	return c.fetch(url)
}

// EverythingOnDate fetches articles published on a past calendar date.
func (c *NewsAPIClient) EverythingOnDate(date string, pageSize int) ([]Article, error) {
	url := fmt.Sprintf(
		"https://newsapi.org/v2/everything?q=news&from=%s&to=%s&language=en&sortBy=publishedAt&pageSize=%d&apiKey=%s",
		date, date, pageSize, c.apiKey,
	)
	return c.fetch(url)
}

func (c *NewsAPIClient) fetch(url string) ([]Article, error) {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}

	if raw.Status != "ok" {
		return nil, fmt.Errorf("newsapi error: %s", raw.Message)
	}

	articles := make([]Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		publishedAt, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, Article{
			Title:       item.Title,
			Description: item.Description,
			URL:         item.URL,
			Source:      item.Source.Name,
			PublishedAt: publishedAt,
		})
	}

	return articles, nil
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Message  string           `json:"message"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source      newsAPISource `json:"source"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	PublishedAt string        `json:"publishedAt"`
}

type newsAPISource struct {
	Name string `json:"name"`
}
