package news

import "time"

// Article is a normalized article from the news provider.
type Article struct {
	Title       string
	Description string
	URL         string
	Source      string
	PublishedAt time.Time
}

type Client interface {
	TopHeadlines(country string, pageSize int) ([]Article, error)
	EverythingOnDate(date string, pageSize int) ([]Article, error)
	Name() string
}
