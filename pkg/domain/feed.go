package domain

// FeedSource is a configured feed to collect articles from
type FeedSource struct {
	Name     string
	URL      string
	Category string
}
