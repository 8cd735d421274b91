// Package feed fetches RSS/Atom feeds and turns their items into articles.
package feed

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/newsdedup/pkg/domain"
)

// Parser fetches and parses a single feed
type Parser struct {
	client      *http.Client
	userAgent   string
	maxKeywords int
	sanitizer   *bluemonday.Policy
	now         func() time.Time
}

// Params defines parser parameters
type Params struct {
	Timeout     time.Duration
	UserAgent   string
	MaxKeywords int // keywords extracted per article, 0 disables extraction
}

// NewParser creates a new feed parser
func NewParser(params Params) *Parser {
	if params.Timeout == 0 {
		params.Timeout = 30 * time.Second
	}
	if params.UserAgent == "" {
		params.UserAgent = "newsdedup/1.0"
	}
	sanitizer := bluemonday.StrictPolicy()
	sanitizer.AddSpaceWhenStrippingTag(true)

	return &Parser{
		client: &http.Client{
			Timeout: params.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent:   params.UserAgent,
		maxKeywords: params.MaxKeywords,
		sanitizer:   sanitizer,
		now:         time.Now,
	}
}

// Parse fetches the feed and converts its items to articles.
// Items without title are skipped, article ids are derived from link, guid or source and title.
func (p *Parser) Parse(ctx context.Context, src domain.FeedSource) ([]domain.Article, error) {
	body, err := p.fetch(ctx, src.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", src.URL, err)
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", src.URL, err)
	}

	source := src.Name
	if source == "" {
		source = strings.TrimSpace(feed.Title)
	}

	savedAt := p.now().UTC()
	res := make([]domain.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		title := p.plainText(item.Title)
		if title == "" {
			continue
		}

		a := domain.Article{
			ID:          articleID(item.Link, item.GUID, source, title),
			Title:       title,
			Link:        strings.TrimSpace(item.Link),
			Description: p.plainText(item.Description),
			Content:     p.plainText(item.Content),
			Source:      source,
			Category:    src.Category,
			SavedAt:     savedAt,
		}
		if a.Category == "" && len(item.Categories) > 0 {
			a.Category = strings.TrimSpace(item.Categories[0])
		}
		if p.maxKeywords > 0 {
			a.Keywords = ExtractKeywords(a.Title+" "+a.Body(), p.maxKeywords)
		}

		switch {
		case item.PublishedParsed != nil:
			a.Published = item.PublishedParsed.UTC()
		case item.UpdatedParsed != nil:
			a.Published = item.UpdatedParsed.UTC()
		}

		res = append(res, a)
	}

	return res, nil
}

// plainText strips markup and collapses whitespace
func (p *Parser) plainText(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(html.UnescapeString(p.sanitizer.Sanitize(s))), " ")
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	addBrowserHeaders(req, p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// articleID makes a stable name-based id, the same story link always gives the same id
func articleID(link, guid, source, title string) string {
	key := strings.TrimSpace(link)
	if key == "" {
		key = strings.TrimSpace(guid)
	}
	if key == "" {
		key = source + "|" + title
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}
