package feed

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newsdedup/pkg/domain"
)

// Collector fetches a set of feeds concurrently
type Collector struct {
	parser        FeedParser
	maxConcurrent int
}

// FeedParser parses a single feed into articles
type FeedParser interface {
	Parse(ctx context.Context, src domain.FeedSource) ([]domain.Article, error)
}

// NewCollector makes a collector running up to maxConcurrent fetches at once
func NewCollector(parser FeedParser, maxConcurrent int) *Collector {
	if maxConcurrent <= 0 {
		maxConcurrent = 5
	}
	return &Collector{parser: parser, maxConcurrent: maxConcurrent}
}

// Collect fetches all sources and returns their articles in sources order.
// A failed source is logged and skipped, error returned only if every source failed.
func (c *Collector) Collect(ctx context.Context, sources []domain.FeedSource) ([]domain.Article, error) {
	results := make([][]domain.Article, len(sources))
	errs := make([]error, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrent)
	for i, src := range sources {
		g.Go(func() error {
			articles, err := c.parser.Parse(ctx, src)
			if err != nil {
				lgr.Printf("[WARN] failed to collect %s (%s): %v", src.Name, src.URL, err)
				errs[i] = err
				return nil
			}
			lgr.Printf("[DEBUG] collected %d articles from %s", len(articles), src.Name)
			results[i] = articles
			return nil
		})
	}
	_ = g.Wait() // per-source errors are kept in errs

	if len(sources) > 0 && !slices.ContainsFunc(errs, func(err error) bool { return err == nil }) {
		return nil, fmt.Errorf("all %d feeds failed: %w", len(sources), errors.Join(errs...))
	}
	return slices.Concat(results...), nil
}
