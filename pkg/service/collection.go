// Package service runs collection operations over the in-memory store and keeps the database in sync.
package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsdedup/pkg/dedup"
	"github.com/umputun/newsdedup/pkg/domain"
	"github.com/umputun/newsdedup/pkg/repository"
	"github.com/umputun/newsdedup/pkg/search"
	"github.com/umputun/newsdedup/pkg/stats"
	"github.com/umputun/newsdedup/pkg/store"
)

//go:generate moq -out mocks/articles.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . SettingStore
//go:generate moq -out mocks/collector.go -pkg mocks -skip-ensure -fmt goimports . Collector

// ArticleStore persists articles
type ArticleStore interface {
	CreateArticle(ctx context.Context, a domain.Article) error
	ArticleExists(ctx context.Context, id string) (bool, error)
	GetArticles(ctx context.Context) ([]domain.Article, error)
	UpdateFavorite(ctx context.Context, id string, favorite bool) error
	DeleteArticles(ctx context.Context, ids []string) (int64, error)
}

// SettingStore keeps timestamps of collection runs
type SettingStore interface {
	GetTime(ctx context.Context, key string) (time.Time, error)
	SetTime(ctx context.Context, key string, ts time.Time) error
}

// Pinger checks database availability
type Pinger interface {
	Ping(ctx context.Context) error
}

// Collector fetches articles from feed sources
type Collector interface {
	Collect(ctx context.Context, sources []domain.FeedSource) ([]domain.Article, error)
}

// Collection is the article collection backed by a database.
// Reads are served from memory, writes go to the database first and to memory after.
type Collection struct {
	articles  ArticleStore
	settings  SettingStore
	collector Collector
	db        Pinger
	sources   []domain.FeedSource
	dedupCfg  dedup.Config
	engine    *dedup.Engine
	store     *store.Store
	now       func() time.Time

	mu sync.Mutex // serializes writes touching both store and database
}

// Params defines collection dependencies
type Params struct {
	Articles  ArticleStore
	Settings  SettingStore
	Collector Collector // optional, Fetch fails without it
	DB        Pinger    // optional, Ping always succeeds without it
	Sources   []domain.FeedSource
	Dedup     dedup.Config
}

// ImportResult is the outcome of Import
type ImportResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// FetchResult is the outcome of Fetch
type FetchResult struct {
	Fetched int `json:"fetched"`
	Added   int `json:"added"`
}

// Info describes collection state
type Info struct {
	Total     int       `json:"total"`
	Mode      string    `json:"mode"`
	LastFetch time.Time `json:"last_fetch,omitzero"`
	LastDedup time.Time `json:"last_dedup,omitzero"`
}

// New makes an empty collection, call Load to read persisted articles
func New(params Params) *Collection {
	st, _ := store.New() // empty store can't fail
	return &Collection{
		articles:  params.Articles,
		settings:  params.Settings,
		collector: params.Collector,
		db:        params.DB,
		sources:   params.Sources,
		dedupCfg:  params.Dedup,
		engine:    dedup.New(params.Dedup),
		store:     st,
		now:       time.Now,
	}
}

// Load replaces in-memory collection with articles from the database
func (c *Collection) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	articles, err := c.articles.GetArticles(ctx)
	if err != nil {
		return fmt.Errorf("load articles: %w", err)
	}
	if err := c.store.Replace(articles); err != nil {
		return fmt.Errorf("load articles: %w", err)
	}
	lgr.Printf("[DEBUG] loaded %d articles", len(articles))
	return nil
}

// Add stores a new article, fails with domain.ErrInvalidArgument on empty id and domain.ErrDuplicateID on known id
func (c *Collection) Add(ctx context.Context, a domain.Article) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.add(ctx, a)
}

func (c *Collection) add(ctx context.Context, a domain.Article) error {
	if a.ID == "" {
		return fmt.Errorf("add article: empty id: %w", domain.ErrInvalidArgument)
	}
	if _, err := c.store.Get(a.ID); err == nil {
		return fmt.Errorf("add article %q: %w", a.ID, domain.ErrDuplicateID)
	}
	// the database is shared, another process may have stored the article since Load
	exists, err := c.articles.ArticleExists(ctx, a.ID)
	if err != nil {
		return fmt.Errorf("check article %q: %w", a.ID, err)
	}
	if exists {
		return fmt.Errorf("add article %q, stored by another process: %w", a.ID, domain.ErrDuplicateID)
	}
	if a.SavedAt.IsZero() {
		a.SavedAt = c.now().UTC()
	}
	if err := c.articles.CreateArticle(ctx, a); err != nil {
		return fmt.Errorf("save article: %w", err)
	}
	return c.store.Add(a)
}

// Get returns article by id
func (c *Collection) Get(id string) (domain.Article, error) {
	return c.store.Get(id)
}

// List returns all articles in insertion order
func (c *Collection) List() []domain.Article {
	return c.store.List()
}

// Favorites returns favorite articles in insertion order
func (c *Collection) Favorites() []domain.Article {
	return slices.Collect(c.store.Favorites())
}

// ToggleFavorite flips favorite flag and persists it, returns the new value
func (c *Collection) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fav, err := c.store.ToggleFavorite(id)
	if err != nil {
		return false, err
	}
	if err := c.articles.UpdateFavorite(ctx, id, fav); err != nil {
		if _, rerr := c.store.ToggleFavorite(id); rerr != nil {
			lgr.Printf("[WARN] failed to restore favorite flag of %s: %v", id, rerr)
		}
		return false, fmt.Errorf("save favorite: %w", err)
	}
	return fav, nil
}

// Duplicates reports duplicate pairs of the collection, empty mode means the configured one
func (c *Collection) Duplicates(threshold float64, mode domain.SimilarityMode) ([]domain.DuplicatePair, error) {
	return c.engineFor(mode).FindDuplicates(c.store.List(), threshold)
}

// Dedup reduces the collection and removes dropped articles from the database.
// With dryRun nothing is changed and the result shows what would be removed.
func (c *Collection) Dedup(ctx context.Context, threshold float64, dryRun bool) (dedup.ReduceResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, err := c.engine.Reduce(c.store.List(), threshold)
	if err != nil {
		return dedup.ReduceResult{}, err
	}
	if dryRun {
		return res, nil
	}

	if res.Removed > 0 {
		ids := make([]string, 0, len(res.Drops))
		for _, d := range res.Drops {
			ids = append(ids, d.ID)
		}
		deleted, err := c.articles.DeleteArticles(ctx, ids)
		if err != nil {
			return dedup.ReduceResult{}, fmt.Errorf("delete duplicates: %w", err)
		}
		if deleted != int64(len(ids)) {
			lgr.Printf("[WARN] expected to delete %d articles, deleted %d", len(ids), deleted)
		}
		if err := c.store.Replace(res.Unique); err != nil {
			return dedup.ReduceResult{}, fmt.Errorf("replace collection: %w", err)
		}
	}

	if err := c.settings.SetTime(ctx, repository.SettingLastDedup, c.now()); err != nil {
		lgr.Printf("[WARN] failed to save dedup time: %v", err)
	}
	lgr.Printf("[INFO] dedup at %.2f removed %d of %d articles", threshold, res.Removed, res.Removed+len(res.Unique))
	return res, nil
}

// Stats summarizes the collection
func (c *Collection) Stats() stats.Summary {
	return stats.Summarize(c.store.List())
}

// Import adds articles in order, known ids are skipped.
// All ids are checked before anything is stored, an article without id fails the whole import.
func (c *Collection) Import(ctx context.Context, articles []domain.Article) (ImportResult, error) {
	for i, a := range articles {
		if a.ID == "" {
			return ImportResult{}, fmt.Errorf("article #%d has no id: %w", i+1, domain.ErrInvalidArgument)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	var res ImportResult
	for _, a := range articles {
		err := c.add(ctx, a)
		switch {
		case err == nil:
			res.Added++
		case errors.Is(err, domain.ErrDuplicateID):
			res.Skipped++
		default:
			return res, fmt.Errorf("import %q: %w", a.ID, err)
		}
	}
	lgr.Printf("[INFO] imported %d articles, skipped %d", res.Added, res.Skipped)
	return res, nil
}

// Fetch collects configured feeds and adds articles not yet in the collection
func (c *Collection) Fetch(ctx context.Context) (FetchResult, error) {
	if c.collector == nil {
		return FetchResult{}, errors.New("feed collector is not configured")
	}
	if len(c.sources) == 0 {
		return FetchResult{}, fmt.Errorf("no feeds configured: %w", domain.ErrInvalidArgument)
	}

	articles, err := c.collector.Collect(ctx, c.sources)
	if err != nil {
		return FetchResult{}, fmt.Errorf("collect feeds: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	res := FetchResult{Fetched: len(articles)}
	for _, a := range articles {
		err := c.add(ctx, a)
		switch {
		case err == nil:
			res.Added++
		case errors.Is(err, domain.ErrDuplicateID):
			lgr.Printf("[DEBUG] skip known article %s, %s", a.ID, a.Title)
		default:
			return res, fmt.Errorf("add fetched article: %w", err)
		}
	}

	if err := c.settings.SetTime(ctx, repository.SettingLastFetch, c.now()); err != nil {
		lgr.Printf("[WARN] failed to save fetch time: %v", err)
	}
	lgr.Printf("[INFO] fetched %d articles from %d feeds, added %d", res.Fetched, len(c.sources), res.Added)
	return res, nil
}

// Search returns articles matching the query, best first, limit 0 returns all matches
func (c *Collection) Search(query string, limit int) ([]search.Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("empty search query: %w", domain.ErrInvalidArgument)
	}
	if limit < 0 {
		return nil, fmt.Errorf("negative search limit %d: %w", limit, domain.ErrInvalidArgument)
	}
	return search.Search(c.store.List(), query, limit), nil
}

// Ping checks the database is reachable
func (c *Collection) Ping(ctx context.Context) error {
	if c.db == nil {
		return nil
	}
	if err := c.db.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// Info returns collection state with times of the last fetch and dedup
func (c *Collection) Info(ctx context.Context) (Info, error) {
	res := Info{Total: c.store.Len(), Mode: string(c.engine.Mode())}
	var err error
	if res.LastFetch, err = c.settings.GetTime(ctx, repository.SettingLastFetch); err != nil {
		return Info{}, fmt.Errorf("get last fetch: %w", err)
	}
	if res.LastDedup, err = c.settings.GetTime(ctx, repository.SettingLastDedup); err != nil {
		return Info{}, fmt.Errorf("get last dedup: %w", err)
	}
	return res, nil
}

// engineFor returns engine for the mode, the default one if mode is empty or matches it
func (c *Collection) engineFor(mode domain.SimilarityMode) *dedup.Engine {
	if mode == "" || mode == c.engine.Mode() {
		return c.engine
	}
	cfg := c.dedupCfg
	cfg.Mode = mode
	return dedup.New(cfg)
}
