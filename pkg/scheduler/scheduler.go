package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsdedup/pkg/dedup"
	"github.com/umputun/newsdedup/pkg/service"
)

//go:generate moq -out mocks/collection.go -pkg mocks -skip-ensure -fmt goimports . Collection

// Collection is the part of the article collection driven by the scheduler
type Collection interface {
	Fetch(ctx context.Context) (service.FetchResult, error)
	Dedup(ctx context.Context, threshold float64, dryRun bool) (dedup.ReduceResult, error)
}

// Config holds scheduler configuration
type Config struct {
	Interval  time.Duration // time between fetch cycles
	AutoDedup bool          // reduce the collection after each fetch with new articles
	Threshold float64       // similarity threshold for auto dedup
}

// Scheduler periodically fetches configured feeds and optionally removes duplicates
type Scheduler struct {
	collection Collection
	cfg        Config
	wg         sync.WaitGroup
	cancel     context.CancelFunc
	runMu      sync.Mutex // one cycle at a time
}

// NewScheduler creates a new scheduler instance
func NewScheduler(collection Collection, cfg Config) *Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Minute
	}
	return &Scheduler{collection: collection, cfg: cfg}
}

// Start runs the first cycle immediately and then repeats it every interval until ctx is done or Stop is called
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.worker(ctx)
	lgr.Printf("[INFO] scheduler started with interval %v, auto dedup %v", s.cfg.Interval, s.cfg.AutoDedup)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// UpdateNow runs a single fetch cycle synchronously
func (s *Scheduler) UpdateNow(ctx context.Context) error {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	res, err := s.collection.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch feeds: %w", err)
	}
	lgr.Printf("[INFO] fetched %d articles, added %d new", res.Fetched, res.Added)

	if !s.cfg.AutoDedup || res.Added == 0 {
		return nil
	}
	reduced, err := s.collection.Dedup(ctx, s.cfg.Threshold, false)
	if err != nil {
		return fmt.Errorf("dedup after fetch: %w", err)
	}
	if reduced.Removed > 0 {
		lgr.Printf("[INFO] removed %d duplicates, %d articles remain", reduced.Removed, len(reduced.Unique))
	}
	return nil
}

func (s *Scheduler) worker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if err := s.UpdateNow(ctx); err != nil && ctx.Err() == nil {
		lgr.Printf("[WARN] scheduled update failed: %v", err)
	}
}
