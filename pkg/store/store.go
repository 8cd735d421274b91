// Package store keeps the article collection in insertion order.
package store

import (
	"fmt"
	"iter"
	"sync"

	"github.com/umputun/newsdedup/pkg/domain"
)

// Store is an in-memory ordered article collection, safe for concurrent use.
// Articles are copied on the way in and out, callers never share values with the store.
type Store struct {
	mu       sync.Mutex
	articles []domain.Article
	index    map[string]int // id -> position in articles
}

// New makes a store with optional initial articles, fails on empty or duplicate ids
func New(articles ...domain.Article) (*Store, error) {
	s := &Store{index: map[string]int{}}
	if err := s.Replace(articles); err != nil {
		return nil, err
	}
	return s, nil
}

// Add appends article to the collection
func (s *Store) Add(a domain.Article) error {
	if a.ID == "" {
		return fmt.Errorf("add article: empty id: %w", domain.ErrInvalidArgument)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[a.ID]; ok {
		return fmt.Errorf("add article %q: %w", a.ID, domain.ErrDuplicateID)
	}
	s.index[a.ID] = len(s.articles)
	s.articles = append(s.articles, a.Clone())
	return nil
}

// Get returns article by id
func (s *Store) Get(id string) (domain.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, ok := s.index[id]
	if !ok {
		return domain.Article{}, fmt.Errorf("get article %q: %w", id, domain.ErrNotFound)
	}
	return s.articles[pos].Clone(), nil
}

// ToggleFavorite flips favorite flag of the article and returns the new value
func (s *Store) ToggleFavorite(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, ok := s.index[id]
	if !ok {
		return false, fmt.Errorf("toggle favorite %q: %w", id, domain.ErrNotFound)
	}
	s.articles[pos].IsFavorite = !s.articles[pos].IsFavorite
	return s.articles[pos].IsFavorite, nil
}

// List returns a copy of all articles in insertion order
func (s *Store) List() []domain.Article {
	return s.snapshot(func(domain.Article) bool { return true })
}

// Favorites iterates over favorite articles in insertion order.
// Each iteration works on a snapshot taken when it starts, so the sequence can be restarted.
func (s *Store) Favorites() iter.Seq[domain.Article] {
	return func(yield func(domain.Article) bool) {
		for _, a := range s.snapshot(func(a domain.Article) bool { return a.IsFavorite }) {
			if !yield(a) {
				return
			}
		}
	}
}

// Len returns number of articles
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.articles)
}

// Replace swaps the whole collection, nothing is changed if articles have empty or duplicate ids
func (s *Store) Replace(articles []domain.Article) error {
	index := make(map[string]int, len(articles))
	res := make([]domain.Article, 0, len(articles))
	for i, a := range articles {
		if a.ID == "" {
			return fmt.Errorf("replace articles: empty id at %d: %w", i, domain.ErrInvalidArgument)
		}
		if _, ok := index[a.ID]; ok {
			return fmt.Errorf("replace articles: id %q: %w", a.ID, domain.ErrDuplicateID)
		}
		index[a.ID] = i
		res = append(res, a.Clone())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles, s.index = res, index
	return nil
}

func (s *Store) snapshot(keep func(domain.Article) bool) []domain.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]domain.Article, 0, len(s.articles))
	for _, a := range s.articles {
		if keep(a) {
			res = append(res, a.Clone())
		}
	}
	return res
}
