package feed

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdedup/pkg/domain"
)

type parserFunc func(ctx context.Context, src domain.FeedSource) ([]domain.Article, error)

func (f parserFunc) Parse(ctx context.Context, src domain.FeedSource) ([]domain.Article, error) {
	return f(ctx, src)
}

func TestCollector_Collect(t *testing.T) {
	var calls atomic.Int32
	parser := parserFunc(func(_ context.Context, src domain.FeedSource) ([]domain.Article, error) {
		calls.Add(1)
		if src.Name == "broken" {
			return nil, errors.New("boom")
		}
		return []domain.Article{{ID: src.Name + "-1", Source: src.Name}, {ID: src.Name + "-2", Source: src.Name}}, nil
	})

	t.Run("order kept, failures skipped", func(t *testing.T) {
		calls.Store(0)
		c := NewCollector(parser, 2)
		articles, err := c.Collect(context.Background(), []domain.FeedSource{{Name: "one"}, {Name: "broken"}, {Name: "two"}})
		require.NoError(t, err)
		assert.Equal(t, int32(3), calls.Load())
		ids := make([]string, len(articles))
		for i, a := range articles {
			ids[i] = a.ID
		}
		assert.Equal(t, []string{"one-1", "one-2", "two-1", "two-2"}, ids)
	})

	t.Run("all failed", func(t *testing.T) {
		c := NewCollector(parser, 0)
		_, err := c.Collect(context.Background(), []domain.FeedSource{{Name: "broken"}, {Name: "broken"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "all 2 feeds failed")
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("no sources", func(t *testing.T) {
		articles, err := NewCollector(parser, 1).Collect(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, articles)
	})
}
