package dedup

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdedup/pkg/domain"
)

func TestEngine_Similarity(t *testing.T) {
	e := New(Config{})

	t.Run("reordered words are identical", func(t *testing.T) {
		a := domain.Article{ID: "a", Title: "AI breakthrough in research"}
		b := domain.Article{ID: "b", Title: "Breakthrough in AI research"}
		assert.Equal(t, []string{"ai", "breakthrough", "in", "research"}, e.Tokens(a).Sorted())
		assert.Equal(t, e.Tokens(a).Sorted(), e.Tokens(b).Sorted())
		assert.Equal(t, 1.0, e.Similarity(a, b))
	})

	t.Run("disjoint titles", func(t *testing.T) {
		a := domain.Article{ID: "a", Title: "Stock market crashes"}
		b := domain.Article{ID: "b", Title: "Local bakery wins award"}
		assert.Equal(t, 0.0, e.Similarity(a, b))
	})

	t.Run("description is part of text", func(t *testing.T) {
		a := domain.Article{ID: "a", Title: "Title", Description: "one two"}
		b := domain.Article{ID: "b", Title: "Title", Description: "three four"}
		assert.InDelta(t, 0.2, e.Similarity(a, b), 1e-9)
	})

	t.Run("content used when description empty", func(t *testing.T) {
		a := domain.Article{ID: "a", Title: "x", Content: "y z"}
		assert.Equal(t, []string{"x", "y", "z"}, e.Tokens(a).Sorted())
	})

	t.Run("empty articles are not duplicates", func(t *testing.T) {
		assert.Equal(t, 0.0, e.Similarity(domain.Article{ID: "a"}, domain.Article{ID: "b"}))
	})
}

func TestEngine_KeywordMode(t *testing.T) {
	e := New(Config{Mode: domain.ModeKeywords})
	assert.Equal(t, domain.ModeKeywords, e.Mode())

	a := domain.Article{ID: "a", Title: "totally different", Keywords: []string{"AI", "research"}}
	b := domain.Article{ID: "b", Title: "nothing in common", Keywords: []string{"ai", "Research", "labs"}}
	assert.InDelta(t, 2.0/3.0, e.Similarity(a, b), 1e-9)

	c := domain.Article{ID: "c", Title: "AI research"}
	assert.Equal(t, 0.0, e.Similarity(a, c), "no keywords means empty set")
	assert.Equal(t, 0.0, New(Config{}).Similarity(a, domain.Article{ID: "d", Keywords: []string{"ai", "research"}}),
		"text mode ignores keywords")
}

func TestEngine_FindDuplicates(t *testing.T) {
	t.Run("reordered title reported", func(t *testing.T) {
		articles := []domain.Article{
			{ID: "1", Title: "AI breakthrough in research"},
			{ID: "2", Title: "Breakthrough in AI research"},
		}
		pairs, err := New(Config{}).FindDuplicates(articles, 0.8)
		require.NoError(t, err)
		assert.Equal(t, []domain.DuplicatePair{{IDA: "1", IDB: "2", Score: 1}}, pairs)
	})

	t.Run("disjoint never reported above zero", func(t *testing.T) {
		articles := []domain.Article{
			{ID: "1", Title: "Stock market crashes"},
			{ID: "2", Title: "Local bakery wins award"},
		}
		for _, th := range []float64{0.01, 0.5, 1} {
			pairs, err := New(Config{}).FindDuplicates(articles, th)
			require.NoError(t, err)
			assert.Empty(t, pairs, "threshold %v", th)
		}
		pairs, err := New(Config{}).FindDuplicates(articles, 0)
		require.NoError(t, err)
		assert.Len(t, pairs, 1, "zero threshold matches everything")
	})

	t.Run("chain is not closed transitively", func(t *testing.T) {
		pairs, err := New(Config{}).FindDuplicates(chainArticles(), 0.6)
		require.NoError(t, err)
		require.Len(t, pairs, 2)
		assert.Equal(t, "A", pairs[0].IDA)
		assert.Equal(t, "B", pairs[0].IDB)
		assert.Equal(t, "B", pairs[1].IDA)
		assert.Equal(t, "C", pairs[1].IDB)
	})

	t.Run("ids ordered inside pair, pairs in scan order", func(t *testing.T) {
		articles := []domain.Article{
			{ID: "z", Title: "same words here"},
			{ID: "m", Title: "same words here"},
			{ID: "a", Title: "same words here"},
		}
		pairs, err := New(Config{}).FindDuplicates(articles, 1)
		require.NoError(t, err)
		assert.Equal(t, []domain.DuplicatePair{
			{IDA: "m", IDB: "z", Score: 1},
			{IDA: "a", IDB: "z", Score: 1},
			{IDA: "a", IDB: "m", Score: 1},
		}, pairs)
	})

	t.Run("invalid threshold", func(t *testing.T) {
		_, err := New(Config{}).FindDuplicates(nil, 1.5)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		_, err = New(Config{}).FindDuplicates(nil, -0.1)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("empty and single input", func(t *testing.T) {
		pairs, err := New(Config{Workers: 4}).FindDuplicates(nil, 0.5)
		require.NoError(t, err)
		assert.Empty(t, pairs)
		pairs, err = New(Config{Workers: 4}).FindDuplicates([]domain.Article{{ID: "1", Title: "x"}}, 0)
		require.NoError(t, err)
		assert.Empty(t, pairs)
	})

	t.Run("input not modified", func(t *testing.T) {
		articles := []domain.Article{{ID: "1", Title: "A b"}, {ID: "2", Title: "a B"}}
		before := []domain.Article{articles[0].Clone(), articles[1].Clone()}
		_, err := New(Config{Workers: 2}).FindDuplicates(articles, 0.5)
		require.NoError(t, err)
		assert.Equal(t, before, articles)
	})
}

func TestEngine_FindDuplicatesParallelMatchesSequential(t *testing.T) {
	articles := randomArticles(rand.New(rand.NewPCG(1, 2)), 120)
	seq, err := New(Config{Workers: 1}).FindDuplicates(articles, 0.3)
	require.NoError(t, err)
	require.NotEmpty(t, seq)

	for _, workers := range []int{2, 3, 8, 200} {
		par, err := New(Config{Workers: workers}).FindDuplicates(articles, 0.3)
		require.NoError(t, err)
		assert.Equal(t, seq, par, "workers %d", workers)
	}
}

func TestEngine_FindDuplicatesThresholdMonotonic(t *testing.T) {
	articles := randomArticles(rand.New(rand.NewPCG(3, 4)), 60)
	e := New(Config{Workers: 4})
	prev := -1
	for step := 0; step <= 20; step++ {
		pairs, err := e.FindDuplicates(articles, float64(step)/20)
		require.NoError(t, err)
		if prev >= 0 {
			assert.LessOrEqual(t, len(pairs), prev, "threshold %v", float64(step)/20)
		}
		prev = len(pairs)
	}
}

// chainArticles returns A~B and B~C with A≁C at threshold 0.6: J(A,B)=J(B,C)=4/6, J(A,C)=2/6
func chainArticles() []domain.Article {
	return []domain.Article{
		{ID: "A", Title: "w1 w2 w3 w4"},
		{ID: "B", Title: "w1 w2 w3 w4 w5 w6"},
		{ID: "C", Title: "w3 w4 w5 w6"},
	}
}

func randomArticles(rnd *rand.Rand, n int) []domain.Article {
	res := make([]domain.Article, n)
	for i := range n {
		title := ""
		for range 2 + rnd.IntN(5) {
			title += fmt.Sprintf("t%d ", rnd.IntN(12))
		}
		res[i] = domain.Article{ID: fmt.Sprintf("id-%03d", i), Title: title, Source: "src"}
	}
	return res
}
