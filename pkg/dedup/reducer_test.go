package dedup

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdedup/pkg/domain"
)

func TestEngine_Reduce(t *testing.T) {
	t.Run("first seen wins on a chain", func(t *testing.T) {
		res, err := New(Config{}).Reduce(chainArticles(), 0.6)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "C"}, ids(res.Unique))
		assert.Equal(t, 1, res.Removed)
		require.Len(t, res.Drops, 1)
		assert.Equal(t, "B", res.Drops[0].ID)
		assert.Equal(t, "A", res.Drops[0].KeptID)
		assert.InDelta(t, 4.0/6.0, res.Drops[0].Score, 1e-9)
	})

	t.Run("order matters", func(t *testing.T) {
		in := chainArticles()
		res, err := New(Config{}).Reduce([]domain.Article{in[1], in[0], in[2]}, 0.6)
		require.NoError(t, err)
		assert.Equal(t, []string{"B"}, ids(res.Unique))
		assert.Equal(t, 2, res.Removed)
	})

	t.Run("reordered title removed", func(t *testing.T) {
		res, err := New(Config{}).Reduce([]domain.Article{
			{ID: "1", Title: "AI breakthrough in research"},
			{ID: "2", Title: "Breakthrough in AI research"},
			{ID: "3", Title: "Local bakery wins award"},
		}, 0.8)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "3"}, ids(res.Unique))
		assert.Equal(t, 1, res.Removed)
	})

	t.Run("description compared, not only title", func(t *testing.T) {
		res, err := New(Config{}).Reduce([]domain.Article{
			{ID: "1", Title: "Breaking news", Description: "elections held in france today"},
			{ID: "2", Title: "Breaking news", Description: "storm hits the coast overnight"},
		}, 0.8)
		require.NoError(t, err)
		assert.Len(t, res.Unique, 2)
	})

	t.Run("empty articles all kept", func(t *testing.T) {
		res, err := New(Config{}).Reduce([]domain.Article{{ID: "1"}, {ID: "2"}, {ID: "3", Title: " "}}, 0.01)
		require.NoError(t, err)
		assert.Len(t, res.Unique, 3)
		assert.Zero(t, res.Removed)
	})

	t.Run("invalid threshold", func(t *testing.T) {
		_, err := New(Config{}).Reduce(nil, 2)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestEngine_ReduceWithScoreTable(t *testing.T) {
	// scores are looked up by article marker token: s(A,B)=0.9, s(B,C)=0.9, s(A,C)=0.3
	table := map[[2]string]float64{{"a", "b"}: 0.9, {"b", "c"}: 0.9, {"a", "c"}: 0.3}
	e := New(Config{})
	e.score = func(x, y TokenSet) float64 {
		kx, ky := x.Sorted()[0], y.Sorted()[0]
		if ky < kx {
			kx, ky = ky, kx
		}
		return table[[2]string{kx, ky}]
	}
	articles := []domain.Article{{ID: "A", Title: "a"}, {ID: "B", Title: "b"}, {ID: "C", Title: "c"}}

	pairs, err := e.FindDuplicates(articles, 0.8)
	require.NoError(t, err)
	assert.Equal(t, []domain.DuplicatePair{{IDA: "A", IDB: "B", Score: 0.9}, {IDA: "B", IDB: "C", Score: 0.9}}, pairs)

	res, err := e.Reduce(articles, 0.8)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, ids(res.Unique))
	assert.Equal(t, 1, res.Removed)
}

func TestEngine_ReduceProperties(t *testing.T) {
	rnd := rand.New(rand.NewPCG(5, 6))
	e := New(Config{})
	for round := range 30 {
		articles := randomArticles(rnd, 1+rnd.IntN(40))
		threshold := float64(rnd.IntN(11)) / 10

		res, err := e.Reduce(articles, threshold)
		require.NoError(t, err)
		assert.Equal(t, len(articles), len(res.Unique)+res.Removed, "conservation, round %d", round)
		assert.Len(t, res.Drops, res.Removed)

		again, err := e.Reduce(res.Unique, threshold)
		require.NoError(t, err)
		assert.Zero(t, again.Removed, "idempotence, round %d", round)
		assert.Equal(t, res.Unique, again.Unique)
	}
}

func ids(articles []domain.Article) []string {
	res := make([]string, len(articles))
	for i, a := range articles {
		res[i] = a.ID
	}
	return res
}
