package dedup

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdedup/pkg/domain"
)

func TestJaccard(t *testing.T) {
	tbl := []struct {
		name string
		a, b TokenSet
		want float64
	}{
		{"both empty", newTokenSet(), newTokenSet(), 0},
		{"nil sets", nil, nil, 0},
		{"left empty", newTokenSet(), newTokenSet("x"), 0},
		{"right empty", newTokenSet("x"), newTokenSet(), 0},
		{"identical", newTokenSet("a", "b"), newTokenSet("b", "a"), 1},
		{"disjoint", newTokenSet("a", "b"), newTokenSet("c", "d"), 0},
		{"half", newTokenSet("a", "b", "c"), newTokenSet("b", "c", "d"), 0.5},
		{"subset", newTokenSet("a", "b", "c", "d"), newTokenSet("a"), 0.25},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Jaccard(tt.a, tt.b), 1e-9)
		})
	}
}

func randomSet(rnd *rand.Rand) TokenSet {
	n := rnd.IntN(8)
	res := newTokenSet()
	for range n {
		res[fmt.Sprintf("w%d", rnd.IntN(10))] = struct{}{}
	}
	return res
}

func TestJaccard_Properties(t *testing.T) {
	rnd := rand.New(rand.NewPCG(42, 7))
	for i := range 500 {
		a, b := randomSet(rnd), randomSet(rnd)

		ab, ba := Jaccard(a, b), Jaccard(b, a)
		assert.Equal(t, ab, ba, "symmetry, iteration %d", i)
		assert.GreaterOrEqual(t, ab, 0.0)
		assert.LessOrEqual(t, ab, 1.0)
		if len(a) > 0 {
			assert.Equal(t, 1.0, Jaccard(a, a), "self similarity of %v", a.Sorted())
		}
	}
}

func TestValidateThreshold(t *testing.T) {
	for _, th := range []float64{0, 0.5, 0.8, 1} {
		assert.NoError(t, ValidateThreshold(th))
	}
	for _, th := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		err := ValidateThreshold(th)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	}
}

func TestKeywordSet(t *testing.T) {
	s := KeywordSet([]string{" AI ", "ai", "", "Research", "  "})
	assert.Equal(t, []string{"ai", "research"}, s.Sorted())
	assert.Empty(t, KeywordSet(nil))
}
