package dedup

import (
	"github.com/umputun/newsdedup/pkg/domain"
)

// Drop describes an article removed by Reduce and the kept article it matched
type Drop struct {
	ID     string  `json:"id"`
	KeptID string  `json:"kept_id"`
	Score  float64 `json:"score"`
}

// ReduceResult is the outcome of Reduce, len(Unique)+Removed equals the input size
type ReduceResult struct {
	Unique  []domain.Article `json:"unique"`
	Removed int              `json:"removed"`
	Drops   []Drop           `json:"drops,omitempty"`
}

// Reduce removes near-duplicates keeping the first seen article.
// Articles are processed in input order, each one is compared with all articles kept so far and dropped
// on the first match with similarity >= threshold. This is order dependent and not transitive: with
// A~B, B~C and A≁C the result for [A,B,C] is [A,C].
func (e *Engine) Reduce(articles []domain.Article, threshold float64) (ReduceResult, error) {
	if err := ValidateThreshold(threshold); err != nil {
		return ReduceResult{}, err
	}

	res := ReduceResult{Unique: make([]domain.Article, 0, len(articles))}
	kept := make([]TokenSet, 0, len(articles))
	for _, a := range articles {
		tokens := e.Tokens(a)
		dropped := false
		for k, kt := range kept {
			if s := e.score(tokens, kt); s >= threshold {
				res.Removed++
				res.Drops = append(res.Drops, Drop{ID: a.ID, KeptID: res.Unique[k].ID, Score: s})
				dropped = true
				break
			}
		}
		if !dropped {
			res.Unique = append(res.Unique, a)
			kept = append(kept, tokens)
		}
	}
	return res, nil
}
