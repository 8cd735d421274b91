// Package search ranks articles against a free text query.
package search

import (
	"cmp"
	"slices"
	"strings"

	"github.com/umputun/newsdedup/pkg/domain"
)

// score weights
const (
	titleWeight       = 10.0
	titlePrefixWeight = 5.0
	bodyWeight        = 3.0
	categoryWeight    = 5.0
)

// Result is a matched article with its relevance score
type Result struct {
	Article domain.Article `json:"article"`
	Score   float64        `json:"score"`
}

// Score returns relevance of the article for the query, 0 means no match.
// Every query term found in the title adds 10 and 5 more if the title starts with it, every term found
// in the body adds 3, and the whole query equal to the category adds 5. Matching is case-insensitive
// substring matching.
func Score(query string, a domain.Article) float64 {
	query = strings.ToLower(strings.TrimSpace(query))
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return 0
	}

	title := strings.ToLower(a.Title)
	body := strings.ToLower(a.Body())
	var res float64
	for _, term := range terms {
		if strings.Contains(title, term) {
			res += titleWeight
			if strings.HasPrefix(title, term) {
				res += titlePrefixWeight
			}
		}
		if strings.Contains(body, term) {
			res += bodyWeight
		}
	}
	if a.Category != "" && query == strings.ToLower(a.Category) {
		res += categoryWeight
	}
	return res
}

// Search returns articles matching the query, best first, equal scores keep collection order.
// The limit caps the number of results, 0 or less returns all matches.
func Search(articles []domain.Article, query string, limit int) []Result {
	res := []Result{}
	for _, a := range articles {
		if s := Score(query, a); s > 0 {
			res = append(res, Result{Article: a, Score: s})
		}
	}
	slices.SortStableFunc(res, func(a, b Result) int { return cmp.Compare(b.Score, a.Score) })
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res
}
