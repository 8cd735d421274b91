// Package stats computes grouped counts over article collections.
package stats

import (
	"cmp"
	"slices"

	"github.com/umputun/newsdedup/pkg/domain"
)

// Summary is an aggregated view of a collection
type Summary struct {
	Total      int            `json:"total"`
	Favorites  int            `json:"favorites"`
	BySource   map[string]int `json:"by_source"`
	ByCategory map[string]int `json:"by_category"`
}

// CountBy counts articles per key, empty keys form their own group
func CountBy(articles []domain.Article, keyFn func(domain.Article) string) map[string]int {
	res := make(map[string]int)
	for _, a := range articles {
		res[keyFn(a)]++
	}
	return res
}

// BySource counts articles per source
func BySource(articles []domain.Article) map[string]int {
	return CountBy(articles, func(a domain.Article) string { return a.Source })
}

// ByCategory counts articles per category
func ByCategory(articles []domain.Article) map[string]int {
	return CountBy(articles, func(a domain.Article) string { return a.Category })
}

// Summarize builds the summary of the collection
func Summarize(articles []domain.Article) Summary {
	res := Summary{Total: len(articles), BySource: BySource(articles), ByCategory: ByCategory(articles)}
	for _, a := range articles {
		if a.IsFavorite {
			res.Favorites++
		}
	}
	return res
}

// SortedKeys returns keys of counts ordered by count desc, then by key
func SortedKeys(counts map[string]int) []string {
	res := make([]string, 0, len(counts))
	for k := range counts {
		res = append(res, k)
	}
	slices.SortFunc(res, func(a, b string) int {
		if counts[a] != counts[b] {
			return counts[b] - counts[a]
		}
		return cmp.Compare(a, b)
	})
	return res
}
