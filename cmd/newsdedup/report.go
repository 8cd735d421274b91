package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/umputun/newsdedup/pkg/dedup"
	"github.com/umputun/newsdedup/pkg/domain"
	"github.com/umputun/newsdedup/pkg/search"
	"github.com/umputun/newsdedup/pkg/stats"
)

// articleListKeys are object keys holding the article list in an import file, checked in order
var articleListKeys = []string{"articles", "news"}

// readArticles loads articles from a JSON file holding either a list or an object with "articles" or
// "news" list. An object with neither key is an error.
func readArticles(path string) ([]domain.Article, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	data = bytes.TrimSpace(data)

	var articles []domain.Article
	if bytes.HasPrefix(data, []byte("[")) {
		if err := json.Unmarshal(data, &articles); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return articles, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for _, key := range articleListKeys {
		raw, ok := wrapped[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &articles); err != nil {
			return nil, fmt.Errorf("failed to parse %q list in %s: %w", key, path, err)
		}
		return articles, nil
	}
	return nil, fmt.Errorf("no article list in %s, expected a JSON list or an object with %q or %q key: %w",
		path, articleListKeys[0], articleListKeys[1], domain.ErrInvalidArgument)
}

// writePairs prints up to limit pairs, limit 0 prints all
func writePairs(w io.Writer, pairs []domain.DuplicatePair, threshold float64, limit int) {
	if len(pairs) == 0 {
		fmt.Fprintf(w, "No duplicates found (threshold: %g)\n", threshold)
		return
	}
	fmt.Fprintf(w, "Found %d duplicate pairs:\n\n", len(pairs))
	shown := pairs
	if limit > 0 && len(pairs) > limit {
		shown = pairs[:limit]
	}
	for _, p := range shown {
		fmt.Fprintf(w, "[%.0f%%] %s ~= %s\n", p.Score*100, p.IDA, p.IDB)
	}
	if len(shown) < len(pairs) {
		fmt.Fprintf(w, "\n... and %d more\n", len(pairs)-len(shown))
	}
}

// writeDedup prints removed articles with the kept ones they matched
func writeDedup(w io.Writer, res dedup.ReduceResult, dryRun bool) {
	verb := "Removed"
	if dryRun {
		verb = "Would remove"
	}
	fmt.Fprintf(w, "%s %d duplicate articles, %d remain\n", verb, res.Removed, len(res.Unique))
	for _, d := range res.Drops {
		fmt.Fprintf(w, "  [%.0f%%] %s duplicates %s\n", d.Score*100, d.ID, d.KeptID)
	}
}

// writeSearch prints ranked results with a shortened description
func writeSearch(w io.Writer, query string, results []search.Result) {
	if len(results) == 0 {
		fmt.Fprintf(w, "No results found for '%s'\n", query)
		return
	}
	for i, r := range results {
		a := r.Article
		fmt.Fprintf(w, "%d. [%s] %s\n", i+1, a.Category, a.Title)
		fmt.Fprintf(w, "   Score: %.1f | Source: %s\n", r.Score, a.Source)
		if a.Link != "" {
			fmt.Fprintf(w, "   Link: %s\n", a.Link)
		}
		if desc := a.Body(); desc != "" {
			if runes := []rune(desc); len(runes) > 150 {
				desc = string(runes[:150]) + "..."
			}
			fmt.Fprintf(w, "   %s\n", desc)
		}
		fmt.Fprintln(w)
	}
}

// writeStats prints totals and grouped counts, largest groups first
func writeStats(w io.Writer, s stats.Summary) {
	fmt.Fprintln(w, "=== Statistics ===")
	fmt.Fprintf(w, "Total articles: %d\n", s.Total)
	fmt.Fprintf(w, "Favorites: %d\n", s.Favorites)
	writeGroup(w, "By Source", s.BySource)
	writeGroup(w, "By Category", s.ByCategory)
}

func writeGroup(w io.Writer, title string, counts map[string]int) {
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, k := range stats.SortedKeys(counts) {
		name := k
		if name == "" {
			name = "(none)"
		}
		fmt.Fprintf(w, "  %s: %d\n", name, counts[k])
	}
}

// writeFavorites prints favorite articles
func writeFavorites(w io.Writer, articles []domain.Article) {
	fmt.Fprintf(w, "=== Favorites (%d) ===\n", len(articles))
	for _, a := range articles {
		if a.Link != "" {
			fmt.Fprintf(w, "%s  %s  %s\n", a.ID, a.Title, a.Link)
			continue
		}
		fmt.Fprintf(w, "%s  %s\n", a.ID, a.Title)
	}
}
