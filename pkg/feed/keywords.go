package feed

import (
	"slices"
	"strings"
	"unicode"
)

// stopWords are skipped by ExtractKeywords, words of 3 runes or less are skipped anyway
var stopWords = map[string]struct{}{
	"with": {}, "from": {}, "this": {}, "that": {}, "have": {}, "been": {}, "will": {}, "were": {},
	"they": {}, "their": {}, "there": {}, "said": {}, "into": {}, "over": {}, "after": {}, "about": {},
	"more": {}, "than": {}, "what": {}, "when": {}, "which": {}, "would": {}, "could": {}, "also": {},
}

// ExtractKeywords returns up to limit most frequent words of the text.
// Text is lower-cased and split on anything but letters and digits, short and stop words are dropped.
// Words with equal frequency keep the order of their first appearance.
func ExtractKeywords(text string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	counts := map[string]int{}
	var order []string
	for _, w := range words {
		if len([]rune(w)) <= 3 {
			continue
		}
		if _, ok := stopWords[w]; ok {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	slices.SortStableFunc(order, func(a, b string) int { return counts[b] - counts[a] })
	if len(order) > limit {
		order = order[:limit]
	}
	return order
}
