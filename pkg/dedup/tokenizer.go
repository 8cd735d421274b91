// Package dedup implements lexical near-duplicate detection for articles. Articles are turned into
// token sets, compared with the Jaccard coefficient and either reported pairwise or reduced greedily,
// first seen wins.
package dedup

import (
	"slices"
	"strings"
	"unicode"
)

// TokenSet is a set of distinct lower-cased tokens
type TokenSet map[string]struct{}

// Sorted returns tokens in ascending order
func (s TokenSet) Sorted() []string {
	res := make([]string, 0, len(s))
	for t := range s {
		res = append(res, t)
	}
	slices.Sort(res)
	return res
}

// Tokenizer splits free text into a token set.
// Words are split on whitespace and lower-cased, nothing else is normalized unless StripPunct is set,
// in which case leading and trailing punctuation is trimmed from every word and words made only of
// punctuation are dropped.
type Tokenizer struct {
	StripPunct bool
}

// Tokenize returns the set of distinct tokens of the text
func (t Tokenizer) Tokenize(text string) TokenSet {
	words := strings.Fields(text)
	res := make(TokenSet, len(words))
	for _, w := range words {
		w = strings.ToLower(w)
		if t.StripPunct {
			w = strings.TrimFunc(w, unicode.IsPunct)
			if w == "" {
				continue
			}
		}
		res[w] = struct{}{}
	}
	return res
}

// Tokenize splits text with the default whitespace-only tokenizer
func Tokenize(text string) TokenSet {
	return Tokenizer{}.Tokenize(text)
}
