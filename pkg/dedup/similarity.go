package dedup

import (
	"fmt"
	"math"
	"strings"

	"github.com/umputun/newsdedup/pkg/domain"
)

// Jaccard returns |a ∩ b| / |a ∪ b|.
// Empty sets carry no information, so the result is 0 if either set is empty, including both.
func Jaccard(a, b TokenSet) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a // iterate over the smaller set
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// ValidateThreshold checks threshold is within [0,1]
func ValidateThreshold(threshold float64) error {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return fmt.Errorf("threshold %v out of [0,1]: %w", threshold, domain.ErrInvalidArgument)
	}
	return nil
}

// KeywordSet normalizes explicit keywords into a token set, keywords are trimmed and lower-cased
func KeywordSet(keywords []string) TokenSet {
	res := make(TokenSet, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		res[k] = struct{}{}
	}
	return res
}
