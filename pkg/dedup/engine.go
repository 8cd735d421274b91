package dedup

import (
	"cmp"
	"slices"
	"sync"

	"github.com/umputun/newsdedup/pkg/domain"
)

// Engine finds and reduces near-duplicate articles.
// It keeps no state between calls and is safe for concurrent use.
type Engine struct {
	tokenizer Tokenizer
	mode      domain.SimilarityMode
	workers   int
	score     func(a, b TokenSet) float64
}

// Config defines engine parameters
type Config struct {
	Mode       domain.SimilarityMode // text (default) or keywords
	Workers    int                   // goroutines used by FindDuplicates, 1 or less means sequential scan
	StripPunct bool                  // trim punctuation around words in text mode
}

// New makes an engine with the given config
func New(cfg Config) *Engine {
	if cfg.Mode == "" {
		cfg.Mode = domain.ModeText
	}
	return &Engine{
		tokenizer: Tokenizer{StripPunct: cfg.StripPunct},
		mode:      cfg.Mode,
		workers:   cfg.Workers,
		score:     Jaccard,
	}
}

// Mode returns similarity mode used by the engine
func (e *Engine) Mode() domain.SimilarityMode {
	return e.mode
}

// Tokens returns the token set of the article for the engine's mode.
// Text mode uses title together with the body, keywords mode uses explicit keywords only.
func (e *Engine) Tokens(a domain.Article) TokenSet {
	if e.mode == domain.ModeKeywords {
		return KeywordSet(a.Keywords)
	}
	return e.tokenizer.Tokenize(a.Title + " " + a.Body())
}

// Similarity returns similarity score of two articles in [0,1]
func (e *Engine) Similarity(a, b domain.Article) float64 {
	return e.score(e.Tokens(a), e.Tokens(b))
}

// indexedPair is a matched pair with positions in the input, used to restore scan order
type indexedPair struct {
	i, j  int
	score float64
}

// FindDuplicates reports every pair of articles with similarity >= threshold.
// Pairs come in scan order, ascending first index then ascending second index, regardless of the
// number of workers. The input is not modified.
func (e *Engine) FindDuplicates(articles []domain.Article, threshold float64) ([]domain.DuplicatePair, error) {
	if err := ValidateThreshold(threshold); err != nil {
		return nil, err
	}

	tokens := make([]TokenSet, len(articles))
	for i, a := range articles {
		tokens[i] = e.Tokens(a)
	}

	workers := min(e.workers, len(articles))
	var matched []indexedPair
	if workers <= 1 {
		matched = e.scan(tokens, threshold, 0, 1)
	} else {
		// rows are interleaved between workers, row i has len-i-1 comparisons
		parts := make([][]indexedPair, workers)
		var wg sync.WaitGroup
		for w := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				parts[w] = e.scan(tokens, threshold, w, workers)
			}()
		}
		wg.Wait()
		matched = slices.Concat(parts...)
		slices.SortFunc(matched, func(a, b indexedPair) int {
			if c := cmp.Compare(a.i, b.i); c != 0 {
				return c
			}
			return cmp.Compare(a.j, b.j)
		})
	}

	res := make([]domain.DuplicatePair, 0, len(matched))
	for _, m := range matched {
		res = append(res, domain.NewDuplicatePair(articles[m.i].ID, articles[m.j].ID, m.score))
	}
	return res, nil
}

// scan compares rows start, start+step, ... against all following rows
func (e *Engine) scan(tokens []TokenSet, threshold float64, start, step int) []indexedPair {
	var res []indexedPair
	for i := start; i < len(tokens); i += step {
		for j := i + 1; j < len(tokens); j++ {
			if s := e.score(tokens[i], tokens[j]); s >= threshold {
				res = append(res, indexedPair{i: i, j: j, score: s})
			}
		}
	}
	return res
}
