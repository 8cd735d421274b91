package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tbl := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"whitespace only", " \t\n  ", []string{}},
		{"lower-cased", "AI Breakthrough", []string{"ai", "breakthrough"}},
		{"duplicates collapse", "go Go GO gopher", []string{"go", "gopher"}},
		{"mixed whitespace", "one\ttwo\nthree  four", []string{"four", "one", "three", "two"}},
		{"punctuation kept", "Hello, world!", []string{"hello,", "world!"}},
		{"unicode lower", "ÜBER Straße", []string{"straße", "über"}},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text).Sorted())
		})
	}
}

func TestTokenizer_StripPunct(t *testing.T) {
	tok := Tokenizer{StripPunct: true}
	assert.Equal(t, []string{"hello", "world"}, tok.Tokenize("Hello, world!").Sorted())
	assert.Equal(t, []string{"don't", "panic"}, tok.Tokenize("\"Don't panic.\"").Sorted())
	assert.Equal(t, []string{"ok"}, tok.Tokenize("-- ok ...").Sorted(), "punctuation only words dropped")
	assert.Empty(t, tok.Tokenize("!!! ?"))
}

func TestTokenSet(t *testing.T) {
	s := newTokenSet("b", "a", "b")
	assert.Len(t, s, 2)
	assert.Contains(t, s, "a")
	assert.NotContains(t, s, "c")
	assert.Equal(t, []string{"a", "b"}, s.Sorted())
}

// newTokenSet makes a set from the given tokens as is
func newTokenSet(tokens ...string) TokenSet {
	res := make(TokenSet, len(tokens))
	for _, t := range tokens {
		res[t] = struct{}{}
	}
	return res
}
