package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDuplicatePair(t *testing.T) {
	p := NewDuplicatePair("b", "a", 0.5)
	assert.Equal(t, DuplicatePair{IDA: "a", IDB: "b", Score: 0.5}, p)

	p = NewDuplicatePair("a", "b", 1)
	assert.Equal(t, "a", p.IDA)
	assert.Equal(t, "b", p.IDB)
}

func TestParseMode(t *testing.T) {
	tbl := []struct {
		in   string
		want SimilarityMode
		err  bool
	}{
		{"", ModeText, false},
		{"text", ModeText, false},
		{"keywords", ModeKeywords, false},
		{"semantic", "", true},
	}
	for _, tt := range tbl {
		t.Run(tt.in, func(t *testing.T) {
			m, err := ParseMode(tt.in)
			if tt.err {
				require.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
		})
	}
}

func TestArticle_BodyAndClone(t *testing.T) {
	a := Article{ID: "1", Content: "content text", Keywords: []string{"go"}}
	assert.Equal(t, "content text", a.Body())
	a.Description = "desc"
	assert.Equal(t, "desc", a.Body())

	c := a.Clone()
	c.Keywords[0] = "rust"
	assert.Equal(t, "go", a.Keywords[0], "clone must not share keywords")
}
