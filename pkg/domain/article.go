package domain

import (
	"errors"
	"fmt"
	"time"
)

// error kinds returned by the engine and the collection store
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDuplicateID     = errors.New("duplicate id")
	ErrNotFound        = errors.New("not found")
)

// Article represents a single news record collected from a feed
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Link        string    `json:"link,omitempty"`
	Description string    `json:"description,omitempty"`
	Content     string    `json:"content,omitempty"`
	Source      string    `json:"source"`
	Category    string    `json:"category"`
	Keywords    []string  `json:"keywords,omitempty"`
	IsFavorite  bool      `json:"is_favorite"`
	SavedAt     time.Time `json:"saved_at,omitzero"`
	Published   time.Time `json:"published,omitzero"`
}

// Body returns the text used as article body, description preferred over content
func (a Article) Body() string {
	if a.Description != "" {
		return a.Description
	}
	return a.Content
}

// Clone returns a copy of the article not sharing the keywords slice
func (a Article) Clone() Article {
	if a.Keywords != nil {
		a.Keywords = append([]string(nil), a.Keywords...)
	}
	return a
}

// DuplicatePair is a pair of near-duplicate articles, IDA < IDB
type DuplicatePair struct {
	IDA   string  `json:"id_a"`
	IDB   string  `json:"id_b"`
	Score float64 `json:"score"`
}

// NewDuplicatePair makes a pair with ids in stable order
func NewDuplicatePair(id1, id2 string, score float64) DuplicatePair {
	if id2 < id1 {
		id1, id2 = id2, id1
	}
	return DuplicatePair{IDA: id1, IDB: id2, Score: score}
}

// SimilarityMode defines which article fields are compared
type SimilarityMode string

const (
	ModeText     SimilarityMode = "text"
	ModeKeywords SimilarityMode = "keywords"
)

// ParseMode converts a string to SimilarityMode, empty string means ModeText
func ParseMode(s string) (SimilarityMode, error) {
	switch SimilarityMode(s) {
	case "", ModeText:
		return ModeText, nil
	case ModeKeywords:
		return ModeKeywords, nil
	default:
		return "", fmt.Errorf("unknown similarity mode %q: %w", s, ErrInvalidArgument)
	}
}
