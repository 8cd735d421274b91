package store

import (
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdedup/pkg/domain"
)

func TestStore_Add(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	require.NoError(t, s.Add(domain.Article{ID: "1", Title: "first"}))
	require.NoError(t, s.Add(domain.Article{ID: "2", Title: "second"}))
	assert.Equal(t, 2, s.Len())

	err = s.Add(domain.Article{ID: "1", Title: "again"})
	require.ErrorIs(t, err, domain.ErrDuplicateID)
	assert.Equal(t, 2, s.Len())

	err = s.Add(domain.Article{Title: "no id"})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Title)
	assert.Equal(t, "second", list[1].Title)
}

func TestStore_Get(t *testing.T) {
	s, err := New(domain.Article{ID: "1", Title: "first", Keywords: []string{"go"}})
	require.NoError(t, err)

	a, err := s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "first", a.Title)

	a.Keywords[0] = "changed"
	a.Title = "changed"
	again, err := s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "first", again.Title, "store value not affected by caller")
	assert.Equal(t, []string{"go"}, again.Keywords)

	_, err = s.Get("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ToggleFavorite(t *testing.T) {
	s, err := New(domain.Article{ID: "1"}, domain.Article{ID: "2"}, domain.Article{ID: "3"})
	require.NoError(t, err)

	fav, err := s.ToggleFavorite("3")
	require.NoError(t, err)
	assert.True(t, fav)
	fav, err = s.ToggleFavorite("1")
	require.NoError(t, err)
	assert.True(t, fav)

	assert.Equal(t, []string{"1", "3"}, favoriteIDs(s), "favorites in insertion order")

	fav, err = s.ToggleFavorite("3")
	require.NoError(t, err)
	assert.False(t, fav)
	assert.Equal(t, []string{"1"}, favoriteIDs(s))

	_, err = s.ToggleFavorite("404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_FavoritesRestartable(t *testing.T) {
	s, err := New(domain.Article{ID: "1", IsFavorite: true}, domain.Article{ID: "2", IsFavorite: true})
	require.NoError(t, err)

	seq := s.Favorites()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)

	// early stop
	count := 0
	for range seq {
		count++
		break
	}
	assert.Equal(t, 1, count)

	empty, err := New()
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(empty.Favorites()))
}

func TestStore_Replace(t *testing.T) {
	s, err := New(domain.Article{ID: "1"}, domain.Article{ID: "2"})
	require.NoError(t, err)

	err = s.Replace([]domain.Article{{ID: "3"}, {ID: "3"}})
	require.ErrorIs(t, err, domain.ErrDuplicateID)
	assert.Equal(t, 2, s.Len(), "failed replace keeps collection")

	err = s.Replace([]domain.Article{{ID: "x"}, {}})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	require.NoError(t, s.Replace([]domain.Article{{ID: "2"}}))
	assert.Equal(t, 1, s.Len())
	_, err = s.Get("1")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, s.Add(domain.Article{ID: "1"}), "removed id can be added again")

	_, err = New(domain.Article{ID: "a"}, domain.Article{ID: "a"})
	require.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestStore_Concurrent(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("id-%d", i)
			assert.NoError(t, s.Add(domain.Article{ID: id}))
			_, err := s.ToggleFavorite(id)
			assert.NoError(t, err)
			_ = s.List()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
	assert.Len(t, slices.Collect(s.Favorites()), 50)
}

func favoriteIDs(s *Store) []string {
	var res []string
	for a := range s.Favorites() {
		res = append(res, a.ID)
	}
	return res
}
