package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/newsdedup/pkg/dedup"
	"github.com/umputun/newsdedup/pkg/domain"
	"github.com/umputun/newsdedup/pkg/search"
)

const defaultSearchLimit = 20

// duplicatesResponse is the body of GET /duplicates
type duplicatesResponse struct {
	Threshold float64                `json:"threshold"`
	Mode      domain.SimilarityMode  `json:"mode,omitempty"`
	Count     int                    `json:"count"`
	Pairs     []domain.DuplicatePair `json:"pairs"`
}

// dedupResponse is the body of POST /dedup
type dedupResponse struct {
	Threshold float64      `json:"threshold"`
	DryRun    bool         `json:"dry_run"`
	Removed   int          `json:"removed"`
	Remaining int          `json:"remaining"`
	Drops     []dedup.Drop `json:"drops"`
}

// searchResponse is the body of GET /search
type searchResponse struct {
	Query   string          `json:"query"`
	Count   int             `json:"count"`
	Results []search.Result `json:"results"`
}

// statusHandler returns server status with collection state, 503 if the database is unreachable
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.collection.Ping(r.Context()); err != nil {
		log.Printf("[WARN] status check failed: %v", err)
		renderError(w, r, err, http.StatusServiceUnavailable)
		return
	}
	info, err := s.collection.Info(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get collection info: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	status := map[string]any{
		"status":     "ok",
		"version":    s.version,
		"time":       time.Now().UTC(),
		"collection": info,
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listArticlesHandler returns all articles in insertion order
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.collection.List())
}

// getArticleHandler returns a single article
func (s *Server) getArticleHandler(w http.ResponseWriter, r *http.Request) {
	article, err := s.collection.Get(r.PathValue("id"))
	if err != nil {
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, article)
}

// createArticleHandler adds an article posted as JSON
func (s *Server) createArticleHandler(w http.ResponseWriter, r *http.Request) {
	var article domain.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	article.IsFavorite = false // favorite flag is changed by toggle only

	if err := s.collection.Add(r.Context(), article); err != nil {
		code := errorStatus(err)
		if code == http.StatusInternalServerError {
			log.Printf("[ERROR] failed to add article %s: %v", article.ID, err)
		}
		renderError(w, r, err, code)
		return
	}

	created, err := s.collection.Get(article.ID)
	if err != nil {
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusCreated, created)
}

// favoriteHandler toggles favorite flag of the article
func (s *Server) favoriteHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	fav, err := s.collection.ToggleFavorite(r.Context(), id)
	if err != nil {
		code := errorStatus(err)
		if code == http.StatusInternalServerError {
			log.Printf("[ERROR] failed to toggle favorite %s: %v", id, err)
		}
		renderError(w, r, err, code)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"id": id, "is_favorite": fav})
}

// favoritesHandler returns favorite articles
func (s *Server) favoritesHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.collection.Favorites())
}

// duplicatesHandler reports duplicate pairs for optional threshold and mode query params
func (s *Server) duplicatesHandler(w http.ResponseWriter, r *http.Request) {
	threshold, err := s.threshold(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	var mode domain.SimilarityMode // empty for configured mode
	if v := r.URL.Query().Get("mode"); v != "" {
		if mode, err = domain.ParseMode(v); err != nil {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
	}

	pairs, err := s.collection.Duplicates(threshold, mode)
	if err != nil {
		renderError(w, r, err, errorStatus(err))
		return
	}
	if pairs == nil {
		pairs = []domain.DuplicatePair{}
	}
	renderJSON(w, r, http.StatusOK, duplicatesResponse{Threshold: threshold, Mode: mode, Count: len(pairs), Pairs: pairs})
}

// dedupHandler reduces the collection, dry_run=true reports without removing
func (s *Server) dedupHandler(w http.ResponseWriter, r *http.Request) {
	threshold, err := s.threshold(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	dryRun := false
	if v := r.URL.Query().Get("dry_run"); v != "" {
		if dryRun, err = strconv.ParseBool(v); err != nil {
			renderError(w, r, fmt.Errorf("invalid dry_run %q: %w", v, domain.ErrInvalidArgument), http.StatusBadRequest)
			return
		}
	}

	res, err := s.collection.Dedup(r.Context(), threshold, dryRun)
	if err != nil {
		code := errorStatus(err)
		if code == http.StatusInternalServerError {
			log.Printf("[ERROR] dedup failed: %v", err)
		}
		renderError(w, r, err, code)
		return
	}
	drops := res.Drops
	if drops == nil {
		drops = []dedup.Drop{}
	}
	renderJSON(w, r, http.StatusOK, dedupResponse{
		Threshold: threshold,
		DryRun:    dryRun,
		Removed:   res.Removed,
		Remaining: len(res.Unique),
		Drops:     drops,
	})
}

// searchHandler ranks articles for q query param, limit defaults to 20 and 0 returns all matches
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit := defaultSearchLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			renderError(w, r, fmt.Errorf("invalid limit %q: %w", v, domain.ErrInvalidArgument), http.StatusBadRequest)
			return
		}
		limit = n
	}

	results, err := s.collection.Search(query, limit)
	if err != nil {
		renderError(w, r, err, errorStatus(err))
		return
	}
	if results == nil {
		results = []search.Result{}
	}
	renderJSON(w, r, http.StatusOK, searchResponse{Query: query, Count: len(results), Results: results})
}

// statsHandler returns collection statistics
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.collection.Stats())
}

// threshold reads threshold query param, configured default if not set
func (s *Server) threshold(r *http.Request) (float64, error) {
	v := r.URL.Query().Get("threshold")
	if v == "" {
		return s.config.GetDedupThreshold(), nil
	}
	threshold, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid threshold %q: %w", v, domain.ErrInvalidArgument)
	}
	if err := dedup.ValidateThreshold(threshold); err != nil {
		return 0, err
	}
	return threshold, nil
}

// errorStatus maps domain errors to HTTP status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateID):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
