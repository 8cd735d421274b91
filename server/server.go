package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/newsdedup/pkg/dedup"
	"github.com/umputun/newsdedup/pkg/domain"
	"github.com/umputun/newsdedup/pkg/search"
	"github.com/umputun/newsdedup/pkg/service"
	"github.com/umputun/newsdedup/pkg/stats"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/collection.go -pkg mocks -skip-ensure -fmt goimports . Collection

// Server represents HTTP server instance
type Server struct {
	config     ConfigProvider
	collection Collection
	version    string
	debug      bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Collection is the article collection served by the API
type Collection interface {
	Get(id string) (domain.Article, error)
	List() []domain.Article
	Favorites() []domain.Article
	Add(ctx context.Context, a domain.Article) error
	ToggleFavorite(ctx context.Context, id string) (bool, error)
	Duplicates(threshold float64, mode domain.SimilarityMode) ([]domain.DuplicatePair, error)
	Dedup(ctx context.Context, threshold float64, dryRun bool) (dedup.ReduceResult, error)
	Search(query string, limit int) ([]search.Result, error)
	Stats() stats.Summary
	Info(ctx context.Context) (service.Info, error)
	Ping(ctx context.Context) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetDedupThreshold() float64
}

// New initializes a new server instance
func New(cfg ConfigProvider, collection Collection, version string, debug bool) *Server {
	s := &Server{
		config:     cfg,
		collection: collection,
		version:    version,
		debug:      debug,
		router:     routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsdedup", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /articles", s.listArticlesHandler)
		r.HandleFunc("POST /articles", s.createArticleHandler)
		r.HandleFunc("GET /articles/{id}", s.getArticleHandler)
		r.HandleFunc("POST /articles/{id}/favorite", s.favoriteHandler)
		r.HandleFunc("GET /favorites", s.favoritesHandler)
		r.HandleFunc("GET /duplicates", s.duplicatesHandler)
		r.HandleFunc("POST /dedup", s.dedupHandler)
		r.HandleFunc("GET /search", s.searchHandler)
		r.HandleFunc("GET /stats", s.statsHandler)
	})
}
