package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsdedup/pkg/domain"
)

// ArticleRepository handles article persistence, articles keep their insertion order
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID          string      `db:"id"`
	Position    int64       `db:"position"`
	Title       string      `db:"title"`
	Link        string      `db:"link"`
	Description string      `db:"description"`
	Content     string      `db:"content"`
	Source      string      `db:"source"`
	Category    string      `db:"category"`
	Keywords    keywordsSQL `db:"keywords"`
	IsFavorite  bool        `db:"is_favorite"`
	SavedAt     *time.Time  `db:"saved_at"`
	Published   *time.Time  `db:"published"`
}

// keywordsSQL is a JSON array of keywords for SQL operations
type keywordsSQL []string

// Value implements driver.Valuer for database storage
func (k keywordsSQL) Value() (driver.Value, error) {
	if k == nil {
		return "[]", nil
	}
	data, err := json.Marshal(k)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (k *keywordsSQL) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*k = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported keywords type %T", value)
	}
	var res []string
	if err := json.Unmarshal(data, &res); err != nil {
		return fmt.Errorf("unmarshal keywords: %w", err)
	}
	if len(res) == 0 {
		res = nil
	}
	*k = res
	return nil
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// CreateArticle appends article after all existing ones, fails with domain.ErrDuplicateID if id exists
func (r *ArticleRepository) CreateArticle(ctx context.Context, a domain.Article) error {
	rec := toSQLArticle(a)
	query := `
		INSERT INTO articles (
			id, position, title, link, description, content,
			source, category, keywords, is_favorite, saved_at, published
		) VALUES (
			:id, (SELECT COALESCE(MAX(position), 0) + 1 FROM articles), :title, :link, :description, :content,
			:source, :category, :keywords, :is_favorite, :saved_at, :published
		)
	`
	return newRetrier().Do(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, query, rec)
		switch {
		case err == nil:
			return nil
		case isLockError(err):
			return err // retry
		case isUniqueError(err):
			return &criticalError{err: fmt.Errorf("create article %q: %w", a.ID, domain.ErrDuplicateID)}
		default:
			return &criticalError{err: fmt.Errorf("create article %q: %w", a.ID, err)}
		}
	}, errCritical)
}

// GetArticles retrieves all articles in insertion order
func (r *ArticleRepository) GetArticles(ctx context.Context) ([]domain.Article, error) {
	var recs []articleSQL
	if err := r.db.SelectContext(ctx, &recs, "SELECT * FROM articles ORDER BY position"); err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}
	res := make([]domain.Article, len(recs))
	for i := range recs {
		res[i] = recs[i].toDomain()
	}
	return res, nil
}

// ArticleExists checks if an article with the given id is stored
func (r *ArticleRepository) ArticleExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM articles WHERE id = ?)", id); err != nil {
		return false, fmt.Errorf("check article exists: %w", err)
	}
	return exists, nil
}

// UpdateFavorite sets favorite flag of the article
func (r *ArticleRepository) UpdateFavorite(ctx context.Context, id string, favorite bool) error {
	return newRetrier().Do(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "UPDATE articles SET is_favorite = ? WHERE id = ?", favorite, id)
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("update favorite %q: %w", id, err)}
		}
		n, err := res.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("update favorite %q rows: %w", id, err)}
		}
		if n == 0 {
			return &criticalError{err: fmt.Errorf("update favorite %q: %w", id, domain.ErrNotFound)}
		}
		return nil
	}, errCritical)
}

// DeleteArticles removes articles by ids in a single transaction and returns the number removed
func (r *ArticleRepository) DeleteArticles(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In("DELETE FROM articles WHERE id IN (?)", ids)
	if err != nil {
		return 0, fmt.Errorf("build delete query: %w", err)
	}

	var deleted int64
	err = newRetrier().Do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("begin transaction: %w", err)}
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		res, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("delete articles: %w", err)}
		}
		if deleted, err = res.RowsAffected(); err != nil {
			return &criticalError{err: fmt.Errorf("deleted rows: %w", err)}
		}
		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("commit delete: %w", err)}
		}
		return nil
	}, errCritical)
	return deleted, err
}

func toSQLArticle(a domain.Article) articleSQL {
	rec := articleSQL{
		ID:          a.ID,
		Title:       a.Title,
		Link:        a.Link,
		Description: a.Description,
		Content:     a.Content,
		Source:      a.Source,
		Category:    a.Category,
		Keywords:    keywordsSQL(a.Keywords),
		IsFavorite:  a.IsFavorite,
	}
	if !a.SavedAt.IsZero() {
		t := a.SavedAt.UTC()
		rec.SavedAt = &t
	}
	if !a.Published.IsZero() {
		t := a.Published.UTC()
		rec.Published = &t
	}
	return rec
}

// toDomain converts articleSQL to domain.Article
func (rec *articleSQL) toDomain() domain.Article {
	a := domain.Article{
		ID:          rec.ID,
		Title:       rec.Title,
		Link:        rec.Link,
		Description: rec.Description,
		Content:     rec.Content,
		Source:      rec.Source,
		Category:    rec.Category,
		Keywords:    []string(rec.Keywords),
		IsFavorite:  rec.IsFavorite,
	}
	if rec.SavedAt != nil {
		a.SavedAt = *rec.SavedAt
	}
	if rec.Published != nil {
		a.Published = *rec.Published
	}
	return a
}
