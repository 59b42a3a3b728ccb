package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// KnowledgeRepository stores knowledge base articles and their categories.
type KnowledgeRepository interface {
	CreateArticle(ctx context.Context, article *domain.Article) error
	UpdateArticle(ctx context.Context, article *domain.Article) error
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	ListArticles(ctx context.Context, search *string, publishedOnly bool, limit, offset int) ([]domain.Article, error)
	ListCategories(ctx context.Context) ([]domain.ArticleCategory, error)
}

type knowledgeRepository struct {
	pool *pgxpool.Pool
}

// NewKnowledgeRepository builds repository.
func NewKnowledgeRepository(pool *pgxpool.Pool) KnowledgeRepository {
	return &knowledgeRepository{pool: pool}
}

const articleColumns = `id, category_id, author_id, title, body, published, created_at, updated_at`

func (r *knowledgeRepository) CreateArticle(ctx context.Context, article *domain.Article) error {
	const query = `
        INSERT INTO kb_articles (category_id, author_id, title, body, published)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		article.CategoryID,
		article.AuthorID,
		article.Title,
		article.Body,
		article.Published,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
}

func (r *knowledgeRepository) UpdateArticle(ctx context.Context, article *domain.Article) error {
	const query = `
        UPDATE kb_articles SET category_id=$1, title=$2, body=$3, published=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		article.CategoryID,
		article.Title,
		article.Body,
		article.Published,
		article.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *knowledgeRepository) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	var article domain.Article
	err := r.pool.QueryRow(ctx, `SELECT `+articleColumns+` FROM kb_articles WHERE id=$1`, id).Scan(
		&article.ID,
		&article.CategoryID,
		&article.AuthorID,
		&article.Title,
		&article.Body,
		&article.Published,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *knowledgeRepository) ListArticles(ctx context.Context, search *string, publishedOnly bool, limit, offset int) ([]domain.Article, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + articleColumns + ` FROM kb_articles WHERE 1=1`
	args := []any{}
	if publishedOnly {
		query += ` AND published=TRUE`
	}
	if search != nil && strings.TrimSpace(*search) != "" {
		args = append(args, "%"+strings.ToLower(strings.TrimSpace(*search))+"%")
		query += ` AND (LOWER(title) LIKE $1 OR LOWER(body) LIKE $1)`
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY updated_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Article
	for rows.Next() {
		var article domain.Article
		if err := rows.Scan(
			&article.ID,
			&article.CategoryID,
			&article.AuthorID,
			&article.Title,
			&article.Body,
			&article.Published,
			&article.CreatedAt,
			&article.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, article)
	}
	return result, rows.Err()
}

func (r *knowledgeRepository) ListCategories(ctx context.Context) ([]domain.ArticleCategory, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, created_at FROM kb_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ArticleCategory
	for rows.Next() {
		var c domain.ArticleCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}
