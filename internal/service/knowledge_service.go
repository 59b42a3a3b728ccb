package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// KnowledgeService serves the knowledge base. Customers only see published
// articles; staff see everything and author new entries.
type KnowledgeService struct {
	articles repository.KnowledgeRepository
}

// NewKnowledgeService constructs the service.
func NewKnowledgeService(articles repository.KnowledgeRepository) *KnowledgeService {
	return &KnowledgeService{articles: articles}
}

// ArticleInput describes article creation/update payload.
type ArticleInput struct {
	CategoryID *string
	Title      string
	Body       string
	Published  bool
}

// CreateArticle authors a new article. Staff only.
func (s *KnowledgeService) CreateArticle(ctx context.Context, actor *domain.User, input ArticleInput) (*domain.Article, error) {
	if actor == nil || !actor.Role.IsStaff() {
		return nil, apperrors.NewForbidden("staff role required")
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}
	article := &domain.Article{
		CategoryID: input.CategoryID,
		AuthorID:   actor.ID,
		Title:      title,
		Body:       strings.TrimSpace(input.Body),
		Published:  input.Published,
	}
	if err := s.articles.CreateArticle(ctx, article); err != nil {
		return nil, apperrors.MapError(err)
	}
	return article, nil
}

// UpdateArticle edits an article. Staff only.
func (s *KnowledgeService) UpdateArticle(ctx context.Context, actor *domain.User, id string, input ArticleInput) (*domain.Article, error) {
	if actor == nil || !actor.Role.IsStaff() {
		return nil, apperrors.NewForbidden("staff role required")
	}
	article, err := s.articles.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("article", map[string]any{"article_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}
	article.CategoryID = input.CategoryID
	article.Title = title
	article.Body = strings.TrimSpace(input.Body)
	article.Published = input.Published
	if err := s.articles.UpdateArticle(ctx, article); err != nil {
		return nil, apperrors.MapError(err)
	}
	return article, nil
}

// GetArticle fetches one article; unpublished drafts are staff only.
func (s *KnowledgeService) GetArticle(ctx context.Context, actor *domain.User, id string) (*domain.Article, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	article, err := s.articles.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("article", map[string]any{"article_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	if !article.Published && !actor.Role.IsStaff() {
		return nil, apperrors.NewNotFound("article", map[string]any{"article_id": id})
	}
	return article, nil
}

// ListArticles searches articles; customers only see published ones.
func (s *KnowledgeService) ListArticles(ctx context.Context, actor *domain.User, search string, limit, offset int) ([]domain.Article, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	articles, err := s.articles.ListArticles(ctx, optional(search), !actor.Role.IsStaff(), limit, offset)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return articles, nil
}

// ListCategories returns knowledge base categories.
func (s *KnowledgeService) ListCategories(ctx context.Context) ([]domain.ArticleCategory, error) {
	categories, err := s.articles.ListCategories(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return categories, nil
}
