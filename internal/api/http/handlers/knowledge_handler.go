package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// KnowledgeHandler serves knowledge base endpoints.
type KnowledgeHandler struct {
	service *service.KnowledgeService
}

// NewKnowledgeHandler constructs handler.
func NewKnowledgeHandler(knowledgeService *service.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{service: knowledgeService}
}

// ListArticles GET /knowledge/articles.
func (h *KnowledgeHandler) ListArticles(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 20)
	articles, err := h.service.ListArticles(c.Context(), principal.User, c.Query("search"), pageSize, (page-1)*pageSize)
	if err != nil {
		return err
	}
	items := make([]dto.ArticleResponse, 0, len(articles))
	for i := range articles {
		items = append(items, articleResponse(&articles[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetArticle GET /knowledge/articles/:id.
func (h *KnowledgeHandler) GetArticle(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	article, err := h.service.GetArticle(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": articleResponse(article)})
}

// CreateArticle POST /knowledge/articles.
func (h *KnowledgeHandler) CreateArticle(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	article, err := h.service.CreateArticle(c.Context(), principal.User, service.ArticleInput{
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Body:       req.Body,
		Published:  req.Published,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": articleResponse(article)})
}

// UpdateArticle PUT /knowledge/articles/:id.
func (h *KnowledgeHandler) UpdateArticle(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	article, err := h.service.UpdateArticle(c.Context(), principal.User, c.Params("id"), service.ArticleInput{
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Body:       req.Body,
		Published:  req.Published,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": articleResponse(article)})
}

// ListCategories GET /knowledge/categories.
func (h *KnowledgeHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.ArticleCategoryResponse, 0, len(categories))
	for _, category := range categories {
		items = append(items, dto.ArticleCategoryResponse{ID: category.ID, Name: category.Name})
	}
	return c.JSON(fiber.Map{"data": items})
}

func articleResponse(article *domain.Article) dto.ArticleResponse {
	return dto.ArticleResponse{
		ID:         article.ID,
		CategoryID: article.CategoryID,
		AuthorID:   article.AuthorID,
		Title:      article.Title,
		Body:       article.Body,
		Published:  article.Published,
		CreatedAt:  article.CreatedAt,
		UpdatedAt:  article.UpdatedAt,
	}
}
