package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

type fakeKnowledgeRepo struct {
	articles   map[string]*domain.Article
	categories []domain.ArticleCategory
	seq        int
}

func newFakeKnowledgeRepo() *fakeKnowledgeRepo {
	return &fakeKnowledgeRepo{articles: map[string]*domain.Article{}}
}

func (r *fakeKnowledgeRepo) CreateArticle(_ context.Context, article *domain.Article) error {
	r.seq++
	article.ID = fmt.Sprintf("article-%d", r.seq)
	copied := *article
	r.articles[article.ID] = &copied
	return nil
}

func (r *fakeKnowledgeRepo) UpdateArticle(_ context.Context, article *domain.Article) error {
	if _, ok := r.articles[article.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *article
	r.articles[article.ID] = &copied
	return nil
}

func (r *fakeKnowledgeRepo) GetArticle(_ context.Context, id string) (*domain.Article, error) {
	article, ok := r.articles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *article
	return &copied, nil
}

func (r *fakeKnowledgeRepo) ListArticles(_ context.Context, search *string, publishedOnly bool, limit, offset int) ([]domain.Article, error) {
	var out []domain.Article
	for i := 1; i <= r.seq; i++ {
		article, ok := r.articles[fmt.Sprintf("article-%d", i)]
		if !ok {
			continue
		}
		if publishedOnly && !article.Published {
			continue
		}
		if search != nil && !strings.Contains(strings.ToLower(article.Title), strings.ToLower(*search)) {
			continue
		}
		out = append(out, *article)
	}
	return out, nil
}

func (r *fakeKnowledgeRepo) ListCategories(context.Context) ([]domain.ArticleCategory, error) {
	return r.categories, nil
}

func newKnowledgeFixture() (*KnowledgeService, *fakeKnowledgeRepo) {
	repo := newFakeKnowledgeRepo()
	return NewKnowledgeService(repo), repo
}

func TestCreateArticleIsStaffOnly(t *testing.T) {
	svc, _ := newKnowledgeFixture()
	ctx := context.Background()

	_, err := svc.CreateArticle(ctx, customerUser, ArticleInput{Title: "VPN setup"})
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)

	article, err := svc.CreateArticle(ctx, employeeUser, ArticleInput{Title: "  VPN setup  ", Body: "steps", Published: true})
	require.NoError(t, err)
	assert.Equal(t, "VPN setup", article.Title)
	assert.Equal(t, employeeUser.ID, article.AuthorID)
}

func TestCreateArticleRequiresTitle(t *testing.T) {
	svc, _ := newKnowledgeFixture()

	_, err := svc.CreateArticle(context.Background(), adminUser, ArticleInput{Title: "   "})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestDraftsAreHiddenFromCustomers(t *testing.T) {
	svc, _ := newKnowledgeFixture()
	ctx := context.Background()

	draft, err := svc.CreateArticle(ctx, employeeUser, ArticleInput{Title: "Printer troubleshooting"})
	require.NoError(t, err)

	_, err = svc.GetArticle(ctx, customerUser, draft.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	got, err := svc.GetArticle(ctx, employeeUser, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, got.ID)
}

func TestListArticlesScopesCustomersToPublished(t *testing.T) {
	svc, _ := newKnowledgeFixture()
	ctx := context.Background()

	_, err := svc.CreateArticle(ctx, employeeUser, ArticleInput{Title: "Password reset", Published: true})
	require.NoError(t, err)
	_, err = svc.CreateArticle(ctx, employeeUser, ArticleInput{Title: "Internal runbook"})
	require.NoError(t, err)

	forCustomer, err := svc.ListArticles(ctx, customerUser, "", 20, 0)
	require.NoError(t, err)
	require.Len(t, forCustomer, 1)
	assert.Equal(t, "Password reset", forCustomer[0].Title)

	forStaff, err := svc.ListArticles(ctx, employeeUser, "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, forStaff, 2)
}

func TestListArticlesSearch(t *testing.T) {
	svc, _ := newKnowledgeFixture()
	ctx := context.Background()

	_, err := svc.CreateArticle(ctx, employeeUser, ArticleInput{Title: "Password reset", Published: true})
	require.NoError(t, err)
	_, err = svc.CreateArticle(ctx, employeeUser, ArticleInput{Title: "VPN setup", Published: true})
	require.NoError(t, err)

	found, err := svc.ListArticles(ctx, customerUser, "vpn", 20, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "VPN setup", found[0].Title)
}

func TestUpdateArticle(t *testing.T) {
	svc, _ := newKnowledgeFixture()
	ctx := context.Background()

	draft, err := svc.CreateArticle(ctx, employeeUser, ArticleInput{Title: "Draft"})
	require.NoError(t, err)

	updated, err := svc.UpdateArticle(ctx, employeeUser, draft.ID, ArticleInput{Title: "Published guide", Body: "body", Published: true})
	require.NoError(t, err)
	assert.True(t, updated.Published)
	assert.Equal(t, "Published guide", updated.Title)

	_, err = svc.UpdateArticle(ctx, employeeUser, "article-999", ArticleInput{Title: "x"})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
