package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// LookupRepository serves the classification tables: categories,
// subcategories, assignment groups and tags.
type LookupRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListSubcategories(ctx context.Context, categoryID *string) ([]domain.Subcategory, error)
	ListAssignmentGroups(ctx context.Context) ([]domain.AssignmentGroup, error)
	ListTags(ctx context.Context) ([]domain.Tag, error)
	CreateTag(ctx context.Context, tag *domain.Tag) error
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	GetSubcategory(ctx context.Context, id string) (*domain.Subcategory, error)
	GetAssignmentGroup(ctx context.Context, id string) (*domain.AssignmentGroup, error)
}

type lookupRepository struct {
	pool *pgxpool.Pool
}

// NewLookupRepository builds repository.
func NewLookupRepository(pool *pgxpool.Pool) LookupRepository {
	return &lookupRepository{pool: pool}
}

func (r *lookupRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *lookupRepository) ListSubcategories(ctx context.Context, categoryID *string) ([]domain.Subcategory, error) {
	query := `SELECT id, category_id, name, created_at FROM subcategories`
	args := []any{}
	if categoryID != nil {
		query += ` WHERE category_id=$1`
		args = append(args, *categoryID)
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Subcategory
	for rows.Next() {
		var s domain.Subcategory
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *lookupRepository) ListAssignmentGroups(ctx context.Context) ([]domain.AssignmentGroup, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, active, created_at FROM assignment_groups ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AssignmentGroup
	for rows.Next() {
		var g domain.AssignmentGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.Active, &g.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	return result, rows.Err()
}

func (r *lookupRepository) ListTags(ctx context.Context) ([]domain.Tag, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, created_at FROM tags ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

func (r *lookupRepository) CreateTag(ctx context.Context, tag *domain.Tag) error {
	const query = `INSERT INTO tags (name) VALUES ($1) RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query, tag.Name).Scan(&tag.ID, &tag.CreatedAt)
}

func (r *lookupRepository) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	var c domain.Category
	err := r.pool.QueryRow(ctx, `SELECT id, name, created_at FROM categories WHERE id=$1`, id).
		Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *lookupRepository) GetSubcategory(ctx context.Context, id string) (*domain.Subcategory, error) {
	var s domain.Subcategory
	err := r.pool.QueryRow(ctx, `SELECT id, category_id, name, created_at FROM subcategories WHERE id=$1`, id).
		Scan(&s.ID, &s.CategoryID, &s.Name, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *lookupRepository) GetAssignmentGroup(ctx context.Context, id string) (*domain.AssignmentGroup, error) {
	var g domain.AssignmentGroup
	err := r.pool.QueryRow(ctx, `SELECT id, name, active, created_at FROM assignment_groups WHERE id=$1`, id).
		Scan(&g.ID, &g.Name, &g.Active, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
