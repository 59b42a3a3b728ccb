package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// CatalogRepository stores service catalog items and requests against them.
type CatalogRepository interface {
	CreateItem(ctx context.Context, item *domain.CatalogItem) error
	UpdateItem(ctx context.Context, item *domain.CatalogItem) error
	GetItem(ctx context.Context, id string) (*domain.CatalogItem, error)
	ListItems(ctx context.Context, activeOnly bool) ([]domain.CatalogItem, error)
	CreateRequest(ctx context.Context, request *domain.ServiceRequest) error
	UpdateRequest(ctx context.Context, request *domain.ServiceRequest) error
	GetRequest(ctx context.Context, id string) (*domain.ServiceRequest, error)
	ListRequests(ctx context.Context, requesterID *string, limit, offset int) ([]domain.ServiceRequest, error)
}

type catalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository builds repository.
func NewCatalogRepository(pool *pgxpool.Pool) CatalogRepository {
	return &catalogRepository{pool: pool}
}

func (r *catalogRepository) CreateItem(ctx context.Context, item *domain.CatalogItem) error {
	const query = `
        INSERT INTO catalog_items (name, description, category, active)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		item.Name,
		item.Description,
		item.Category,
		item.Active,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *catalogRepository) UpdateItem(ctx context.Context, item *domain.CatalogItem) error {
	const query = `
        UPDATE catalog_items SET name=$1, description=$2, category=$3, active=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query, item.Name, item.Description, item.Category, item.Active, item.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *catalogRepository) GetItem(ctx context.Context, id string) (*domain.CatalogItem, error) {
	const query = `
        SELECT id, name, description, category, active, created_at, updated_at
        FROM catalog_items WHERE id=$1`
	var item domain.CatalogItem
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Category,
		&item.Active,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepository) ListItems(ctx context.Context, activeOnly bool) ([]domain.CatalogItem, error) {
	query := `SELECT id, name, description, category, active, created_at, updated_at FROM catalog_items`
	if activeOnly {
		query += ` WHERE active=TRUE`
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CatalogItem
	for rows.Next() {
		var item domain.CatalogItem
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Category,
			&item.Active,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *catalogRepository) CreateRequest(ctx context.Context, request *domain.ServiceRequest) error {
	const query = `
        INSERT INTO service_requests (item_id, requester_id, status, notes)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		request.ItemID,
		request.RequesterID,
		request.Status,
		request.Notes,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
}

func (r *catalogRepository) UpdateRequest(ctx context.Context, request *domain.ServiceRequest) error {
	const query = `UPDATE service_requests SET status=$1, notes=$2, updated_at=NOW() WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query, request.Status, request.Notes, request.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *catalogRepository) GetRequest(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	const query = `
        SELECT id, item_id, requester_id, status, notes, created_at, updated_at
        FROM service_requests WHERE id=$1`
	var request domain.ServiceRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.ItemID,
		&request.RequesterID,
		&request.Status,
		&request.Notes,
		&request.CreatedAt,
		&request.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *catalogRepository) ListRequests(ctx context.Context, requesterID *string, limit, offset int) ([]domain.ServiceRequest, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT id, item_id, requester_id, status, notes, created_at, updated_at FROM service_requests`
	args := []any{}
	if requesterID != nil {
		query += ` WHERE requester_id=$1`
		args = append(args, *requesterID)
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ServiceRequest
	for rows.Next() {
		var request domain.ServiceRequest
		if err := rows.Scan(
			&request.ID,
			&request.ItemID,
			&request.RequesterID,
			&request.Status,
			&request.Notes,
			&request.CreatedAt,
			&request.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, request)
	}
	return result, rows.Err()
}
