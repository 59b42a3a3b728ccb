package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// DashboardRepository runs the aggregate queries behind the dashboards.
// A nil requesterID means the global (staff) scope; otherwise all aggregates
// are restricted to that requester's tickets.
type DashboardRepository interface {
	Total(ctx context.Context, requesterID *string) (int64, error)
	CountByStatus(ctx context.Context, requesterID *string) ([]domain.StatusCount, error)
	CountByCompany(ctx context.Context, requesterID *string) ([]domain.CompanyCount, error)
	CountByMonth(ctx context.Context, requesterID *string, months int) ([]domain.MonthCount, error)
	RecentTickets(ctx context.Context, requesterID *string, limit int) ([]domain.Ticket, error)
}

type dashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository builds repository.
func NewDashboardRepository(pool *pgxpool.Pool) DashboardRepository {
	return &dashboardRepository{pool: pool}
}

func scopeClause(requesterID *string) (string, []any) {
	if requesterID == nil {
		return "", nil
	}
	return " WHERE t.requester_id=$1", []any{*requesterID}
}

func (r *dashboardRepository) Total(ctx context.Context, requesterID *string) (int64, error) {
	where, args := scopeClause(requesterID)
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tickets t`+where, args...).Scan(&total)
	return total, err
}

func (r *dashboardRepository) CountByStatus(ctx context.Context, requesterID *string) ([]domain.StatusCount, error) {
	where, args := scopeClause(requesterID)
	query := `SELECT t.status, COUNT(*) FROM tickets t` + where + ` GROUP BY t.status`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StatusCount
	for rows.Next() {
		var row domain.StatusCount
		if err := rows.Scan(&row.Status, &row.Count); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *dashboardRepository) CountByCompany(ctx context.Context, requesterID *string) ([]domain.CompanyCount, error) {
	query := `SELECT COALESCE(NULLIF(u.company, ''), 'Unknown'), COUNT(*)
        FROM tickets t JOIN users u ON u.id = t.requester_id`
	args := []any{}
	if requesterID != nil {
		query += ` WHERE t.requester_id=$1`
		args = append(args, *requesterID)
	}
	query += ` GROUP BY 1 ORDER BY 2 DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CompanyCount
	for rows.Next() {
		var row domain.CompanyCount
		if err := rows.Scan(&row.Company, &row.Count); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// CountByMonth returns one row per month that has tickets; callers fill the
// empty months with zeros.
func (r *dashboardRepository) CountByMonth(ctx context.Context, requesterID *string, months int) ([]domain.MonthCount, error) {
	if months <= 0 {
		months = 12
	}
	query := fmt.Sprintf(`SELECT date_trunc('month', t.created_at) AS month, COUNT(*)
        FROM tickets t
        WHERE t.created_at >= date_trunc('month', NOW()) - interval '%d months'`, months-1)
	args := []any{}
	if requesterID != nil {
		query += ` AND t.requester_id=$1`
		args = append(args, *requesterID)
	}
	query += ` GROUP BY month ORDER BY month`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.MonthCount
	for rows.Next() {
		var row domain.MonthCount
		if err := rows.Scan(&row.Month, &row.Count); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *dashboardRepository) RecentTickets(ctx context.Context, requesterID *string, limit int) ([]domain.Ticket, error) {
	if limit <= 0 {
		limit = 10
	}
	where, args := scopeClause(requesterID)
	args = append(args, limit)
	query := fmt.Sprintf(`SELECT %s FROM tickets t%s ORDER BY t.created_at DESC LIMIT $%d`,
		ticketColumns, where, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}
