package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// TicketFilter captures normalized ticket search parameters. Pointer fields
// are nil when the caller did not supply the criterion; services are expected
// to strip empty values before the filter reaches this layer.
type TicketFilter struct {
	RequesterID       *string
	CategoryID        *string
	SubcategoryID     *string
	AssignmentGroupID *string
	AssigneeID        *string
	Unassigned        bool
	Statuses          []domain.TicketStatus
	Priorities        []domain.TicketPriority
	TicketIDs         []string
	SearchTerm        *string
	CreatedFrom       *time.Time
	CreatedTo         *time.Time
	Limit             int
	Offset            int
}

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	GetByNumber(ctx context.Context, number string) (*domain.Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	Count(ctx context.Context, filter TicketFilter) (int64, error)
	NextNumber(ctx context.Context) (string, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `t.id, t.number, t.requester_id, t.category_id, t.subcategory_id,
       t.assignment_group_id, t.assignee_id, t.subject, t.description, t.location,
       t.contact_type, t.status, t.impact, t.urgency, t.priority, t.resolution,
       t.created_at, t.updated_at, t.closed_at`

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (requester_id, category_id, subcategory_id, assignment_group_id,
            assignee_id, subject, description, location, contact_type, status, impact,
            urgency, priority, resolution)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
        RETURNING id, number, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ticket.RequesterID,
		ticket.CategoryID,
		ticket.SubcategoryID,
		ticket.AssignmentGroupID,
		ticket.AssigneeID,
		ticket.Subject,
		ticket.Description,
		ticket.Location,
		ticket.ContactType,
		ticket.Status,
		ticket.Impact,
		ticket.Urgency,
		ticket.Priority,
		ticket.Resolution,
	).Scan(&ticket.ID, &ticket.Number, &ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        UPDATE tickets SET category_id=$1, subcategory_id=$2, assignment_group_id=$3,
            assignee_id=$4, subject=$5, description=$6, location=$7, contact_type=$8,
            status=$9, impact=$10, urgency=$11, priority=$12, resolution=$13,
            closed_at=$14, updated_at=NOW()
        WHERE id=$15`
	cmd, err := r.pool.Exec(ctx, query,
		ticket.CategoryID,
		ticket.SubcategoryID,
		ticket.AssignmentGroupID,
		ticket.AssigneeID,
		ticket.Subject,
		ticket.Description,
		ticket.Location,
		ticket.ContactType,
		ticket.Status,
		ticket.Impact,
		ticket.Urgency,
		ticket.Priority,
		ticket.Resolution,
		ticket.ClosedAt,
		ticket.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM tickets WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets t WHERE t.id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *ticketRepository) GetByNumber(ctx context.Context, number string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets t WHERE t.number=$1`
	return r.fetchSingle(ctx, query, number)
}

func (r *ticketRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if err := scanTicket(r.pool.QueryRow(ctx, query, arg), &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// NextNumber previews the display number the next created ticket receives.
func (r *ticketRepository) NextNumber(ctx context.Context) (string, error) {
	var number string
	err := r.pool.QueryRow(ctx, `SELECT 'TKT-' || lpad(nextval('ticket_number_seq')::text, 7, '0')`).Scan(&number)
	if err != nil {
		return "", err
	}
	return number, nil
}

// buildWhere translates the filter into SQL clauses with numbered arguments.
// The search term joins against the requester so a match on the customer's
// name counts, same as subject/description/number.
func buildWhere(filter TicketFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.RequesterID != nil {
		args = append(args, *filter.RequesterID)
		clauses = append(clauses, fmt.Sprintf("t.requester_id=$%d", len(args)))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		clauses = append(clauses, fmt.Sprintf("t.category_id=$%d", len(args)))
	}
	if filter.SubcategoryID != nil {
		args = append(args, *filter.SubcategoryID)
		clauses = append(clauses, fmt.Sprintf("t.subcategory_id=$%d", len(args)))
	}
	if filter.AssignmentGroupID != nil {
		args = append(args, *filter.AssignmentGroupID)
		clauses = append(clauses, fmt.Sprintf("t.assignment_group_id=$%d", len(args)))
	}
	if filter.Unassigned {
		clauses = append(clauses, "t.assignee_id IS NULL")
	} else if filter.AssigneeID != nil {
		args = append(args, *filter.AssigneeID)
		clauses = append(clauses, fmt.Sprintf("t.assignee_id=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("t.status IN (%s)", strings.Join(placeholders, ",")))
	}
	if len(filter.Priorities) > 0 {
		placeholders := make([]string, len(filter.Priorities))
		for i, pr := range filter.Priorities {
			args = append(args, pr)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("t.priority IN (%s)", strings.Join(placeholders, ",")))
	}
	if len(filter.TicketIDs) > 0 {
		placeholders := make([]string, len(filter.TicketIDs))
		for i, id := range filter.TicketIDs {
			args = append(args, id)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("t.id IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.CreatedFrom != nil {
		args = append(args, *filter.CreatedFrom)
		clauses = append(clauses, fmt.Sprintf("t.created_at >= $%d", len(args)))
	}
	if filter.CreatedTo != nil {
		args = append(args, *filter.CreatedTo)
		clauses = append(clauses, fmt.Sprintf("t.created_at <= $%d", len(args)))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf(
			"(LOWER(t.subject) LIKE %s OR LOWER(t.description) LIKE %s OR LOWER(t.number) LIKE %s OR LOWER(u.name) LIKE %s)",
			placeholder, placeholder, placeholder, placeholder))
	}

	return strings.Join(clauses, " AND "), args
}

func (r *ticketRepository) List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	where, args := buildWhere(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM tickets t
        JOIN users u ON u.id = t.requester_id
        WHERE %s ORDER BY t.updated_at DESC LIMIT %d OFFSET %d`,
		ticketColumns, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) Count(ctx context.Context, filter TicketFilter) (int64, error) {
	where, args := buildWhere(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM tickets t
        JOIN users u ON u.id = t.requester_id
        WHERE %s`, where)

	var total int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTicket(row rowScanner, ticket *domain.Ticket) error {
	return row.Scan(
		&ticket.ID,
		&ticket.Number,
		&ticket.RequesterID,
		&ticket.CategoryID,
		&ticket.SubcategoryID,
		&ticket.AssignmentGroupID,
		&ticket.AssigneeID,
		&ticket.Subject,
		&ticket.Description,
		&ticket.Location,
		&ticket.ContactType,
		&ticket.Status,
		&ticket.Impact,
		&ticket.Urgency,
		&ticket.Priority,
		&ticket.Resolution,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.ClosedAt,
	)
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := scanTicket(rows, &ticket); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}
