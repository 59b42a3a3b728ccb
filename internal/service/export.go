package service

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

const exportBatchSize = 500

var exportHeader = []string{
	"number", "subject", "status", "priority", "impact", "urgency",
	"requester_id", "assignee_id", "category_id", "created_at", "updated_at", "closed_at",
}

// ExportCSV streams the filtered ticket set as RFC 4180 CSV. The leading BOM
// keeps Excel from mangling non-ASCII subjects. Staff only.
func (s *TicketService) ExportCSV(ctx context.Context, actor *domain.User, input TicketListInput, w io.Writer) error {
	if actor == nil || !actor.Role.IsStaff() {
		return apperrors.NewForbidden("staff role required")
	}
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return apperrors.MapError(err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return apperrors.MapError(err)
	}

	filter, _, _ := s.normalizeFilter(input)
	filter.Limit = exportBatchSize
	filter.Offset = 0
	for {
		tickets, err := s.tickets.List(ctx, filter)
		if err != nil {
			return apperrors.MapError(err)
		}
		for i := range tickets {
			if err := writer.Write(exportRow(&tickets[i])); err != nil {
				return apperrors.MapError(err)
			}
		}
		if len(tickets) < exportBatchSize {
			break
		}
		filter.Offset += exportBatchSize
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func exportRow(ticket *domain.Ticket) []string {
	return []string{
		ticket.Number,
		ticket.Subject,
		string(ticket.Status),
		string(ticket.Priority),
		strconv.Itoa(ticket.Impact),
		strconv.Itoa(ticket.Urgency),
		ticket.RequesterID,
		exportString(ticket.AssigneeID),
		exportString(ticket.CategoryID),
		ticket.CreatedAt.Format(time.RFC3339),
		ticket.UpdatedAt.Format(time.RFC3339),
		exportTime(ticket.ClosedAt),
	}
}

func exportString(val *string) string {
	if val == nil {
		return ""
	}
	return *val
}

func exportTime(val *time.Time) string {
	if val == nil {
		return ""
	}
	return val.Format(time.RFC3339)
}
