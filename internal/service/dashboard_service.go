package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

const dashboardMonths = 12

// StatusSlice is a by-status count with its share of the total.
type StatusSlice struct {
	Status  domain.TicketStatus `json:"status"`
	Count   int64               `json:"count"`
	Percent float64             `json:"percent"`
}

// CompanySlice is a by-company count with its share of the total.
type CompanySlice struct {
	Company string  `json:"company"`
	Count   int64   `json:"count"`
	Percent float64 `json:"percent"`
}

// MonthBucket is a created-per-month data point. Months without tickets are
// present with a zero count; nothing is fabricated to fill gaps.
type MonthBucket struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// DashboardPayload is the response body for the dashboard endpoints.
type DashboardPayload struct {
	Total     int64           `json:"total"`
	ByStatus  []StatusSlice   `json:"by_status"`
	ByCompany []CompanySlice  `json:"by_company"`
	Monthly   []MonthBucket   `json:"monthly"`
	Recent    []domain.Ticket `json:"-"`
}

// DashboardService computes aggregate views, caching the result briefly.
type DashboardService struct {
	stats  repository.DashboardRepository
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewDashboardService constructs the service. Cache may be nil.
func NewDashboardService(stats repository.DashboardRepository, cache Cache, cfg config.DashboardConfig, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		stats:  stats,
		cache:  cache,
		ttl:    cfg.CacheTTL(),
		logger: logger,
	}
}

// AdminStats returns the global aggregate. Staff only.
func (s *DashboardService) AdminStats(ctx context.Context, actor *domain.User) (*DashboardPayload, error) {
	if actor == nil || !actor.Role.IsStaff() {
		return nil, apperrors.NewForbidden("staff role required")
	}
	return s.compute(ctx, nil, "dashboard:admin")
}

// CustomerStats returns the aggregate scoped to the caller's own tickets.
func (s *DashboardService) CustomerStats(ctx context.Context, actor *domain.User) (*DashboardPayload, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return s.compute(ctx, &actor.ID, fmt.Sprintf("dashboard:customer:%s", actor.ID))
}

func (s *DashboardService) compute(ctx context.Context, requesterID *string, cacheKey string) (*DashboardPayload, error) {
	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	total, err := s.stats.Total(ctx, requesterID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	byStatus, err := s.stats.CountByStatus(ctx, requesterID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	byCompany, err := s.stats.CountByCompany(ctx, requesterID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	monthly, err := s.stats.CountByMonth(ctx, requesterID, dashboardMonths)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	recent, err := s.stats.RecentTickets(ctx, requesterID, 10)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	payload := &DashboardPayload{
		Total:     total,
		ByStatus:  statusSlices(byStatus, total),
		ByCompany: companySlices(byCompany, total),
		Monthly:   fillMonths(monthly, time.Now(), dashboardMonths),
		Recent:    recent,
	}
	s.toCache(ctx, cacheKey, payload)
	return payload, nil
}

func (s *DashboardService) fromCache(ctx context.Context, key string) (*DashboardPayload, bool) {
	if s.cache == nil || s.ttl <= 0 {
		return nil, false
	}
	raw, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("dashboard cache read failed", zap.Error(err))
		return nil, false
	}
	if !found {
		return nil, false
	}
	var payload DashboardPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, false
	}
	return &payload, true
}

func (s *DashboardService) toCache(ctx context.Context, key string, payload *DashboardPayload) {
	if s.cache == nil || s.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.Error(err))
	}
}

// Percent computes count/total*100 rounded to one decimal, zero when the
// total is zero.
func Percent(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}

func statusSlices(counts []domain.StatusCount, total int64) []StatusSlice {
	slices := make([]StatusSlice, 0, len(counts))
	for _, row := range counts {
		slices = append(slices, StatusSlice{
			Status:  row.Status,
			Count:   row.Count,
			Percent: Percent(row.Count, total),
		})
	}
	return slices
}

func companySlices(counts []domain.CompanyCount, total int64) []CompanySlice {
	slices := make([]CompanySlice, 0, len(counts))
	for _, row := range counts {
		slices = append(slices, CompanySlice{
			Company: row.Company,
			Count:   row.Count,
			Percent: Percent(row.Count, total),
		})
	}
	return slices
}

// fillMonths expands sparse month rows into a dense trailing window ending at
// the current month. Missing months get a true zero.
func fillMonths(rows []domain.MonthCount, now time.Time, months int) []MonthBucket {
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Month.Format("2006-01")] = row.Count
	}

	buckets := make([]MonthBucket, 0, months)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	for i := 0; i < months; i++ {
		month := start.AddDate(0, i, 0).Format("2006-01")
		buckets = append(buckets, MonthBucket{Month: month, Count: counts[month]})
	}
	return buckets
}
