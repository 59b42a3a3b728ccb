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

// CatalogService serves the service catalog and its requests.
type CatalogService struct {
	catalog repository.CatalogRepository
}

// NewCatalogService constructs the service.
func NewCatalogService(catalog repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// CatalogItemInput describes item creation payload.
type CatalogItemInput struct {
	Name        string
	Description string
	Category    string
	Active      bool
}

// CreateItem adds a catalog item. Staff only.
func (s *CatalogService) CreateItem(ctx context.Context, actor *domain.User, input CatalogItemInput) (*domain.CatalogItem, error) {
	if actor == nil || !actor.Role.IsStaff() {
		return nil, apperrors.NewForbidden("staff role required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}
	item := &domain.CatalogItem{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		Active:      input.Active,
	}
	if err := s.catalog.CreateItem(ctx, item); err != nil {
		return nil, apperrors.MapError(err)
	}
	return item, nil
}

// UpdateItem edits a catalog item. Staff only.
func (s *CatalogService) UpdateItem(ctx context.Context, actor *domain.User, id string, input CatalogItemInput) (*domain.CatalogItem, error) {
	if actor == nil || !actor.Role.IsStaff() {
		return nil, apperrors.NewForbidden("staff role required")
	}
	item, err := s.catalog.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("catalog item", map[string]any{"item_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}
	item.Name = name
	item.Description = strings.TrimSpace(input.Description)
	item.Category = strings.TrimSpace(input.Category)
	item.Active = input.Active
	if err := s.catalog.UpdateItem(ctx, item); err != nil {
		return nil, apperrors.MapError(err)
	}
	return item, nil
}

// ListItems returns catalog items; customers only see active ones.
func (s *CatalogService) ListItems(ctx context.Context, actor *domain.User) ([]domain.CatalogItem, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	items, err := s.catalog.ListItems(ctx, !actor.Role.IsStaff())
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return items, nil
}

// GetItem fetches one catalog item.
func (s *CatalogService) GetItem(ctx context.Context, actor *domain.User, id string) (*domain.CatalogItem, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	item, err := s.catalog.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("catalog item", map[string]any{"item_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	if !item.Active && !actor.Role.IsStaff() {
		return nil, apperrors.NewNotFound("catalog item", map[string]any{"item_id": id})
	}
	return item, nil
}

// SubmitRequest files a service request against an active catalog item.
func (s *CatalogService) SubmitRequest(ctx context.Context, actor *domain.User, itemID, notes string) (*domain.ServiceRequest, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	item, err := s.GetItem(ctx, actor, itemID)
	if err != nil {
		return nil, err
	}
	if !item.Active {
		return nil, apperrors.NewConflict("catalog item inactive", map[string]any{"item_id": itemID})
	}
	request := &domain.ServiceRequest{
		ItemID:      item.ID,
		RequesterID: actor.ID,
		Status:      domain.ServiceRequestSubmitted,
		Notes:       strings.TrimSpace(notes),
	}
	if err := s.catalog.CreateRequest(ctx, request); err != nil {
		return nil, apperrors.MapError(err)
	}
	return request, nil
}

// ListRequests returns service requests; customers only see their own.
func (s *CatalogService) ListRequests(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.ServiceRequest, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	var requesterID *string
	if !actor.Role.IsStaff() {
		requesterID = &actor.ID
	}
	requests, err := s.catalog.ListRequests(ctx, requesterID, limit, offset)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return requests, nil
}

// UpdateRequestStatus moves a service request through its workflow. Staff only.
func (s *CatalogService) UpdateRequestStatus(ctx context.Context, actor *domain.User, id string, status domain.ServiceRequestStatus, notes *string) (*domain.ServiceRequest, error) {
	if actor == nil || !actor.Role.IsStaff() {
		return nil, apperrors.NewForbidden("staff role required")
	}
	if !domain.KnownServiceRequestStatus(status) {
		return nil, apperrors.NewValidationError("unknown status", map[string]any{"status": status})
	}
	request, err := s.catalog.GetRequest(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("service request", map[string]any{"request_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	request.Status = status
	if notes != nil {
		request.Notes = strings.TrimSpace(*notes)
	}
	if err := s.catalog.UpdateRequest(ctx, request); err != nil {
		return nil, apperrors.MapError(err)
	}
	return request, nil
}
