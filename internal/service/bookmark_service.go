package service

import (
	"context"

	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// BookmarkService manages per-user favorites and recently-viewed tickets.
type BookmarkService struct {
	bookmarks   repository.BookmarkRepository
	recentLimit int
}

// NewBookmarkService constructs the service.
func NewBookmarkService(bookmarks repository.BookmarkRepository, cfg config.WorkflowConfig) *BookmarkService {
	limit := cfg.RecentTicketsLimit
	if limit <= 0 {
		limit = 10
	}
	return &BookmarkService{bookmarks: bookmarks, recentLimit: limit}
}

// ToggleFavorite flips a ticket in/out of the caller's favorites and reports
// the resulting state.
func (s *BookmarkService) ToggleFavorite(ctx context.Context, actor *domain.User, ticketID string) (bool, error) {
	if actor == nil {
		return false, apperrors.NewUnauthorized("authentication required")
	}
	favorite, err := s.bookmarks.IsFavorite(ctx, actor.ID, ticketID)
	if err != nil {
		return false, apperrors.MapError(err)
	}
	if favorite {
		if err := s.bookmarks.RemoveFavorite(ctx, actor.ID, ticketID); err != nil {
			return false, apperrors.MapError(err)
		}
		return false, nil
	}
	if err := s.bookmarks.AddFavorite(ctx, actor.ID, ticketID); err != nil {
		return false, apperrors.MapError(err)
	}
	return true, nil
}

// ListFavorites returns the caller's favorite ticket ids.
func (s *BookmarkService) ListFavorites(ctx context.Context, actor *domain.User) ([]string, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	ids, err := s.bookmarks.ListFavorites(ctx, actor.ID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return ids, nil
}

// TrackView records a ticket at the front of the caller's recents list.
func (s *BookmarkService) TrackView(ctx context.Context, actor *domain.User, ticketID string) error {
	if actor == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := s.bookmarks.PushRecent(ctx, actor.ID, ticketID, s.recentLimit); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// ListRecent returns the caller's recently-viewed ticket ids, newest first.
func (s *BookmarkService) ListRecent(ctx context.Context, actor *domain.User) ([]string, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	ids, err := s.bookmarks.ListRecent(ctx, actor.ID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return ids, nil
}
