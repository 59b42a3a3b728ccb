package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// BookmarkRepository persists per-user favorites and recently-viewed ticket
// ids. Backed by Redis so the lists survive across devices, unlike the
// browser-local storage they replace.
type BookmarkRepository interface {
	AddFavorite(ctx context.Context, userID, ticketID string) error
	RemoveFavorite(ctx context.Context, userID, ticketID string) error
	IsFavorite(ctx context.Context, userID, ticketID string) (bool, error)
	ListFavorites(ctx context.Context, userID string) ([]string, error)
	PushRecent(ctx context.Context, userID, ticketID string, limit int) error
	ListRecent(ctx context.Context, userID string) ([]string, error)
}

type bookmarkRepository struct {
	client *redis.Client
}

// NewBookmarkRepository builds a Redis-backed implementation.
func NewBookmarkRepository(client *redis.Client) BookmarkRepository {
	return &bookmarkRepository{client: client}
}

func favoritesKey(userID string) string {
	return fmt.Sprintf("favorite_tickets:%s", userID)
}

func recentKey(userID string) string {
	return fmt.Sprintf("recent_tickets:%s", userID)
}

func (r *bookmarkRepository) AddFavorite(ctx context.Context, userID, ticketID string) error {
	return r.client.SAdd(ctx, favoritesKey(userID), ticketID).Err()
}

func (r *bookmarkRepository) RemoveFavorite(ctx context.Context, userID, ticketID string) error {
	return r.client.SRem(ctx, favoritesKey(userID), ticketID).Err()
}

func (r *bookmarkRepository) IsFavorite(ctx context.Context, userID, ticketID string) (bool, error) {
	return r.client.SIsMember(ctx, favoritesKey(userID), ticketID).Result()
}

func (r *bookmarkRepository) ListFavorites(ctx context.Context, userID string) ([]string, error) {
	return r.client.SMembers(ctx, favoritesKey(userID)).Result()
}

// PushRecent moves the ticket to the front of the recents list and trims the
// list to the configured cap. The LRem keeps the list de-duplicated.
func (r *bookmarkRepository) PushRecent(ctx context.Context, userID, ticketID string, limit int) error {
	if limit <= 0 {
		limit = 10
	}
	key := recentKey(userID)
	pipe := r.client.TxPipeline()
	pipe.LRem(ctx, key, 0, ticketID)
	pipe.LPush(ctx, key, ticketID)
	pipe.LTrim(ctx, key, 0, int64(limit-1))
	_, err := pipe.Exec(ctx)
	return err
}

func (r *bookmarkRepository) ListRecent(ctx context.Context, userID string) ([]string, error) {
	return r.client.LRange(ctx, recentKey(userID), 0, -1).Result()
}
