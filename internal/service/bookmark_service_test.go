package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/config"
)

func newBookmarkFixture() (*BookmarkService, *fakeBookmarkRepo) {
	repo := newFakeBookmarkRepo()
	svc := NewBookmarkService(repo, config.WorkflowConfig{RecentTicketsLimit: 3})
	return svc, repo
}

func TestToggleFavoriteFlipsState(t *testing.T) {
	svc, _ := newBookmarkFixture()
	ctx := context.Background()

	favorite, err := svc.ToggleFavorite(ctx, customerUser, "ticket-1")
	require.NoError(t, err)
	assert.True(t, favorite)

	ids, err := svc.ListFavorites(ctx, customerUser)
	require.NoError(t, err)
	assert.Equal(t, []string{"ticket-1"}, ids)

	favorite, err = svc.ToggleFavorite(ctx, customerUser, "ticket-1")
	require.NoError(t, err)
	assert.False(t, favorite)

	ids, err = svc.ListFavorites(ctx, customerUser)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFavoritesArePerUser(t *testing.T) {
	svc, _ := newBookmarkFixture()
	ctx := context.Background()

	_, err := svc.ToggleFavorite(ctx, customerUser, "ticket-1")
	require.NoError(t, err)

	ids, err := svc.ListFavorites(ctx, otherUser)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRecentsDedupeAndKeepNewestFirst(t *testing.T) {
	svc, _ := newBookmarkFixture()
	ctx := context.Background()

	require.NoError(t, svc.TrackView(ctx, customerUser, "ticket-1"))
	require.NoError(t, svc.TrackView(ctx, customerUser, "ticket-2"))
	require.NoError(t, svc.TrackView(ctx, customerUser, "ticket-1"))

	ids, err := svc.ListRecent(ctx, customerUser)
	require.NoError(t, err)
	assert.Equal(t, []string{"ticket-1", "ticket-2"}, ids)
}

func TestRecentsCappedAtConfiguredLimit(t *testing.T) {
	svc, _ := newBookmarkFixture()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, svc.TrackView(ctx, customerUser, fmt.Sprintf("ticket-%d", i)))
	}

	ids, err := svc.ListRecent(ctx, customerUser)
	require.NoError(t, err)
	assert.Equal(t, []string{"ticket-5", "ticket-4", "ticket-3"}, ids)
}

func TestBookmarksRequireAuthentication(t *testing.T) {
	svc, _ := newBookmarkFixture()
	ctx := context.Background()

	_, err := svc.ToggleFavorite(ctx, nil, "ticket-1")
	require.Error(t, err)
	_, err = svc.ListRecent(ctx, nil)
	require.Error(t, err)
}
