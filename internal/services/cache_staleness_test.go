package services

import (
	"testing"
	"time"

	"grove/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The cache is an optimization only: a populated cache may serve stale data
// within its window, and a cleared cache must reproduce the store exactly.
func TestFeedCacheStaleness(t *testing.T) {
	db := newTestDB(t)
	cacheStore := newTestCache(t)
	feeds := NewFeedService(db, cacheStore, time.Minute)

	author := createUser(t, db, "poster")
	posts := createPosts(t, db, author, 3)

	page, err := feeds.ListAll(1)
	require.NoError(t, err)
	require.Len(t, page.Posts, 3)

	// Delete a post behind the service's back; the cached page keeps serving
	// the old view.
	require.NoError(t, db.Delete(&models.Post{}, posts[0].ID).Error)

	page, err = feeds.ListAll(1)
	require.NoError(t, err)
	assert.Len(t, page.Posts, 3)

	// An explicit clear brings the feed back in line with the store.
	cacheStore.Clear()

	page, err = feeds.ListAll(1)
	require.NoError(t, err)
	assert.Len(t, page.Posts, 2)
}

func TestWritePathsClearFeedCache(t *testing.T) {
	db := newTestDB(t)
	cacheStore := newTestCache(t)
	feeds := NewFeedService(db, cacheStore, time.Minute)
	postSvc := NewPostService(db, cacheStore)

	author := createUser(t, db, "poster")

	_, err := feeds.ListAll(1)
	require.NoError(t, err)
	require.NotNil(t, cacheStore.Get("feed:index:page:1"))

	// Creating a post invalidates, same as edits and comments.
	created, err := postSvc.Create(author.ID, PostInput{Text: "first"})
	require.NoError(t, err)
	assert.Nil(t, cacheStore.Get("feed:index:page:1"))

	page, err := feeds.ListAll(1)
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	require.NotNil(t, cacheStore.Get("feed:index:page:1"))

	_, err = postSvc.Edit(author.ID, created.ID, PostInput{Text: "revised"})
	require.NoError(t, err)
	assert.Nil(t, cacheStore.Get("feed:index:page:1"))
}
