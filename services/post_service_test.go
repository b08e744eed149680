package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogs-api/apperr"
	"blogs-api/eventbus"
	"blogs-api/events"
	"blogs-api/models"
	"blogs-api/repositories"
	"blogs-api/services"
)

func TestPostsServiceCreate(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemory()
	require.NoError(t, store.CreateBlog(ctx, models.Blog{ID: "b1", Name: "gophers"}))
	bus := &recordingBus{}
	svc := services.NewPostsService(store, bus)

	created, err := svc.Create(ctx, services.CreatePostInput{
		Title:            "hello",
		ShortDescription: "short",
		Content:          "body",
		BlogID:           "b1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "gophers", created.BlogName)
	assert.False(t, created.AddedAt.IsZero())
	assert.Equal(t, models.ActionNone, created.ExtendedLikesInfo.MyStatus)
	assert.Empty(t, created.ExtendedLikesInfo.NewestLikes)

	require.Len(t, bus.published, 1)
	assert.Equal(t, events.PostCreated, bus.published[0].Type)
}

func TestPostsServiceCreateMissingBlog(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemory()
	bus := &recordingBus{}
	svc := services.NewPostsService(store, bus)

	_, err := svc.Create(ctx, services.CreatePostInput{Title: "hello", BlogID: "ghost"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Empty(t, bus.published)
}

func TestPostsServiceListMapsViewer(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemory()
	require.NoError(t, store.CreateBlog(ctx, models.Blog{ID: "b1", Name: "gophers"}))
	require.NoError(t, store.CreateUser(ctx, models.User{ID: "u1", Login: "alice"}))
	svc := services.NewPostsService(store, eventbus.NewNoopEventBus())

	created, err := svc.Create(ctx, services.CreatePostInput{Title: "hello", BlogID: "b1"})
	require.NoError(t, err)
	likesSvc := services.NewLikesService(store, store, store, eventbus.NewNoopEventBus())
	require.NoError(t, likesSvc.SetPostReaction(ctx, "Like", "u1", created.ID))

	page, err := svc.List(ctx, services.ListPostsInput{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, models.ActionLike, page.Items[0].ExtendedLikesInfo.MyStatus)

	anon, err := svc.List(ctx, services.ListPostsInput{})
	require.NoError(t, err)
	require.Len(t, anon.Items, 1)
	assert.Equal(t, models.ActionNone, anon.Items[0].ExtendedLikesInfo.MyStatus)
	assert.Equal(t, 1, anon.Items[0].ExtendedLikesInfo.LikesCount)
}

func TestCommentsServiceCreate(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemory()
	require.NoError(t, store.CreateBlog(ctx, models.Blog{ID: "b1", Name: "gophers"}))
	require.NoError(t, store.CreateUser(ctx, models.User{ID: "u1", Login: "alice"}))
	posts := services.NewPostsService(store, eventbus.NewNoopEventBus())
	post, err := posts.Create(ctx, services.CreatePostInput{Title: "hello", BlogID: "b1"})
	require.NoError(t, err)

	svc := services.NewCommentsService(store, store, store)
	comment, err := svc.Create(ctx, post.ID, "nice write-up", "u1")
	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, "alice", comment.UserLogin)
	assert.Equal(t, models.ActionNone, comment.LikesInfo.MyStatus)

	_, err = svc.Create(ctx, "ghost", "orphan", "u1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Create(ctx, post.ID, "from nobody", "ghost")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
