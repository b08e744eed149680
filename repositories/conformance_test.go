package repositories_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogs-api/apperr"
	"blogs-api/models"
	"blogs-api/pagination"
	"blogs-api/repositories"
)

// backend bundles the repositories of one storage strategy for the shared
// conformance suite. Every backend must produce identical observable
// behavior here; the suite is the contract.
type backend struct {
	posts repositories.PostsRepository
	blogs repositories.BlogsRepository
}

func newMemoryBackend(t *testing.T) backend {
	t.Helper()
	m := repositories.NewMemory()
	return backend{posts: m, blogs: m}
}

func TestMemoryBackendConformance(t *testing.T) {
	runPostsConformance(t, newMemoryBackend)
}

func runPostsConformance(t *testing.T, newBackend func(t *testing.T) backend) {
	ctx := context.Background()

	seedBlog := func(t *testing.T, b backend, name string) models.Blog {
		blog := models.Blog{ID: "blog-" + name, Name: name, CreatedAt: time.Now()}
		require.NoError(t, b.blogs.CreateBlog(ctx, blog))
		return blog
	}
	seedPost := func(t *testing.T, b backend, blog models.Blog, id, title string) models.PostWithLikes {
		created, err := b.posts.CreatePost(ctx, models.Post{
			ID:     id,
			Title:  title,
			BlogID: blog.ID,
			AddedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		return *created
	}

	t.Run("create rejects missing blog", func(t *testing.T) {
		b := newBackend(t)
		_, err := b.posts.CreatePost(ctx, models.Post{ID: "p1", Title: "x", BlogID: "nope"})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("create resolves blog name and empty likes view", func(t *testing.T) {
		b := newBackend(t)
		blog := seedBlog(t, b, "gophers")
		created := seedPost(t, b, blog, "p1", "hello")
		assert.Equal(t, "gophers", created.BlogName)
		assert.Equal(t, 0, created.ExtendedLikesInfo.LikesCount)
		assert.Equal(t, 0, created.ExtendedLikesInfo.DislikesCount)
		assert.Equal(t, models.ActionNone, created.ExtendedLikesInfo.MyStatus)
		assert.Empty(t, created.ExtendedLikesInfo.NewestLikes)
	})

	t.Run("reaction transitions like dislike none", func(t *testing.T) {
		b := newBackend(t)
		blog := seedBlog(t, b, "gophers")
		seedPost(t, b, blog, "p1", "hello")

		set := func(action models.LikeAction) {
			require.NoError(t, b.posts.SetPostReaction(ctx, action, "userA", "alice", "p1", time.Now()))
		}

		set(models.ActionLike)
		got, err := b.posts.GetPostByID(ctx, "p1", "userA")
		require.NoError(t, err)
		assert.Equal(t, 1, got.ExtendedLikesInfo.LikesCount)
		assert.Equal(t, 0, got.ExtendedLikesInfo.DislikesCount)
		assert.Equal(t, models.ActionLike, got.ExtendedLikesInfo.MyStatus)

		set(models.ActionDislike)
		got, err = b.posts.GetPostByID(ctx, "p1", "userA")
		require.NoError(t, err)
		assert.Equal(t, 0, got.ExtendedLikesInfo.LikesCount)
		assert.Equal(t, 1, got.ExtendedLikesInfo.DislikesCount)
		assert.Equal(t, models.ActionDislike, got.ExtendedLikesInfo.MyStatus)

		set(models.ActionNone)
		got, err = b.posts.GetPostByID(ctx, "p1", "userA")
		require.NoError(t, err)
		assert.Equal(t, 0, got.ExtendedLikesInfo.LikesCount)
		assert.Equal(t, 0, got.ExtendedLikesInfo.DislikesCount)
		assert.Equal(t, models.ActionNone, got.ExtendedLikesInfo.MyStatus)
	})

	t.Run("repeated reaction stays idempotent", func(t *testing.T) {
		b := newBackend(t)
		blog := seedBlog(t, b, "gophers")
		seedPost(t, b, blog, "p1", "hello")

		for i := 0; i < 3; i++ {
			require.NoError(t, b.posts.SetPostReaction(ctx, models.ActionLike, "userA", "alice", "p1", time.Now()))
		}
		got, err := b.posts.GetPostByID(ctx, "p1", "userA")
		require.NoError(t, err)
		assert.Equal(t, 1, got.ExtendedLikesInfo.LikesCount)
		assert.Len(t, got.ExtendedLikesInfo.NewestLikes, 1)
	})

	t.Run("racing reactions from one user leave a single entry", func(t *testing.T) {
		b := newBackend(t)
		blog := seedBlog(t, b, "gophers")
		seedPost(t, b, blog, "p1", "hello")

		// A losing writer may observe a conflict error; what matters is
		// that the stored state never holds two reactions for one user.
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = b.posts.SetPostReaction(ctx, models.ActionLike, "userA", "alice", "p1", time.Now())
			}()
		}
		wg.Wait()

		got, err := b.posts.GetPostByID(ctx, "p1", "userA")
		require.NoError(t, err)
		assert.Equal(t, 1, got.ExtendedLikesInfo.LikesCount)
		assert.Equal(t, models.ActionLike, got.ExtendedLikesInfo.MyStatus)
		require.Len(t, got.ExtendedLikesInfo.NewestLikes, 1)
	})

	t.Run("newest likes ordered most recent first and capped", func(t *testing.T) {
		b := newBackend(t)
		blog := seedBlog(t, b, "gophers")
		seedPost(t, b, blog, "p1", "hello")

		base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		for i, u := range []struct{ id, login string }{
			{"userA", "alice"}, {"userB", "bob"}, {"userC", "carol"}, {"userD", "dave"},
		} {
			require.NoError(t, b.posts.SetPostReaction(ctx, models.ActionLike, u.id, u.login, "p1", base.Add(time.Duration(i)*time.Minute)))
		}

		got, err := b.posts.GetPostByID(ctx, "p1", "")
		require.NoError(t, err)
		assert.Equal(t, 4, got.ExtendedLikesInfo.LikesCount)
		require.Len(t, got.ExtendedLikesInfo.NewestLikes, 3)
		assert.Equal(t, "dave", got.ExtendedLikesInfo.NewestLikes[0].Login)
		assert.Equal(t, "carol", got.ExtendedLikesInfo.NewestLikes[1].Login)
		assert.Equal(t, "bob", got.ExtendedLikesInfo.NewestLikes[2].Login)
		assert.Equal(t, models.ActionNone, got.ExtendedLikesInfo.MyStatus, "anonymous read")
	})

	t.Run("reacting to missing post", func(t *testing.T) {
		b := newBackend(t)
		err := b.posts.SetPostReaction(ctx, models.ActionLike, "userA", "alice", "ghost", time.Now())
		assert.ErrorIs(t, err, apperr.ErrBadRequest)
		// None on a missing post is a no-op: the cleared state already holds.
		assert.NoError(t, b.posts.SetPostReaction(ctx, models.ActionNone, "userA", "alice", "ghost", time.Now()))
	})

	t.Run("list orders by title descending and paginates", func(t *testing.T) {
		b := newBackend(t)
		blog := seedBlog(t, b, "gophers")
		for i, title := range []string{"Go", "Rust", "C++", "Ada"} {
			seedPost(t, b, blog, fmt.Sprintf("p%d", i), title)
		}

		page, err := b.posts.ListPosts(ctx, pagination.Params{Page: 1, PageSize: 2}, "", "")
		require.NoError(t, err)
		assert.Equal(t, 4, page.TotalCount)
		assert.Equal(t, 2, page.PagesCount)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "Rust", page.Items[0].Title)
		assert.Equal(t, "Go", page.Items[1].Title)

		page, err = b.posts.ListPosts(ctx, pagination.Params{Page: 2, PageSize: 2}, "", "")
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "C++", page.Items[0].Title)
		assert.Equal(t, "Ada", page.Items[1].Title)
	})

	t.Run("list filters by title substring and blog id", func(t *testing.T) {
		b := newBackend(t)
		blogA := seedBlog(t, b, "alpha")
		blogB := seedBlog(t, b, "beta")
		seedPost(t, b, blogA, "p1", "Generics in Go")
		seedPost(t, b, blogA, "p2", "Channels")
		seedPost(t, b, blogB, "p3", "Going further")

		page, err := b.posts.ListPosts(ctx, pagination.Params{SearchNameTerm: "go"}, "", "")
		require.NoError(t, err)
		assert.Equal(t, 2, page.TotalCount)

		page, err = b.posts.ListPosts(ctx, pagination.Params{SearchNameTerm: "go"}, blogB.ID, "")
		require.NoError(t, err)
		assert.Equal(t, 1, page.TotalCount)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Going further", page.Items[0].Title)
	})

	t.Run("search term metacharacters match literally", func(t *testing.T) {
		b := newBackend(t)
		blog := seedBlog(t, b, "gophers")
		seedPost(t, b, blog, "p1", "100% test coverage")
		seedPost(t, b, blog, "p2", "100x faster builds")
		seedPost(t, b, blog, "p3", "go_generate tricks")

		page, err := b.posts.ListPosts(ctx, pagination.Params{SearchNameTerm: "100%"}, "", "")
		require.NoError(t, err)
		assert.Equal(t, 1, page.TotalCount)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "100% test coverage", page.Items[0].Title)

		page, err = b.posts.ListPosts(ctx, pagination.Params{SearchNameTerm: "go_"}, "", "")
		require.NoError(t, err)
		assert.Equal(t, 1, page.TotalCount)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "go_generate tricks", page.Items[0].Title)
	})

	t.Run("list attaches viewer status per post without cross contamination", func(t *testing.T) {
		b := newBackend(t)
		blog := seedBlog(t, b, "gophers")
		seedPost(t, b, blog, "p1", "first")
		seedPost(t, b, blog, "p2", "second")
		require.NoError(t, b.posts.SetPostReaction(ctx, models.ActionLike, "userA", "alice", "p1", time.Now()))
		require.NoError(t, b.posts.SetPostReaction(ctx, models.ActionDislike, "userA", "alice", "p2", time.Now()))

		page, err := b.posts.ListPosts(ctx, pagination.Params{}, "", "userA")
		require.NoError(t, err)
		byTitle := map[string]models.PostWithLikes{}
		for _, it := range page.Items {
			byTitle[it.Title] = it
		}
		assert.Equal(t, models.ActionLike, byTitle["first"].ExtendedLikesInfo.MyStatus)
		assert.Equal(t, 1, byTitle["first"].ExtendedLikesInfo.LikesCount)
		assert.Equal(t, 0, byTitle["first"].ExtendedLikesInfo.DislikesCount)
		assert.Equal(t, models.ActionDislike, byTitle["second"].ExtendedLikesInfo.MyStatus)
		assert.Equal(t, 0, byTitle["second"].ExtendedLikesInfo.LikesCount)
		assert.Equal(t, 1, byTitle["second"].ExtendedLikesInfo.DislikesCount)
	})

	t.Run("update and delete signal not found", func(t *testing.T) {
		b := newBackend(t)
		blog := seedBlog(t, b, "gophers")
		seedPost(t, b, blog, "p1", "hello")

		require.NoError(t, b.posts.UpdatePostByID(ctx, "p1", models.PostUpdate{Title: "hi", Content: "c"}))
		got, err := b.posts.GetPostByID(ctx, "p1", "")
		require.NoError(t, err)
		assert.Equal(t, "hi", got.Title)

		assert.ErrorIs(t, b.posts.UpdatePostByID(ctx, "ghost", models.PostUpdate{}), apperr.ErrNotFound)
		require.NoError(t, b.posts.DeletePostByID(ctx, "p1"))
		assert.ErrorIs(t, b.posts.DeletePostByID(ctx, "p1"), apperr.ErrNotFound)
		_, err = b.posts.GetPostByID(ctx, "p1", "")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}
