// Package repositories holds the storage contracts and their three
// implementations: mongo (reactions embedded per post document), sql
// (reactions in their own table, joined at read time) and an in-memory
// variant used by tests. The backends must be observably identical; one
// conformance suite exercises them all.
package repositories

import (
	"context"
	"time"

	"blogs-api/models"
	"blogs-api/pagination"
)

// PostsRepository is the post storage contract. Every read composes the
// pagination window with the aggregated likes view; userID is the viewer
// ("" for anonymous) and only affects myStatus.
type PostsRepository interface {
	// ListPosts returns one window of posts filtered by a case-insensitive
	// title substring and an optional exact blog id, ordered by title
	// descending.
	ListPosts(ctx context.Context, params pagination.Params, blogID, userID string) (pagination.Page[models.PostWithLikes], error)
	GetPostByID(ctx context.Context, id, userID string) (*models.PostWithLikes, error)
	// CreatePost fails with ErrNotFound when the referenced blog does not
	// exist. BlogName is resolved from the blog at creation.
	CreatePost(ctx context.Context, post models.Post) (*models.PostWithLikes, error)
	UpdatePostByID(ctx context.Context, id string, upd models.PostUpdate) error
	DeletePostByID(ctx context.Context, id string) error
	// SetPostReaction replaces the (post, user) reaction as one logical
	// unit: any prior reaction is removed, then a new one is recorded
	// unless action is None. Reacting to a missing post fails with
	// ErrBadRequest when a reaction would be recorded.
	SetPostReaction(ctx context.Context, action models.LikeAction, userID, login, postID string, addedAt time.Time) error
}

// BlogsRepository is the blog lookup/storage contract.
type BlogsRepository interface {
	ListBlogs(ctx context.Context, params pagination.Params) (pagination.Page[models.Blog], error)
	GetBlogByID(ctx context.Context, id string) (*models.Blog, error)
	CreateBlog(ctx context.Context, blog models.Blog) error
}

// UsersRepository is the user lookup boundary consumed by the likes write
// path to validate the acting user and snapshot its login.
type UsersRepository interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, user models.User) error
}

// CommentsRepository mirrors the reaction contract for comments, with the
// single-status likes view.
type CommentsRepository interface {
	GetCommentByID(ctx context.Context, id, userID string) (*models.CommentWithLikes, error)
	CreateComment(ctx context.Context, comment models.Comment) error
	SetCommentReaction(ctx context.Context, action models.LikeAction, userID, login, commentID string, addedAt time.Time) error
}
