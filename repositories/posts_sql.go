package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"blogs-api/apperr"
	"blogs-api/likes"
	"blogs-api/models"
	"blogs-api/pagination"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps a raw search term for a substring ILIKE match. Pattern
// metacharacters in the term are escaped so it matches literally, the same
// way the other backends treat it.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// SQLPostsRepository keeps reactions in their own table and joins blog
// names at query time. The aggregation itself is shared with the mongo
// backend: reactions are loaded per post window and fed through the same
// pure functions, so both backends stay observably identical.
type SQLPostsRepository struct {
	db *sqlx.DB
}

func NewSQLPostsRepository(db *sqlx.DB) *SQLPostsRepository {
	return &SQLPostsRepository{db: db}
}

func (r *SQLPostsRepository) ListPosts(ctx context.Context, params pagination.Params, blogID, userID string) (pagination.Page[models.PostWithLikes], error) {
	params = params.Normalize()
	term := likePattern(params.SearchNameTerm)

	var total int
	err := r.db.GetContext(ctx, &total, `
		SELECT COUNT(*) FROM posts
		WHERE title ILIKE $1 ESCAPE '\' AND ($2 = '' OR blog_id = $2)
	`, term, blogID)
	if err != nil {
		return pagination.Page[models.PostWithLikes]{}, fmt.Errorf("count posts: %w", err)
	}

	var posts []models.Post
	err = r.db.SelectContext(ctx, &posts, `
		SELECT p.id, p.title, p.short_description, p.content, p.blog_id,
		       COALESCE(b.name, p.blog_name) AS blog_name, p.added_at
		FROM posts p
		LEFT JOIN blogs b ON b.id = p.blog_id
		WHERE p.title ILIKE $1 ESCAPE '\' AND ($2 = '' OR p.blog_id = $2)
		ORDER BY p.title DESC, p.id DESC
		OFFSET $3 LIMIT $4
	`, term, blogID, params.Skip(), params.PageSize)
	if err != nil {
		return pagination.Page[models.PostWithLikes]{}, fmt.Errorf("select posts: %w", err)
	}

	reactions, err := r.reactionsForPosts(ctx, posts)
	if err != nil {
		return pagination.Page[models.PostWithLikes]{}, err
	}

	items := make([]models.PostWithLikes, 0, len(posts))
	for _, p := range posts {
		items = append(items, models.PostWithLikes{
			Post:              p,
			ExtendedLikesInfo: likes.Aggregate(reactions[p.ID], userID),
		})
	}
	return pagination.NewPage(params, total, items), nil
}

// reactionsForPosts loads the reactions of a page of posts in one query,
// keyed by post id and ordered by insertion so aggregation tie-breaking
// matches the embedded-document backend.
func (r *SQLPostsRepository) reactionsForPosts(ctx context.Context, posts []models.Post) (map[string][]models.Reaction, error) {
	byPost := make(map[string][]models.Reaction, len(posts))
	if len(posts) == 0 {
		return byPost, nil
	}
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	var rows []models.Reaction
	err := r.db.SelectContext(ctx, &rows, `
		SELECT post_id, user_id, action, login, added_at
		FROM post_reactions
		WHERE post_id = ANY($1)
		ORDER BY seq
	`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("select reactions: %w", err)
	}
	for _, row := range rows {
		byPost[row.PostID] = append(byPost[row.PostID], row)
	}
	return byPost, nil
}

func (r *SQLPostsRepository) GetPostByID(ctx context.Context, id, userID string) (*models.PostWithLikes, error) {
	var p models.Post
	err := r.db.GetContext(ctx, &p, `
		SELECT p.id, p.title, p.short_description, p.content, p.blog_id,
		       COALESCE(b.name, p.blog_name) AS blog_name, p.added_at
		FROM posts p
		LEFT JOIN blogs b ON b.id = p.blog_id
		WHERE p.id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("post")
		}
		return nil, fmt.Errorf("select post: %w", err)
	}

	var rows []models.Reaction
	err = r.db.SelectContext(ctx, &rows, `
		SELECT post_id, user_id, action, login, added_at
		FROM post_reactions
		WHERE post_id = $1
		ORDER BY seq
	`, id)
	if err != nil {
		return nil, fmt.Errorf("select reactions: %w", err)
	}

	return &models.PostWithLikes{
		Post:              p,
		ExtendedLikesInfo: likes.Aggregate(rows, userID),
	}, nil
}

func (r *SQLPostsRepository) CreatePost(ctx context.Context, post models.Post) (*models.PostWithLikes, error) {
	var blogName string
	err := r.db.GetContext(ctx, &blogName, `SELECT name FROM blogs WHERE id = $1`, post.BlogID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("blog")
		}
		return nil, fmt.Errorf("select blog: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO posts (id, title, short_description, content, blog_id, blog_name, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, post.ID, post.Title, post.ShortDescription, post.Content, post.BlogID, blogName, post.AddedAt)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return r.GetPostByID(ctx, post.ID, "")
}

func (r *SQLPostsRepository) UpdatePostByID(ctx context.Context, id string, upd models.PostUpdate) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE posts SET title = $1, short_description = $2, content = $3
		WHERE id = $4
	`, upd.Title, upd.ShortDescription, upd.Content, id)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("post")
	}
	return nil
}

func (r *SQLPostsRepository) DeletePostByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("post")
	}
	return nil
}

func (r *SQLPostsRepository) SetPostReaction(ctx context.Context, action models.LikeAction, userID, login, postID string, addedAt time.Time) error {
	// Delete and insert run in one transaction so a crash cannot leave two
	// reactions for the same user; the UNIQUE(post_id, user_id) constraint
	// backs the invariant under concurrent writers.
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reaction tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM post_reactions WHERE post_id = $1 AND user_id = $2
	`, postID, userID); err != nil {
		return fmt.Errorf("clear reaction: %w", err)
	}

	if action != models.ActionNone {
		var exists bool
		if err := tx.GetContext(ctx, &exists, `
			SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)
		`, postID); err != nil {
			return fmt.Errorf("check post: %w", err)
		}
		if !exists {
			return apperr.BadRequest("post does not exist")
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO post_reactions (post_id, user_id, action, login, added_at)
			VALUES ($1, $2, $3, $4, $5)
		`, postID, userID, action, login, addedAt); err != nil {
			return fmt.Errorf("record reaction: %w", err)
		}
	}
	return tx.Commit()
}
