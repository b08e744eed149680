package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"blogs-api/apperr"
	"blogs-api/likes"
	"blogs-api/models"
	"blogs-api/pagination"
)

// SQLBlogsRepository stores blogs in the blogs table.
type SQLBlogsRepository struct {
	db *sqlx.DB
}

func NewSQLBlogsRepository(db *sqlx.DB) *SQLBlogsRepository {
	return &SQLBlogsRepository{db: db}
}

func (r *SQLBlogsRepository) ListBlogs(ctx context.Context, params pagination.Params) (pagination.Page[models.Blog], error) {
	params = params.Normalize()
	term := likePattern(params.SearchNameTerm)

	var total int
	if err := r.db.GetContext(ctx, &total, `
		SELECT COUNT(*) FROM blogs WHERE name ILIKE $1 ESCAPE '\'
	`, term); err != nil {
		return pagination.Page[models.Blog]{}, fmt.Errorf("count blogs: %w", err)
	}

	var items []models.Blog
	if err := r.db.SelectContext(ctx, &items, `
		SELECT id, name, youtube_url, created_at FROM blogs
		WHERE name ILIKE $1 ESCAPE '\'
		ORDER BY name DESC, id DESC
		OFFSET $2 LIMIT $3
	`, term, params.Skip(), params.PageSize); err != nil {
		return pagination.Page[models.Blog]{}, fmt.Errorf("select blogs: %w", err)
	}
	return pagination.NewPage(params, total, items), nil
}

func (r *SQLBlogsRepository) GetBlogByID(ctx context.Context, id string) (*models.Blog, error) {
	var b models.Blog
	if err := r.db.GetContext(ctx, &b, `
		SELECT id, name, youtube_url, created_at FROM blogs WHERE id = $1
	`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("blog")
		}
		return nil, fmt.Errorf("select blog: %w", err)
	}
	return &b, nil
}

func (r *SQLBlogsRepository) CreateBlog(ctx context.Context, blog models.Blog) error {
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO blogs (id, name, youtube_url, created_at)
		VALUES ($1, $2, $3, $4)
	`, blog.ID, blog.Name, blog.YoutubeURL, blog.CreatedAt); err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

// SQLUsersRepository backs the user lookup boundary.
type SQLUsersRepository struct {
	db *sqlx.DB
}

func NewSQLUsersRepository(db *sqlx.DB) *SQLUsersRepository {
	return &SQLUsersRepository{db: db}
}

func (r *SQLUsersRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.db.GetContext(ctx, &u, `
		SELECT id, login, created_at FROM users WHERE id = $1
	`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("user")
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}

func (r *SQLUsersRepository) CreateUser(ctx context.Context, user models.User) error {
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, login, created_at) VALUES ($1, $2, $3)
	`, user.ID, user.Login, user.CreatedAt); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// SQLCommentsRepository stores comment reactions in comment_reactions.
type SQLCommentsRepository struct {
	db *sqlx.DB
}

func NewSQLCommentsRepository(db *sqlx.DB) *SQLCommentsRepository {
	return &SQLCommentsRepository{db: db}
}

func (r *SQLCommentsRepository) GetCommentByID(ctx context.Context, id, userID string) (*models.CommentWithLikes, error) {
	var c models.Comment
	if err := r.db.GetContext(ctx, &c, `
		SELECT id, post_id, content, user_id, user_login, added_at
		FROM comments WHERE id = $1
	`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("comment")
		}
		return nil, fmt.Errorf("select comment: %w", err)
	}

	var rows []models.Reaction
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT comment_id AS post_id, user_id, action, login, added_at
		FROM comment_reactions
		WHERE comment_id = $1
		ORDER BY seq
	`, id); err != nil {
		return nil, fmt.Errorf("select reactions: %w", err)
	}

	return &models.CommentWithLikes{
		Comment:   c,
		LikesInfo: likes.AggregateStatus(rows, userID),
	}, nil
}

func (r *SQLCommentsRepository) CreateComment(ctx context.Context, comment models.Comment) error {
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO comments (id, post_id, content, user_id, user_login, added_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, comment.ID, comment.PostID, comment.Content, comment.UserID, comment.UserLogin, comment.AddedAt); err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (r *SQLCommentsRepository) SetCommentReaction(ctx context.Context, action models.LikeAction, userID, login, commentID string, addedAt time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reaction tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM comment_reactions WHERE comment_id = $1 AND user_id = $2
	`, commentID, userID); err != nil {
		return fmt.Errorf("clear reaction: %w", err)
	}

	if action != models.ActionNone {
		var exists bool
		if err := tx.GetContext(ctx, &exists, `
			SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1)
		`, commentID); err != nil {
			return fmt.Errorf("check comment: %w", err)
		}
		if !exists {
			return apperr.BadRequest("comment does not exist")
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO comment_reactions (comment_id, user_id, action, login, added_at)
			VALUES ($1, $2, $3, $4, $5)
		`, commentID, userID, action, login, addedAt); err != nil {
			return fmt.Errorf("record reaction: %w", err)
		}
	}
	return tx.Commit()
}
