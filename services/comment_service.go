package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blogs-api/dto"
	"blogs-api/models"
	"blogs-api/repositories"
)

// CommentsService creates and reads comments. The reaction write path for
// comments lives in LikesService.
type CommentsService struct {
	comments repositories.CommentsRepository
	posts    repositories.PostsRepository
	users    repositories.UsersRepository
}

func NewCommentsService(
	comments repositories.CommentsRepository,
	posts repositories.PostsRepository,
	users repositories.UsersRepository,
) *CommentsService {
	return &CommentsService{comments: comments, posts: posts, users: users}
}

// Create stores a comment with the author's login snapshotted, like
// reaction logins: a later rename does not rewrite history.
func (s *CommentsService) Create(ctx context.Context, postID, content, userID string) (*dto.CommentDTO, error) {
	if _, err := s.posts.GetPostByID(ctx, postID, ""); err != nil {
		return nil, err
	}
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		Content:   content,
		UserID:    user.ID,
		UserLogin: user.Login,
		AddedAt:   time.Now(),
	}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, comment.ID, userID)
}

func (s *CommentsService) GetByID(ctx context.Context, id, userID string) (*dto.CommentDTO, error) {
	c, err := s.comments.GetCommentByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	d := dto.NewCommentDTO(*c)
	return &d, nil
}
