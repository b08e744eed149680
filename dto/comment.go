package dto

import (
	"time"

	"blogs-api/models"
)

// CommentDTO is the API shape of a comment with its single-status likes
// view.
type CommentDTO struct {
	ID        string           `json:"id"`
	PostID    string           `json:"postId"`
	Content   string           `json:"content"`
	UserID    string           `json:"userId"`
	UserLogin string           `json:"userLogin"`
	AddedAt   time.Time        `json:"addedAt"`
	LikesInfo models.LikesInfo `json:"likesInfo"`
}

func NewCommentDTO(c models.CommentWithLikes) CommentDTO {
	return CommentDTO{
		ID:        c.ID,
		PostID:    c.PostID,
		Content:   c.Content,
		UserID:    c.UserID,
		UserLogin: c.UserLogin,
		AddedAt:   c.AddedAt,
		LikesInfo: c.LikesInfo,
	}
}
