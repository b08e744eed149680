package events

import (
	"time"

	"blogs-api/models"
)

const (
	PostCreated        = "post.created"
	PostReactionSet    = "post.reaction_set"
	CommentReactionSet = "comment.reaction_set"
)

// PostCreatedEvent is published after a post is stored.
type PostCreatedEvent struct {
	PostID   string    `json:"post_id"`
	BlogID   string    `json:"blog_id"`
	BlogName string    `json:"blog_name"`
	Title    string    `json:"title"`
	AddedAt  time.Time `json:"added_at"`
}

// PostReactionSetEvent is published after a post reaction write completes.
// Action None means the user's reaction was cleared.
type PostReactionSetEvent struct {
	PostID  string            `json:"post_id"`
	UserID  string            `json:"user_id"`
	Action  models.LikeAction `json:"action"`
	AddedAt time.Time         `json:"added_at"`
}

// CommentReactionSetEvent mirrors PostReactionSetEvent for comments.
type CommentReactionSetEvent struct {
	CommentID string            `json:"comment_id"`
	UserID    string            `json:"user_id"`
	Action    models.LikeAction `json:"action"`
	AddedAt   time.Time         `json:"added_at"`
}
