package models

import (
	"time"

	"blogs-api/apperr"
)

// LikeAction is a user's reaction to a post or comment.
// None is the absence of a reaction and is never stored.
type LikeAction string

const (
	ActionLike    LikeAction = "Like"
	ActionDislike LikeAction = "Dislike"
	ActionNone    LikeAction = "None"
)

// ParseLikeAction validates a raw likeStatus value from the API.
func ParseLikeAction(s string) (LikeAction, error) {
	switch LikeAction(s) {
	case ActionLike, ActionDislike, ActionNone:
		return LikeAction(s), nil
	}
	return "", apperr.NewFieldError("likeStatus", "wrong value")
}

// Reaction is one user's recorded Like or Dislike on a post.
// At most one reaction exists per (post, user) pair; Login is a snapshot of
// the user's login at the time the reaction was made.
type Reaction struct {
	PostID  string     `bson:"post_id" json:"postId" db:"post_id"`
	UserID  string     `bson:"user_id" json:"userId" db:"user_id"`
	Action  LikeAction `bson:"action" json:"action" db:"action"`
	Login   string     `bson:"login" json:"login" db:"login"`
	AddedAt time.Time  `bson:"added_at" json:"addedAt" db:"added_at"`
}

// NewestLike is the projection of a Like reaction used in newestLikes.
type NewestLike struct {
	AddedAt time.Time `bson:"added_at" json:"addedAt"`
	UserID  string    `bson:"user_id" json:"userId"`
	Login   string    `bson:"login" json:"login"`
}

// ExtendedLikesInfo is the derived likes view attached to a post. It is
// recomputed from stored reactions on every read and never persisted.
type ExtendedLikesInfo struct {
	LikesCount    int          `json:"likesCount"`
	DislikesCount int          `json:"dislikesCount"`
	MyStatus      LikeAction   `json:"myStatus"`
	NewestLikes   []NewestLike `json:"newestLikes"`
}

// LikesInfo is the comment variant: a single status, no newest list.
type LikesInfo struct {
	LikesCount    int        `json:"likesCount"`
	DislikesCount int        `json:"dislikesCount"`
	MyStatus      LikeAction `json:"myStatus"`
}
