package models

import "time"

// Comment represents a comment on a post.
// Collection: comments (mongo backend embeds reactions in the same document).
type Comment struct {
	ID        string    `bson:"id" json:"id" db:"id"`
	PostID    string    `bson:"post_id" json:"postId" db:"post_id"`
	Content   string    `bson:"content" json:"content" db:"content"`
	UserID    string    `bson:"user_id" json:"userId" db:"user_id"`
	UserLogin string    `bson:"user_login" json:"userLogin" db:"user_login"`
	AddedAt   time.Time `bson:"added_at" json:"addedAt" db:"added_at"`
}

// CommentWithLikes pairs a comment with its derived likes view.
type CommentWithLikes struct {
	Comment
	LikesInfo LikesInfo `json:"likesInfo"`
}
