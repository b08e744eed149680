package models

import "time"

// Post represents a blog post.
// Collection: posts (mongo backend embeds reactions in the same document).
type Post struct {
	ID               string    `bson:"id" json:"id" db:"id"`
	Title            string    `bson:"title" json:"title" db:"title"`
	ShortDescription string    `bson:"short_description" json:"shortDescription" db:"short_description"`
	Content          string    `bson:"content" json:"content" db:"content"`
	BlogID           string    `bson:"blog_id" json:"blogId" db:"blog_id"`
	BlogName         string    `bson:"blog_name" json:"blogName" db:"blog_name"`
	AddedAt          time.Time `bson:"added_at" json:"addedAt" db:"added_at"`
}

// PostWithLikes pairs a post with its derived likes view.
type PostWithLikes struct {
	Post
	ExtendedLikesInfo ExtendedLikesInfo `json:"extendedLikesInfo"`
}

// PostUpdate carries the updatable post fields.
type PostUpdate struct {
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	Content          string `json:"content"`
}
