package models

import "time"

// Blog represents a blogger's blog.
// Collection: blogs
type Blog struct {
	ID         string    `bson:"id" json:"id" db:"id"`
	Name       string    `bson:"name" json:"name" db:"name"`
	YoutubeURL string    `bson:"youtube_url" json:"youtubeUrl" db:"youtube_url"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt" db:"created_at"`
}
