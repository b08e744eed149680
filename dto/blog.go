package dto

import (
	"time"

	"blogs-api/models"
)

// BlogDTO is the API shape of a blog.
type BlogDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	YoutubeURL string    `json:"youtubeUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewBlogDTO(b models.Blog) BlogDTO {
	return BlogDTO{
		ID:         b.ID,
		Name:       b.Name,
		YoutubeURL: b.YoutubeURL,
		CreatedAt:  b.CreatedAt,
	}
}
