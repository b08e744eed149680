package dto

import (
	"time"

	"blogs-api/models"
)

// PostDTO is the API shape of a post: the stored fields plus the derived
// likes view, with blogName resolved live at read time.
type PostDTO struct {
	ID                string                   `json:"id"`
	Title             string                   `json:"title"`
	ShortDescription  string                   `json:"shortDescription"`
	Content           string                   `json:"content"`
	BlogID            string                   `json:"blogId"`
	BlogName          string                   `json:"blogName"`
	AddedAt           time.Time                `json:"addedAt"`
	ExtendedLikesInfo models.ExtendedLikesInfo `json:"extendedLikesInfo"`
}

// NewPostDTO constructs PostDTO from a repository post view.
func NewPostDTO(p models.PostWithLikes) PostDTO {
	return PostDTO{
		ID:                p.ID,
		Title:             p.Title,
		ShortDescription:  p.ShortDescription,
		Content:           p.Content,
		BlogID:            p.BlogID,
		BlogName:          p.BlogName,
		AddedAt:           p.AddedAt,
		ExtendedLikesInfo: p.ExtendedLikesInfo,
	}
}
