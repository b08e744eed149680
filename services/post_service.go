package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blogs-api/dto"
	"blogs-api/eventbus"
	"blogs-api/events"
	"blogs-api/logger"
	"blogs-api/models"
	"blogs-api/pagination"
	"blogs-api/repositories"
)

// PostsService encapsulates business logic for posts and DTO mapping.
type PostsService struct {
	repo repositories.PostsRepository
	bus  eventbus.EventBus
}

func NewPostsService(repo repositories.PostsRepository, bus eventbus.EventBus) *PostsService {
	return &PostsService{repo: repo, bus: bus}
}

type ListPostsInput struct {
	Page           int
	PageSize       int
	SearchNameTerm string
	BlogID         string
	UserID         string
}

func (s *PostsService) List(ctx context.Context, in ListPostsInput) (pagination.Page[dto.PostDTO], error) {
	page, err := s.repo.ListPosts(ctx, pagination.Params{
		Page:           in.Page,
		PageSize:       in.PageSize,
		SearchNameTerm: in.SearchNameTerm,
	}, in.BlogID, in.UserID)
	if err != nil {
		return pagination.Page[dto.PostDTO]{}, err
	}

	items := make([]dto.PostDTO, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, dto.NewPostDTO(p))
	}
	return pagination.Page[dto.PostDTO]{
		PagesCount: page.PagesCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		Items:      items,
	}, nil
}

// GetByID loads a post and its likes view as seen by userID ("" for
// anonymous).
func (s *PostsService) GetByID(ctx context.Context, id, userID string) (*dto.PostDTO, error) {
	p, err := s.repo.GetPostByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	d := dto.NewPostDTO(*p)
	return &d, nil
}

type CreatePostInput struct {
	Title            string
	ShortDescription string
	Content          string
	BlogID           string
}

func (s *PostsService) Create(ctx context.Context, in CreatePostInput) (*dto.PostDTO, error) {
	post := models.Post{
		ID:               uuid.NewString(),
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Content:          in.Content,
		BlogID:           in.BlogID,
		AddedAt:          time.Now(),
	}
	created, err := s.repo.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}

	if ev, err := eventbus.NewEvent(events.PostCreated, events.PostCreatedEvent{
		PostID:   created.ID,
		BlogID:   created.BlogID,
		BlogName: created.BlogName,
		Title:    created.Title,
		AddedAt:  created.AddedAt,
	}); err == nil {
		if err := s.bus.Publish(ctx, eventbus.TopicPostEvents, ev); err != nil {
			logger.Log.Errorf("publish post.created event: %v", err)
		}
	}

	d := dto.NewPostDTO(*created)
	return &d, nil
}

type UpdatePostInput struct {
	Title            string
	ShortDescription string
	Content          string
}

func (s *PostsService) UpdateByID(ctx context.Context, id string, in UpdatePostInput) error {
	return s.repo.UpdatePostByID(ctx, id, models.PostUpdate{
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Content:          in.Content,
	})
}

func (s *PostsService) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeletePostByID(ctx, id)
}
