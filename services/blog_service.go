package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blogs-api/dto"
	"blogs-api/models"
	"blogs-api/pagination"
	"blogs-api/repositories"
)

// BlogsService encapsulates business logic for blogs and DTO mapping.
type BlogsService struct {
	repo repositories.BlogsRepository
}

func NewBlogsService(repo repositories.BlogsRepository) *BlogsService {
	return &BlogsService{repo: repo}
}

type ListBlogsInput struct {
	Page           int
	PageSize       int
	SearchNameTerm string
}

func (s *BlogsService) List(ctx context.Context, in ListBlogsInput) (pagination.Page[dto.BlogDTO], error) {
	page, err := s.repo.ListBlogs(ctx, pagination.Params{
		Page:           in.Page,
		PageSize:       in.PageSize,
		SearchNameTerm: in.SearchNameTerm,
	})
	if err != nil {
		return pagination.Page[dto.BlogDTO]{}, err
	}

	items := make([]dto.BlogDTO, 0, len(page.Items))
	for _, b := range page.Items {
		items = append(items, dto.NewBlogDTO(b))
	}
	return pagination.Page[dto.BlogDTO]{
		PagesCount: page.PagesCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		Items:      items,
	}, nil
}

func (s *BlogsService) GetByID(ctx context.Context, id string) (*dto.BlogDTO, error) {
	b, err := s.repo.GetBlogByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dto.NewBlogDTO(*b)
	return &d, nil
}

type CreateBlogInput struct {
	Name       string
	YoutubeURL string
}

func (s *BlogsService) Create(ctx context.Context, in CreateBlogInput) (*dto.BlogDTO, error) {
	blog := models.Blog{
		ID:         uuid.NewString(),
		Name:       in.Name,
		YoutubeURL: in.YoutubeURL,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.CreateBlog(ctx, blog); err != nil {
		return nil, err
	}
	d := dto.NewBlogDTO(blog)
	return &d, nil
}
