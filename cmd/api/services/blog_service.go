package services

import (
	"context"

	"blogsmith/models"
)

// BlogPostStore persists blog posts.
type BlogPostStore interface {
	Create(ctx context.Context, p *models.BlogPost) (*models.BlogPost, error)
	List(ctx context.Context) ([]models.BlogPost, error)
}

type BlogService struct {
	store BlogPostStore
}

func NewBlogService(store BlogPostStore) *BlogService {
	return &BlogService{store: store}
}

func (s *BlogService) Create(ctx context.Context, title, content string, author *string) (*models.BlogPost, error) {
	return s.store.Create(ctx, &models.BlogPost{
		Title:   title,
		Content: content,
		Author:  author,
	})
}

// List returns all posts, newest first.
func (s *BlogService) List(ctx context.Context) ([]models.BlogPost, error) {
	return s.store.List(ctx)
}
