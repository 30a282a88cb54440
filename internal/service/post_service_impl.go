package service

import (
	"context"

	"github.com/hayatmills/backend/internal/model"
	"github.com/hayatmills/backend/internal/repository"
)

// postServiceImpl is the production implementation of PostService.
type postServiceImpl struct {
	repo repository.PostRepository
}

// NewPostService creates a PostService backed by the given repository.
func NewPostService(repo repository.PostRepository) PostService {
	return &postServiceImpl{repo: repo}
}

// List returns published posts filtered and paginated per opts.
func (s *postServiceImpl) List(ctx context.Context, opts model.PostListOptions) ([]*model.Post, error) {
	return s.repo.List(ctx, opts)
}

// Get returns one published post by slug.
func (s *postServiceImpl) Get(ctx context.Context, slug string) (*model.Post, error) {
	return s.repo.GetBySlug(ctx, slug)
}
