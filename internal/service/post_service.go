package service

import (
	"context"

	"github.com/hayatmills/backend/internal/model"
)

// PostService defines the read-only business logic for blog posts.
type PostService interface {
	// List returns published posts according to the given options.
	List(ctx context.Context, opts model.PostListOptions) ([]*model.Post, error)

	// Get returns one published post by slug, or repository.ErrNotFound.
	Get(ctx context.Context, slug string) (*model.Post, error)
}
