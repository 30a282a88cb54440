package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hayatmills/backend/internal/model"
	"github.com/hayatmills/backend/internal/repository"
)

type mockPostRepo struct {
	listFunc func(ctx context.Context, opts model.PostListOptions) ([]*model.Post, error)
	getFunc  func(ctx context.Context, slug string) (*model.Post, error)
}

func (r *mockPostRepo) List(ctx context.Context, opts model.PostListOptions) ([]*model.Post, error) {
	if r.listFunc != nil {
		return r.listFunc(ctx, opts)
	}
	return nil, nil
}

func (r *mockPostRepo) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	if r.getFunc != nil {
		return r.getFunc(ctx, slug)
	}
	return nil, repository.ErrNotFound
}

func TestPostService_List_PassesOptions(t *testing.T) {
	var got model.PostListOptions
	repo := &mockPostRepo{
		listFunc: func(ctx context.Context, opts model.PostListOptions) ([]*model.Post, error) {
			got = opts
			return []*model.Post{{ID: "p1", Title: "Chapati Flour Tips"}}, nil
		},
	}
	svc := NewPostService(repo)

	posts, err := svc.List(context.Background(), model.PostListOptions{
		Category: model.CategoryRecipes,
		Search:   "chapati",
		Limit:    10,
		Offset:   20,
	})
	if err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != "p1" {
		t.Errorf("unexpected posts: %+v", posts)
	}
	if got.Category != model.CategoryRecipes || got.Search != "chapati" || got.Limit != 10 || got.Offset != 20 {
		t.Errorf("options not passed through: %+v", got)
	}
}

func TestPostService_Get_NotFound(t *testing.T) {
	svc := NewPostService(&mockPostRepo{})

	_, err := svc.Get(context.Background(), "no-such-post")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPostService_Get_Found(t *testing.T) {
	repo := &mockPostRepo{
		getFunc: func(ctx context.Context, slug string) (*model.Post, error) {
			return &model.Post{ID: "p1", Slug: slug, Title: "Milling Update"}, nil
		},
	}
	svc := NewPostService(repo)

	post, err := svc.Get(context.Background(), "milling-update")
	if err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
	if post.Slug != "milling-update" {
		t.Errorf("unexpected post: %+v", post)
	}
}

func TestPostService_List_PropagatesError(t *testing.T) {
	repo := &mockPostRepo{
		listFunc: func(ctx context.Context, opts model.PostListOptions) ([]*model.Post, error) {
			return nil, errors.New("query failed")
		},
	}
	svc := NewPostService(repo)

	if _, err := svc.List(context.Background(), model.PostListOptions{Limit: 20}); err == nil {
		t.Error("expected error to propagate")
	}
}
