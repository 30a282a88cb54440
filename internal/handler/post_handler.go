package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/hayatmills/backend/internal/model"
	"github.com/hayatmills/backend/internal/repository"
	"github.com/hayatmills/backend/internal/service"
)

// PostHandler handles the public blog listing.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a PostHandler with the given service.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// postListResponse is the JSON response for GET /api/posts.
type postListResponse struct {
	Posts []*model.Post `json:"posts"`
}

// List handles GET /api/posts.
// Supports query params: category (all/recipes/humanitarian-aid/company-news),
// q (search over title and excerpt), limit, offset.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.PostListOptions{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
		Limit:    20,
		Offset:   0,
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	posts, err := h.postService.List(r.Context(), opts)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty lists
	if posts == nil {
		posts = []*model.Post{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(postListResponse{Posts: posts})
}

// Get handles GET /api/posts/{slug}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	post, err := h.postService.Get(r.Context(), slug)
	if errors.Is(err, repository.ErrNotFound) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "post_not_found"})
		return
	}
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "get_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(post)
}
