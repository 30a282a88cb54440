package model

import "time"

// Post categories shown on the blog page.
const (
	CategoryRecipes         = "recipes"
	CategoryHumanitarianAid = "humanitarian-aid"
	CategoryCompanyNews     = "company-news"
)

// Post represents a blog article. This backend only reads posts;
// authoring happens elsewhere.
type Post struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Excerpt          string    `json:"excerpt"`
	Content          string    `json:"content"`
	Category         string    `json:"category"`
	FeaturedImageURL *string   `json:"featured_image_url,omitempty"`
	Published        bool      `json:"published"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// PostListOptions carries filter and pagination parameters for listing posts.
type PostListOptions struct {
	// Category filters by post category: "", "all", or one of the
	// Category* constants. Empty string and "all" return all categories.
	Category string
	// Search is a case-insensitive substring match over title and excerpt.
	Search string
	Limit  int
	Offset int
}
