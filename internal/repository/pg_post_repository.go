package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/hayatmills/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostRepository defines the read-only query interface for blog posts.
type PostRepository interface {
	List(ctx context.Context, opts model.PostListOptions) ([]*model.Post, error)
	// GetBySlug returns one published post, or ErrNotFound.
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)
}

// PgPostRepository is the PostgreSQL implementation of PostRepository.
type PgPostRepository struct {
	pool *pgxpool.Pool
}

// NewPgPostRepository creates a PgPostRepository backed by the given pool.
func NewPgPostRepository(pool *pgxpool.Pool) *PgPostRepository {
	return &PgPostRepository{pool: pool}
}

// Ensure PgPostRepository implements PostRepository at compile time.
var _ PostRepository = (*PgPostRepository)(nil)

// List returns published posts newest-first, filtered by category and an
// optional case-insensitive search over title and excerpt.
// Category "" or "all" returns all categories.
func (r *PgPostRepository) List(ctx context.Context, opts model.PostListOptions) ([]*model.Post, error) {
	conditions := []string{"published = TRUE"}
	var args []any

	category := strings.TrimSpace(opts.Category)
	if category != "" && category != "all" {
		args = append(args, category)
		conditions = append(conditions, "category = $"+strconv.Itoa(len(args)))
	}

	search := strings.TrimSpace(opts.Search)
	if search != "" {
		args = append(args, "%"+escapeLike(search)+"%")
		n := strconv.Itoa(len(args))
		conditions = append(conditions, "(title ILIKE $"+n+" OR excerpt ILIKE $"+n+")")
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	limitArg := strconv.Itoa(len(args) + 1)
	offsetArg := strconv.Itoa(len(args) + 2)
	args = append(args, opts.Limit, opts.Offset)

	query := `SELECT id, title, slug, COALESCE(excerpt, ''), content, category,
	                 featured_image_url, published, created_at, updated_at
	          FROM blog_posts ` + where + `
	          ORDER BY created_at DESC
	          LIMIT $` + limitArg + ` OFFSET $` + offsetArg

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content,
			&p.Category, &p.FeaturedImageURL, &p.Published, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}

// GetBySlug returns one published post by its URL slug.
// Unpublished posts are treated as nonexistent.
func (r *PgPostRepository) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	var p model.Post
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, slug, COALESCE(excerpt, ''), content, category,
		        featured_image_url, published, created_at, updated_at
		 FROM blog_posts
		 WHERE slug = $1 AND published = TRUE`,
		slug,
	).Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content,
		&p.Category, &p.FeaturedImageURL, &p.Published, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// escapeLike escapes LIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
