package repository

import (
	"context"

	"github.com/hayatmills/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubmissionRepository defines the persistence interface for contact
// submissions. It is defined here (in repository) to avoid an import
// cycle with service.
type SubmissionRepository interface {
	// Save inserts a new submission and populates msg.ID and CreatedAt.
	Save(ctx context.Context, sub *model.Submission) error
}

// PgSubmissionRepository is the PostgreSQL implementation of SubmissionRepository.
type PgSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubmissionRepository creates a PgSubmissionRepository backed by the given pool.
func NewPgSubmissionRepository(pool *pgxpool.Pool) *PgSubmissionRepository {
	return &PgSubmissionRepository{pool: pool}
}

// Ensure PgSubmissionRepository implements SubmissionRepository at compile time.
var _ SubmissionRepository = (*PgSubmissionRepository)(nil)

// Save inserts a new contact_submissions row and populates sub.ID and
// sub.CreatedAt from the database RETURNING clause. Optional fields are
// passed through as-is: a nil pointer becomes SQL NULL.
func (r *PgSubmissionRepository) Save(ctx context.Context, sub *model.Submission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, phone, company, message)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		sub.Name, sub.Email, sub.Phone, sub.Company, sub.Message,
	).Scan(&sub.ID, &sub.CreatedAt)
}
