package service

import (
	"context"

	"github.com/hayatmills/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit persists a submission and then attempts an operator
	// notification email. The returned SubmitResult reports the outcome of
	// both steps; see the error types below for the failure contract.
	Submit(ctx context.Context, sub *model.Submission) (*model.SubmitResult, error)
}

// ValidationError reports a submission rejected before any side effect.
// Code is a stable machine-readable identifier ("name_required", ...).
type ValidationError struct {
	Code string
}

func (e *ValidationError) Error() string { return "validation failed: " + e.Code }

// PersistenceError reports a failed store write. The whole submission is
// safe to retry: no row was created and no email was attempted.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string { return "persistence failed: " + e.Err.Error() }
func (e *PersistenceError) Unwrap() error { return e.Err }

// NotificationError reports a provider-level rejection of the operator
// email after the submission row was already durable. Submit returns it
// only when ContactConfig.NotifyFailureFatal is set; the accompanying
// SubmitResult still carries Persisted=true and the submission ID.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string { return "notification failed: " + e.Err.Error() }
func (e *NotificationError) Unwrap() error { return e.Err }
