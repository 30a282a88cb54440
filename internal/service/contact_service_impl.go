package service

import (
	"context"
	"errors"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/hayatmills/backend/internal/model"
	"github.com/hayatmills/backend/internal/repository"
	"github.com/hayatmills/backend/pkg/resend"
)

const maxMessageLength = 5000

// Each side-effecting step runs under its own deadline so one stuck
// collaborator cannot hang the whole request.
const (
	persistTimeout = 5 * time.Second
	notifyTimeout  = 10 * time.Second
)

// notifyFailedWarning is returned to the caller when the submission was
// saved but the operator email did not go out.
const notifyFailedWarning = "Message saved but email notification failed"

// ContactConfig carries the notification settings for the contact relay.
type ContactConfig struct {
	// From is the sender identity, e.g. "Hayat Flour Mills <info@hayatflourmills.com>".
	From string
	// To is the operator address notified about each submission.
	To string
	// NotifyFailureFatal makes a provider-level email rejection fail the
	// whole operation even though the submission row is already durable.
	// A missing API key or an unreachable provider stays non-fatal
	// regardless of this setting.
	NotifyFailureFatal bool
}

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo   repository.SubmissionRepository
	mailer resend.Client
	cfg    ContactConfig
}

// NewContactService creates a ContactService backed by the given
// repository and email client. The client is constructed once at startup
// and reused across requests.
func NewContactService(repo repository.SubmissionRepository, mailer resend.Client, cfg ContactConfig) ContactService {
	return &contactServiceImpl{repo: repo, mailer: mailer, cfg: cfg}
}

// Submit runs the relay: validate → persist → notify.
//
// Persistence always happens before notification, because the email must
// never go out for a submission that was not made durable. A notification
// failure after a successful write is a degraded success: the result
// reports Notified=false with a warning, and only a provider rejection
// under NotifyFailureFatal turns it into an error.
func (s *contactServiceImpl) Submit(ctx context.Context, sub *model.Submission) (*model.SubmitResult, error) {
	if err := validateSubmission(sub); err != nil {
		return nil, err
	}
	sub.Phone = normalizeOptional(sub.Phone)
	sub.Company = normalizeOptional(sub.Company)

	pctx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()
	if err := s.repo.Save(pctx, sub); err != nil {
		return nil, &PersistenceError{Err: err}
	}

	result := &model.SubmitResult{
		Persisted:    true,
		SubmissionID: sub.ID,
	}

	nctx, ncancel := context.WithTimeout(ctx, notifyTimeout)
	defer ncancel()
	emailID, err := s.mailer.SendEmail(nctx, buildNotification(sub, s.cfg))
	if err == nil {
		result.Notified = true
		result.EmailID = emailID
		slog.Info("contact notification sent", "submission_id", sub.ID, "email_id", emailID)
		return result, nil
	}

	result.Warning = notifyFailedWarning

	var provErr *resend.ProviderError
	switch {
	case errors.As(err, &provErr):
		slog.Error("contact notification rejected by provider", "submission_id", sub.ID, "error", err)
		if s.cfg.NotifyFailureFatal {
			return result, &NotificationError{Err: err}
		}
	case errors.Is(err, resend.ErrNotConfigured):
		slog.Warn("contact notification skipped: email client not configured", "submission_id", sub.ID)
	default:
		// Transport failure or timeout reaching the provider.
		slog.Error("contact notification failed", "submission_id", sub.ID, "error", err)
	}
	return result, nil
}

// validateSubmission enforces required-field presence. Presence is judged
// on trimmed text, but the stored values are never modified: persisted
// content must match the submitter's input byte for byte.
func validateSubmission(sub *model.Submission) error {
	if strings.TrimSpace(sub.Name) == "" {
		return &ValidationError{Code: "name_required"}
	}
	if strings.TrimSpace(sub.Email) == "" {
		return &ValidationError{Code: "email_required"}
	}
	if strings.TrimSpace(sub.Message) == "" {
		return &ValidationError{Code: "message_required"}
	}
	if len([]rune(sub.Message)) > maxMessageLength {
		return &ValidationError{Code: "message_too_long"}
	}
	return nil
}

// normalizeOptional maps a blank optional field to an explicit absent
// marker (nil) so it is stored as SQL NULL, never as an empty string.
func normalizeOptional(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}

// buildNotification composes the operator email for one submission.
// The submitter's address goes into reply-to so the operator can answer
// directly from their inbox.
func buildNotification(sub *model.Submission, cfg ContactConfig) resend.SendParams {
	return resend.SendParams{
		From:    cfg.From,
		To:      []string{cfg.To},
		ReplyTo: sub.Email,
		Subject: "New Contact Message from " + sub.Name,
		HTML:    renderNotificationHTML(sub),
		Text:    renderNotificationText(sub),
	}
}

func renderNotificationHTML(sub *model.Submission) string {
	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>\n")
	b.WriteString("<p><strong>Name:</strong> " + html.EscapeString(sub.Name) + "</p>\n")
	b.WriteString("<p><strong>Email:</strong> " + html.EscapeString(sub.Email) + "</p>\n")
	b.WriteString("<p><strong>Phone:</strong> " + optionalHTML(sub.Phone) + "</p>\n")
	b.WriteString("<p><strong>Company:</strong> " + optionalHTML(sub.Company) + "</p>\n")
	b.WriteString("<p><strong>Message:</strong></p>\n")
	// Preserve the submitter's line breaks in the HTML body.
	msg := strings.ReplaceAll(html.EscapeString(sub.Message), "\n", "<br>")
	b.WriteString("<p>" + msg + "</p>\n")
	b.WriteString("<hr>\n")
	b.WriteString("<p><em>This message was sent through the Hayat Flour Mills contact form.</em></p>\n")
	return b.String()
}

func renderNotificationText(sub *model.Submission) string {
	var b strings.Builder
	b.WriteString("New Contact Form Submission\n\n")
	b.WriteString("Name: " + sub.Name + "\n")
	b.WriteString("Email: " + sub.Email + "\n")
	b.WriteString("Phone: " + optionalText(sub.Phone) + "\n")
	b.WriteString("Company: " + optionalText(sub.Company) + "\n\n")
	b.WriteString("Message:\n" + sub.Message + "\n")
	return b.String()
}

func optionalHTML(p *string) string {
	if p == nil {
		return "Not provided"
	}
	return html.EscapeString(*p)
}

func optionalText(p *string) string {
	if p == nil {
		return "Not provided"
	}
	return *p
}
