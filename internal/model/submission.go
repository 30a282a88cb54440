package model

import "time"

// Submission represents one contact-form entry awaiting persistence and
// notification. Phone and Company are nil when the submitter left them
// blank; they are stored as SQL NULL, never as empty strings.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Company   *string   `json:"company,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitResult is the outcome of one relay operation. Persisted and
// SubmissionID are set as soon as the row is durable; Notified reports
// whether the operator email went out. Warning is non-empty exactly when
// the submission was saved but the notification was not delivered.
type SubmitResult struct {
	Persisted    bool   `json:"persisted"`
	SubmissionID string `json:"submissionId,omitempty"`
	Notified     bool   `json:"notified"`
	EmailID      string `json:"emailId,omitempty"`
	Warning      string `json:"warning,omitempty"`
}
