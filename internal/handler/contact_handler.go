package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hayatmills/backend/internal/model"
	"github.com/hayatmills/backend/internal/service"
)

// ContactHandler handles contact form submission.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// submitResponse is the JSON response for a submission that was persisted.
// Notified is false when the row was saved but the operator email failed;
// Warning then explains the degradation.
type submitResponse struct {
	Success      bool   `json:"success"`
	SubmissionID string `json:"submissionId"`
	Notified     bool   `json:"notified"`
	EmailID      string `json:"emailId,omitempty"`
	Warning      string `json:"warning,omitempty"`
}

// Submit handles POST /api/contact.
// name, email and message are required; phone and company are optional.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	sub := &model.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   &req.Phone,
		Company: &req.Company,
		Message: req.Message,
	}

	result, err := h.contactService.Submit(r.Context(), sub)
	if err != nil {
		var valErr *service.ValidationError
		if errors.As(err, &valErr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": valErr.Code})
			return
		}

		var notifErr *service.NotificationError
		if errors.As(err, &notifErr) {
			// Fatal notification policy: the row is durable but the
			// deployment chose to report provider rejections as failures.
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "notification_failed"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "submit_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(submitResponse{
		Success:      true,
		SubmissionID: result.SubmissionID,
		Notified:     result.Notified,
		EmailID:      result.EmailID,
		Warning:      result.Warning,
	})
}
