// Package resend provides a lightweight Resend API client for sending
// transactional email. Uses raw HTTP calls (no SDK) to minimize external
// dependencies.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// defaultBaseURL is the Resend API endpoint. Overridable for tests.
const defaultBaseURL = "https://api.resend.com"

// SendParams carries the fields of one outbound email.
type SendParams struct {
	From    string   // sender, e.g. "Hayat Flour Mills <info@hayatflourmills.com>"
	To      []string // recipient addresses
	ReplyTo string   // optional reply-to address
	Subject string
	HTML    string
	Text    string // optional plain-text alternative
}

// Client is the transactional-email interface.
type Client interface {
	// SendEmail delivers one email and returns the provider-assigned email ID.
	SendEmail(ctx context.Context, params SendParams) (string, error)
}

// ErrNotConfigured is returned when no API key is configured.
var ErrNotConfigured = errors.New("resend: not configured")

// ProviderError is an explicit rejection from the Resend API
// (invalid sender, quota exceeded, etc.), as opposed to a transport
// failure reaching the API at all.
type ProviderError struct {
	StatusCode int
	Name       string
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("resend: %s (status %d): %s", e.Name, e.StatusCode, e.Message)
}

// RealClient is the raw HTTP client implementation against the Resend API.
type RealClient struct {
	APIKey     string
	BaseURL    string
	httpClient *http.Client
}

// NewClient creates a RealClient. An empty apiKey is allowed; SendEmail
// then fails with ErrNotConfigured at first use instead of crashing the
// process at startup.
func NewClient(apiKey string) *RealClient {
	return &RealClient{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Ensure RealClient implements Client at compile time.
var _ Client = (*RealClient)(nil)

// SendEmail POSTs to /emails and returns the email ID from the response.
func (c *RealClient) SendEmail(ctx context.Context, params SendParams) (string, error) {
	if c.APIKey == "" {
		return "", ErrNotConfigured
	}

	body := map[string]any{
		"from":    params.From,
		"to":      params.To,
		"subject": params.Subject,
		"html":    params.HTML,
	}
	if params.ReplyTo != "" {
		body["reply_to"] = params.ReplyTo
	}
	if params.Text != "" {
		body["text"] = params.Text
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/emails", bytes.NewReader(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("resend send: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("resend send: decode response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return "", &ProviderError{
			StatusCode: resp.StatusCode,
			Name:       result.Name,
			Message:    result.Message,
		}
	}
	if result.ID == "" {
		return "", errors.New("resend send: empty email ID in response")
	}
	return result.ID, nil
}
