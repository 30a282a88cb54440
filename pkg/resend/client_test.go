package resend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRealClient_SendEmail_NotConfigured(t *testing.T) {
	c := NewClient("") // no API key
	_, err := c.SendEmail(context.Background(), SendParams{
		From:    "test@example.com",
		To:      []string{"ops@example.com"},
		Subject: "hello",
		HTML:    "<p>hi</p>",
	})
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestRealClient_SendEmail_Success(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/emails" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "em_123"})
	}))
	defer ts.Close()

	c := NewClient("re_test_key")
	c.BaseURL = ts.URL

	id, err := c.SendEmail(context.Background(), SendParams{
		From:    "Hayat Flour Mills <info@hayatflourmills.com>",
		To:      []string{"info@hayatflourmills.com"},
		ReplyTo: "jane@x.com",
		Subject: "New Contact Message from Jane",
		HTML:    "<p>body</p>",
		Text:    "body",
	})
	if err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
	if id != "em_123" {
		t.Errorf("expected email ID em_123, got %q", id)
	}
	if gotAuth != "Bearer re_test_key" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}
	if gotBody["reply_to"] != "jane@x.com" {
		t.Errorf("expected reply_to=jane@x.com, got %v", gotBody["reply_to"])
	}
	if gotBody["subject"] != "New Contact Message from Jane" {
		t.Errorf("unexpected subject: %v", gotBody["subject"])
	}
}

func TestRealClient_SendEmail_ProviderRejection(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"name":    "validation_error",
			"message": "The from address is not verified",
		})
	}))
	defer ts.Close()

	c := NewClient("re_test_key")
	c.BaseURL = ts.URL

	_, err := c.SendEmail(context.Background(), SendParams{
		From:    "unverified@example.com",
		To:      []string{"ops@example.com"},
		Subject: "hello",
		HTML:    "<p>hi</p>",
	})
	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected *ProviderError, got %v", err)
	}
	if provErr.StatusCode != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", provErr.StatusCode)
	}
	if provErr.Message == "" {
		t.Error("expected provider message to be populated")
	}
}

func TestRealClient_SendEmail_OptionalFieldsOmitted(t *testing.T) {
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "em_456"})
	}))
	defer ts.Close()

	c := NewClient("re_test_key")
	c.BaseURL = ts.URL

	if _, err := c.SendEmail(context.Background(), SendParams{
		From:    "a@example.com",
		To:      []string{"b@example.com"},
		Subject: "s",
		HTML:    "<p>h</p>",
	}); err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
	if _, ok := gotBody["reply_to"]; ok {
		t.Error("expected reply_to to be omitted when empty")
	}
	if _, ok := gotBody["text"]; ok {
		t.Error("expected text to be omitted when empty")
	}
}

func TestRealClient_SendEmail_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // server already down

	c := NewClient("re_test_key")
	c.BaseURL = ts.URL

	_, err := c.SendEmail(context.Background(), SendParams{
		From:    "a@example.com",
		To:      []string{"b@example.com"},
		Subject: "s",
		HTML:    "<p>h</p>",
	})
	if err == nil {
		t.Fatal("expected transport error")
	}
	var provErr *ProviderError
	if errors.As(err, &provErr) {
		t.Error("transport failure must not be classified as ProviderError")
	}
}
