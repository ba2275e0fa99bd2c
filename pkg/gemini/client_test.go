package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-calendar-assistant/pkg/gemini"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *gemini.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c := gemini.NewClient("test-key")
	c.SetAPIURL(ts.URL)
	return c
}

func TestGenerateText(t *testing.T) {
	var gotReq gemini.GenerateRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(gemini.GenerateResponse{
			Candidates: []gemini.Candidate{
				{Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: "You have 2 events today."}}}},
			},
		})
	})

	text, err := c.GenerateText(context.Background(), "only answer scheduling questions", "what's on my calendar today")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "You have 2 events today." {
		t.Errorf("text = %q", text)
	}
	if gotReq.SystemInstruction == nil || gotReq.SystemInstruction.Parts[0].Text != "only answer scheduling questions" {
		t.Errorf("system instruction not forwarded: %+v", gotReq.SystemInstruction)
	}
	if len(gotReq.Contents) != 1 || gotReq.Contents[0].Parts[0].Text != "what's on my calendar today" {
		t.Errorf("prompt not forwarded: %+v", gotReq.Contents)
	}
}

func TestGenerateContentQuotaExceeded(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.GenerateContent(context.Background(), gemini.GenerateRequest{})
	if !errors.Is(err, gemini.ErrQuotaExceeded) {
		t.Fatalf("err = %v, want ErrQuotaExceeded", err)
	}
}

func TestGenerateContentServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.GenerateContent(context.Background(), gemini.GenerateRequest{})
	if err == nil {
		t.Fatalf("expected error for 500 response")
	}
	if errors.Is(err, gemini.ErrQuotaExceeded) {
		t.Fatalf("500 must not map to ErrQuotaExceeded")
	}
}

func TestResponseTextEmptyCandidates(t *testing.T) {
	var resp gemini.GenerateResponse
	if got := resp.Text(); got != "" {
		t.Errorf("Text() on empty response = %q", got)
	}
}
