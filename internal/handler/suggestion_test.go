package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/passgate/passgate-go/internal/service"
)

func newSuggestionRequest(body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(http.MethodPost, "/users/password-suggestion", nil)
	}
	return httptest.NewRequest(http.MethodPost, "/users/password-suggestion", strings.NewReader(body))
}

func TestHandleSuggestDefaults(t *testing.T) {
	h := NewSuggestionHandler(service.NewSuggestionService())

	rec := httptest.NewRecorder()
	h.HandleSuggest(rec, newSuggestionRequest(""))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Password string `json:"password"`
		Length   int    `json:"length"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp.Length != 16 || len(resp.Password) != 16 {
		t.Errorf("expected 16-character default suggestion, got length %d (%q)", resp.Length, resp.Password)
	}
}

func TestHandleSuggestCustomLength(t *testing.T) {
	h := NewSuggestionHandler(service.NewSuggestionService())

	rec := httptest.NewRecorder()
	h.HandleSuggest(rec, newSuggestionRequest(`{"length":24}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestHandleSuggestValidation(t *testing.T) {
	h := NewSuggestionHandler(service.NewSuggestionService())

	tests := []struct {
		name string
		body string
	}{
		{"length too short", `{"length":3}`},
		{"length too long", `{"length":500}`},
		{"no character types", `{"length":16,"uppercase":false,"lowercase":false,"numbers":false,"symbols":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.HandleSuggest(rec, newSuggestionRequest(tt.body))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestHandleSuggestBodyTooLarge(t *testing.T) {
	h := NewSuggestionHandler(service.NewSuggestionService())

	// 2MB of padding blows past the 1MB request cap.
	body := `{"length":16,"padding":"` + strings.Repeat("a", 2<<20) + `"}`
	rec := httptest.NewRecorder()
	h.HandleSuggest(rec, newSuggestionRequest(body))

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestHandleSuggestMalformedBody(t *testing.T) {
	h := NewSuggestionHandler(service.NewSuggestionService())

	rec := httptest.NewRecorder()
	h.HandleSuggest(rec, newSuggestionRequest(`{"length":`))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
