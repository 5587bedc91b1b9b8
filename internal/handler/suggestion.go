package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/passgate/passgate-go/internal/crypto"
	"github.com/passgate/passgate-go/internal/model"
	"github.com/passgate/passgate-go/internal/service"
)

// SuggestionHandler handles HTTP requests for password suggestions.
type SuggestionHandler struct {
	service *service.SuggestionService
}

// NewSuggestionHandler creates a new SuggestionHandler.
func NewSuggestionHandler(svc *service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{service: svc}
}

// HandleSuggest handles POST /users/password-suggestion requests. The body is
// optional; an empty body yields the default suggestion.
func (h *SuggestionHandler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	var req model.SuggestionRequest
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Suggest(req)
	if err != nil {
		if isSuggestionError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func isSuggestionError(err error) bool {
	return errors.Is(err, crypto.ErrLengthTooShort) ||
		errors.Is(err, crypto.ErrLengthTooLong) ||
		errors.Is(err, crypto.ErrNoCharacterTypes) ||
		errors.Is(err, crypto.ErrLengthInsufficient)
}
