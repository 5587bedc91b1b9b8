package service

import (
	"github.com/passgate/passgate-go/internal/crypto"
	"github.com/passgate/passgate-go/internal/model"
)

// SuggestionService handles password suggestion business logic.
type SuggestionService struct{}

// NewSuggestionService creates a new SuggestionService.
func NewSuggestionService() *SuggestionService {
	return &SuggestionService{}
}

// Suggest produces a password suggestion based on the given request.
func (s *SuggestionService) Suggest(req model.SuggestionRequest) (model.SuggestionResponse, error) {
	opts := crypto.SuggestionOptions{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	if opts.Length == 0 {
		opts.Length = 16
	}

	password, err := crypto.SuggestPassword(opts)
	if err != nil {
		return model.SuggestionResponse{}, err
	}

	return model.SuggestionResponse{
		Password: password,
		Length:   len(password),
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
