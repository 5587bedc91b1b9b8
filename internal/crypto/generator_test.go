package crypto

import (
	"strings"
	"testing"
)

func TestSuggestPassword(t *testing.T) {
	tests := []struct {
		name    string
		opts    SuggestionOptions
		wantErr error
	}{
		{
			name:    "default options",
			opts:    DefaultSuggestionOptions(),
			wantErr: nil,
		},
		{
			name: "all options enabled",
			opts: SuggestionOptions{
				Length: 32, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true,
			},
			wantErr: nil,
		},
		{
			name: "lowercase only",
			opts: SuggestionOptions{
				Length: 16, Lowercase: true,
			},
			wantErr: nil,
		},
		{
			name: "minimum length",
			opts: SuggestionOptions{
				Length: MinSuggestionLength, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true,
			},
			wantErr: nil,
		},
		{
			name: "maximum length",
			opts: SuggestionOptions{
				Length: MaxSuggestionLength, Uppercase: true, Lowercase: true,
			},
			wantErr: nil,
		},
		{
			name: "length too short",
			opts: SuggestionOptions{
				Length: 4, Uppercase: true, Lowercase: true,
			},
			wantErr: ErrLengthTooShort,
		},
		{
			name: "length too long",
			opts: SuggestionOptions{
				Length: 200, Uppercase: true,
			},
			wantErr: ErrLengthTooLong,
		},
		{
			name: "no character types selected",
			opts: SuggestionOptions{
				Length: 16,
			},
			wantErr: ErrNoCharacterTypes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SuggestPassword(tt.opts)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("SuggestPassword() error = %v, want %v", err, tt.wantErr)
				}
				if result != "" {
					t.Error("SuggestPassword() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("SuggestPassword() unexpected error: %v", err)
			}
			if len(result) != tt.opts.Length {
				t.Errorf("SuggestPassword() length = %d, want %d", len(result), tt.opts.Length)
			}
		})
	}
}

func TestSuggestPasswordContainsRequiredTypes(t *testing.T) {
	opts := SuggestionOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}

	// Run multiple times to reduce flakiness from randomness.
	for i := 0; i < 50; i++ {
		password, err := SuggestPassword(opts)
		if err != nil {
			t.Fatalf("SuggestPassword() unexpected error: %v", err)
		}

		if !strings.ContainsAny(password, uppercaseChars) {
			t.Errorf("password %q missing uppercase character", password)
		}
		if !strings.ContainsAny(password, lowercaseChars) {
			t.Errorf("password %q missing lowercase character", password)
		}
		if !strings.ContainsAny(password, numberChars) {
			t.Errorf("password %q missing number character", password)
		}
		if !strings.ContainsAny(password, symbolChars) {
			t.Errorf("password %q missing symbol character", password)
		}
	}
}

func TestSuggestPasswordProducesUniquePasswords(t *testing.T) {
	opts := DefaultSuggestionOptions()
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := SuggestPassword(opts)
		if err != nil {
			t.Fatalf("SuggestPassword() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}
