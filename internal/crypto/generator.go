package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// MinSuggestionLength matches the minimum accepted at registration.
	MinSuggestionLength = 8
	MaxSuggestionLength = 128
)

var (
	ErrLengthTooShort     = errors.New("password length must be at least 8")
	ErrLengthTooLong      = errors.New("password length must be at most 128")
	ErrNoCharacterTypes   = errors.New("at least one character type must be selected")
	ErrLengthInsufficient = errors.New("password length must be at least equal to the number of selected character types")
)

// SuggestionOptions configures the password suggestion generator.
type SuggestionOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultSuggestionOptions returns sensible defaults: 16 characters with all
// character types enabled.
func DefaultSuggestionOptions() SuggestionOptions {
	return SuggestionOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// SuggestPassword creates a cryptographically secure random password based on
// the given options, guaranteeing at least one character from each selected
// type.
func SuggestPassword(opts SuggestionOptions) (string, error) {
	if opts.Length < MinSuggestionLength {
		return "", ErrLengthTooShort
	}
	if opts.Length > MaxSuggestionLength {
		return "", ErrLengthTooLong
	}

	var pool string
	var requiredSets []string

	if opts.Uppercase {
		pool += uppercaseChars
		requiredSets = append(requiredSets, uppercaseChars)
	}
	if opts.Lowercase {
		pool += lowercaseChars
		requiredSets = append(requiredSets, lowercaseChars)
	}
	if opts.Numbers {
		pool += numberChars
		requiredSets = append(requiredSets, numberChars)
	}
	if opts.Symbols {
		pool += symbolChars
		requiredSets = append(requiredSets, symbolChars)
	}

	if len(requiredSets) == 0 {
		return "", ErrNoCharacterTypes
	}
	if opts.Length < len(requiredSets) {
		return "", ErrLengthInsufficient
	}

	result := make([]byte, opts.Length)

	// One character from each selected type, then fill from the full pool.
	for i, charset := range requiredSets {
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}
	for i := len(requiredSets); i < opts.Length; i++ {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
