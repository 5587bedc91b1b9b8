package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/passgate/passgate-go/internal/crypto"
	"github.com/passgate/passgate-go/internal/model"
	"github.com/passgate/passgate-go/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrEmailInvalid       = errors.New("email must be a valid address")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrEmailTaken         = errors.New("user already exists")
)

// MinPasswordLength is the minimum accepted registration password length,
// counted in characters, not bytes.
const MinPasswordLength = 8

// AuthService orchestrates registration, login and profile lookup over the
// user store, the password hasher and the token signer.
type AuthService struct {
	store     store.UserStore
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(s store.UserStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		store:     s,
		jwtSecret: secret,
		tokenTTL:  ttl,
	}
}

// Register validates the request, hashes the password and creates the user
// record under the lowercased email. Validation happens before any store
// mutation. The created record is not returned: the hash never leaves the
// service.
func (s *AuthService) Register(ctx context.Context, req model.CreateUserRequest) error {
	if !validEmail(req.Email) {
		return ErrEmailInvalid
	}
	if utf8.RuneCountInString(req.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
		ProfileInfo:  req.ProfileInfo,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			return ErrEmailTaken
		}
		return err
	}

	return nil
}

// Login verifies the credentials and issues a bearer token whose subject is
// the stored email. Unknown user and wrong password collapse into the same
// ErrInvalidCredentials so the outcome does not reveal whether the account
// exists.
func (s *AuthService) Login(ctx context.Context, username, password string) (model.TokenResponse, error) {
	user, err := s.store.GetByEmail(ctx, strings.ToLower(username))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return model.TokenResponse{}, ErrInvalidCredentials
		}
		return model.TokenResponse{}, err
	}

	match, err := crypto.VerifyPassword(password, user.PasswordHash)
	if err != nil || !match {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.Email, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// Profile returns the response-safe view of a user record.
func (s *AuthService) Profile(user *model.User) model.ProfileResponse {
	return model.ProfileResponse{
		Email:       user.Email,
		ProfileInfo: user.ProfileInfo,
	}
}

// validEmail accepts addresses with a non-empty local part and domain. Full
// RFC validation is out of scope; this catches empty and structurally broken
// input before it becomes a store key.
func validEmail(email string) bool {
	local, domain, found := strings.Cut(email, "@")
	return found && local != "" && domain != "" && !strings.ContainsAny(domain, " ") && strings.Contains(domain, ".")
}
