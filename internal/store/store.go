package store

import (
	"context"
	"errors"

	"github.com/passgate/passgate-go/internal/model"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("email already registered")
)

// UserStore is keyed storage of user records. Implementations must lowercase
// the email key before comparison and storage, and Create must be atomic with
// respect to the uniqueness check. No update or delete: a record's identity is
// immutable once created.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
