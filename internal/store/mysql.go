package store

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/passgate/passgate-go/internal/model"
)

// MySQLStore is a UserStore backed by a MySQL users table. The primary key on
// the email column makes Create an atomic insert-if-absent.
type MySQLStore struct {
	db *sql.DB
}

// NewDB creates a MySQL connection pool for the given DSN.
func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		slog.Warn("database ping failed — continuing without DB", "error", err)
	}

	return db, nil
}

// NewMySQLStore creates a MySQLStore on top of an open connection pool.
func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// Create inserts a new user, failing with ErrUserExists on a duplicate email.
func (s *MySQLStore) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (email, password_hash, profile_info) VALUES (?, ?, ?)`

	email := strings.ToLower(user.Email)
	_, err := s.db.ExecContext(ctx, query, email, user.PasswordHash, user.ProfileInfo)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrUserExists
		}
		return err
	}

	user.Email = email
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	return nil
}

// GetByEmail retrieves a user by their email address.
func (s *MySQLStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT email, password_hash, profile_info, created_at FROM users WHERE email = ?`

	user := &model.User{}
	err := s.db.QueryRowContext(ctx, query, strings.ToLower(email)).Scan(
		&user.Email, &user.PasswordHash, &user.ProfileInfo, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// isDuplicateEntryError checks if a MySQL error is a duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
