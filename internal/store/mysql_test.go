package store

import (
	"testing"
)

func TestNewMySQLStore(t *testing.T) {
	s := NewMySQLStore(nil)
	if s == nil {
		t.Fatal("expected non-nil MySQLStore")
	}
	if s.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestSentinelErrors(t *testing.T) {
	if ErrUserNotFound.Error() != "user not found" {
		t.Fatalf("unexpected error message: %s", ErrUserNotFound.Error())
	}
	if ErrUserExists.Error() != "email already registered" {
		t.Fatalf("unexpected error message: %s", ErrUserExists.Error())
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	if isDuplicateEntryError(nil) {
		t.Fatal("nil error should not be a duplicate entry error")
	}
	if isDuplicateEntryError(ErrUserNotFound) {
		t.Fatal("ErrUserNotFound should not be a duplicate entry error")
	}
}
