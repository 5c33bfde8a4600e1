package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account. Users are provisioned by the authentication subsystem;
// this service only reads them and references them from other records.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	FullName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

var (
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrEmptyEmail    = errors.New("email cannot be empty")
)

// NewUser creates a User with a fresh identifier.
func NewUser(username, email, fullName string) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrEmptyUsername
	}
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmptyEmail
	}

	now := time.Now()
	return &User{
		ID:        uuid.New(),
		Username:  strings.ToLower(strings.TrimSpace(username)),
		Email:     strings.TrimSpace(email),
		FullName:  strings.TrimSpace(fullName),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
