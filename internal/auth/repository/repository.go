package repository

import (
	"errors"

	authdomain "bookmarks-backend/internal/auth/domain"
)

// ErrDuplicateEmail is returned by Create and Update when the email column's
// unique constraint rejects the row.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines the interface for user data access.
// Lookups report a missing row as (nil, nil).
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	Update(user *authdomain.User) error
}
