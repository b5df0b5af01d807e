package usecase

import (
	"errors"

	authdomain "bookmarks-backend/internal/auth/domain"
	userdto "bookmarks-backend/internal/user/dto"
)

var (
	// ErrUserNotFound means the principal's subject row no longer exists.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is the uniqueness conflict on an email change.
	ErrEmailTaken = errors.New("email already taken")
)

// UserUsecase defines the interface for user profile business logic
type UserUsecase interface {
	// GetMe loads the full user record for the authenticated principal
	GetMe(userID string) (*authdomain.User, error)

	// EditUser applies the provided fields to the user and returns the
	// updated record
	EditUser(userID string, req *userdto.EditUserRequest) (*authdomain.User, error)
}
