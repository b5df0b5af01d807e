package usecase

import (
	"errors"

	authdomain "bookmarks-backend/internal/auth/domain"
	authdto "bookmarks-backend/internal/auth/dto"
)

var (
	// ErrUserExists maps to 403 on signup, mirroring the store's unique
	// email constraint.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound and ErrInvalidCredentials both map to 403 on login.
	// The messages differ; whether that distinction is an enumeration
	// side-channel is an open question, and the observed behavior is kept.
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers malformed, tampered and expired tokens alike.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Signup hashes the password, creates the user and returns a signed token
	Signup(req *authdto.AuthRequest) (*authdto.TokenResponse, error)

	// Login verifies the credentials and returns a signed token
	Login(req *authdto.AuthRequest) (*authdto.TokenResponse, error)

	// ExtractPrincipal validates a bearer token and resolves it to a
	// request-scoped principal without touching the store
	ExtractPrincipal(token string) (*authdomain.Principal, error)
}
