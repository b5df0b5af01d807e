package usecase

import (
	"errors"
	"time"

	authdomain "bookmarks-backend/internal/auth/domain"
	authdto "bookmarks-backend/internal/auth/dto"
	"bookmarks-backend/internal/auth/repository"
	"bookmarks-backend/pkg/config"
	"bookmarks-backend/pkg/password"

	"github.com/golang-jwt/jwt/v5"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Signup(req *authdto.AuthRequest) (*authdto.TokenResponse, error) {
	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email: req.Email,
		Hash:  hash,
	}

	// Uniqueness is decided by the store's constraint, not a pre-check, so
	// two concurrent signups for the same email cannot both succeed.
	if err := u.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return u.signToken(user)
}

func (u *authUsecase) Login(req *authdto.AuthRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !password.Verify(user.Hash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return u.signToken(user)
}

func (u *authUsecase) signToken(user *authdomain.User) (*authdto.TokenResponse, error) {
	if u.config.JWTSecret == "" {
		return nil, errors.New("jwt secret is not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(u.config.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(u.config.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{AccessToken: signed}, nil
}

func (u *authUsecase) ExtractPrincipal(tokenString string) (*authdomain.Principal, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}

	return &authdomain.Principal{ID: sub, Email: email}, nil
}
