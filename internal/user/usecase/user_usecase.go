package usecase

import (
	"errors"

	authdomain "bookmarks-backend/internal/auth/domain"
	"bookmarks-backend/internal/auth/repository"
	userdto "bookmarks-backend/internal/user/dto"
)

// userUsecase implements UserUsecase interface
type userUsecase struct {
	userRepo repository.UserRepository
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
	}
}

func (u *userUsecase) GetMe(userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *userUsecase) EditUser(userID string, req *userdto.EditUserRequest) (*authdomain.User, error) {
	user, err := u.GetMe(userID)
	if err != nil {
		return nil, err
	}

	// Only provided keys overwrite; absent fields keep their stored value.
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := u.userRepo.Update(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}
