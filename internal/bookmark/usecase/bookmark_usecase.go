package usecase

import (
	"bookmarks-backend/internal/bookmark/domain"
	bookmarkdto "bookmarks-backend/internal/bookmark/dto"
	"bookmarks-backend/internal/bookmark/repository"
)

// bookmarkUsecase implements BookmarkUsecase interface
type bookmarkUsecase struct {
	bookmarkRepo repository.BookmarkRepository
}

// NewBookmarkUsecase creates a new instance of bookmarkUsecase
func NewBookmarkUsecase(bookmarkRepo repository.BookmarkRepository) BookmarkUsecase {
	return &bookmarkUsecase{
		bookmarkRepo: bookmarkRepo,
	}
}

func (u *bookmarkUsecase) GetBookmarks(userID string) ([]domain.Bookmark, error) {
	return u.bookmarkRepo.FindByUserID(userID)
}

func (u *bookmarkUsecase) GetBookmarkByID(userID, bookmarkID string) (*domain.Bookmark, error) {
	bookmark, err := u.bookmarkRepo.FindByID(userID, bookmarkID)
	if err != nil {
		return nil, err
	}
	if bookmark == nil {
		return nil, ErrBookmarkNotFound
	}
	return bookmark, nil
}

func (u *bookmarkUsecase) CreateBookmark(userID string, req *bookmarkdto.CreateBookmarkRequest) (*domain.Bookmark, error) {
	bookmark := &domain.Bookmark{
		UserID:      userID,
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	}

	if err := u.bookmarkRepo.Create(bookmark); err != nil {
		return nil, err
	}

	return bookmark, nil
}

func (u *bookmarkUsecase) EditBookmark(userID, bookmarkID string, req *bookmarkdto.EditBookmarkRequest) (*domain.Bookmark, error) {
	bookmark, err := u.GetBookmarkByID(userID, bookmarkID)
	if err != nil {
		return nil, err
	}

	// Only provided keys overwrite; absent fields keep their stored value.
	if req.Title != nil {
		bookmark.Title = *req.Title
	}
	if req.Link != nil {
		bookmark.Link = *req.Link
	}
	if req.Description != nil {
		bookmark.Description = *req.Description
	}

	if err := u.bookmarkRepo.Update(bookmark); err != nil {
		return nil, err
	}

	return bookmark, nil
}

func (u *bookmarkUsecase) DeleteBookmark(userID, bookmarkID string) error {
	deleted, err := u.bookmarkRepo.Delete(userID, bookmarkID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBookmarkNotFound
	}
	return nil
}
