package usecase

import (
	"errors"

	"bookmarks-backend/internal/bookmark/domain"
	bookmarkdto "bookmarks-backend/internal/bookmark/dto"
)

// ErrBookmarkNotFound covers both a missing row and a row owned by another
// user. The two are deliberately indistinguishable to the caller so that
// foreign ids cannot be probed.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// BookmarkUsecase defines the interface for bookmark business logic.
// Every operation is scoped by the caller's principal id.
type BookmarkUsecase interface {
	// GetBookmarks returns all bookmarks of the user
	GetBookmarks(userID string) ([]domain.Bookmark, error)

	// GetBookmarkByID retrieves one bookmark (with ownership check)
	GetBookmarkByID(userID, bookmarkID string) (*domain.Bookmark, error)

	// CreateBookmark persists a new bookmark owned by the user
	CreateBookmark(userID string, req *bookmarkdto.CreateBookmarkRequest) (*domain.Bookmark, error)

	// EditBookmark applies the provided fields to an owned bookmark
	EditBookmark(userID, bookmarkID string, req *bookmarkdto.EditBookmarkRequest) (*domain.Bookmark, error)

	// DeleteBookmark removes an owned bookmark
	DeleteBookmark(userID, bookmarkID string) error
}
