package repository

import (
	"bookmarks-backend/internal/bookmark/domain"
)

// BookmarkRepository defines the interface for bookmark data access.
// All queries are scoped by the owning user id in a single statement, so
// a row owned by someone else is indistinguishable from a missing one.
// Lookups report no matching row as (nil, nil).
type BookmarkRepository interface {
	// Create persists a new bookmark owned by bookmark.UserID
	Create(bookmark *domain.Bookmark) error

	// FindByUserID returns all bookmarks of the owner, oldest first
	FindByUserID(userID string) ([]domain.Bookmark, error)

	// FindByID returns the bookmark only if it belongs to userID
	FindByID(userID, id string) (*domain.Bookmark, error)

	// Update saves an already ownership-checked bookmark
	Update(bookmark *domain.Bookmark) error

	// Delete removes the bookmark if it belongs to userID and reports
	// whether a row was deleted
	Delete(userID, id string) (bool, error)
}
