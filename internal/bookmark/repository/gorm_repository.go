package repository

import (
	"errors"
	"time"

	"bookmarks-backend/internal/bookmark/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormBookmarkRepository implements BookmarkRepository using GORM
type gormBookmarkRepository struct {
	db *gorm.DB
}

// NewGormBookmarkRepository creates a new GORM-based BookmarkRepository
func NewGormBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &gormBookmarkRepository{db: db}
}

func (r *gormBookmarkRepository) Create(bookmark *domain.Bookmark) error {
	if bookmark.ID == "" {
		bookmark.ID = uuid.New().String()
	}
	bookmark.CreatedAt = time.Now()
	bookmark.UpdatedAt = time.Now()
	return r.db.Create(bookmark).Error
}

func (r *gormBookmarkRepository) FindByUserID(userID string) ([]domain.Bookmark, error) {
	bookmarks := make([]domain.Bookmark, 0)
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}
	return bookmarks, nil
}

func (r *gormBookmarkRepository) FindByID(userID, id string) (*domain.Bookmark, error) {
	var bookmark domain.Bookmark
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&bookmark).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bookmark, nil
}

func (r *gormBookmarkRepository) Update(bookmark *domain.Bookmark) error {
	bookmark.UpdatedAt = time.Now()
	return r.db.Save(bookmark).Error
}

func (r *gormBookmarkRepository) Delete(userID, id string) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Bookmark{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
