package domain

import "time"

// Bookmark is a saved link owned by exactly one user. Every read and write
// is scoped by the owning user id; a bookmark of another user is served as
// if it did not exist.
type Bookmark struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"userId" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Link        string    `json:"link" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
