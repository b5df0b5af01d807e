package domain

import "time"

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Hash      string    `json:"-" gorm:"not null"` // Never return the password hash in JSON
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Principal is the authenticated identity derived from a request's token.
// It lives for a single request and is built from the token claims alone,
// so its email can lag behind the users table if the account was edited
// after the token was issued.
type Principal struct {
	ID    string
	Email string
}
