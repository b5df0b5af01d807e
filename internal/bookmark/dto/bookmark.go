package dto

type CreateBookmarkRequest struct {
	Title       string `json:"title" binding:"required"`
	Link        string `json:"link" binding:"required,url"`
	Description string `json:"description"`
}

// EditBookmarkRequest carries partial updates; nil fields are left as is.
type EditBookmarkRequest struct {
	Title       *string `json:"title"`
	Link        *string `json:"link" binding:"omitempty,url"`
	Description *string `json:"description"`
}
