package delivery

import (
	"errors"
	"net/http"

	authdelivery "bookmarks-backend/internal/auth/delivery"
	bookmarkdto "bookmarks-backend/internal/bookmark/dto"
	"bookmarks-backend/internal/bookmark/usecase"

	"github.com/gin-gonic/gin"
)

// BookmarkHandler handles bookmark HTTP requests
type BookmarkHandler struct {
	bookmarkUsecase usecase.BookmarkUsecase
}

// NewBookmarkHandler creates a new BookmarkHandler
func NewBookmarkHandler(bookmarkUsecase usecase.BookmarkUsecase) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkUsecase: bookmarkUsecase,
	}
}

// GetBookmarks returns all bookmarks of the authenticated user
// GET /bookmarks
func (h *BookmarkHandler) GetBookmarks(c *gin.Context) {
	principal := authdelivery.PrincipalFromContext(c)

	bookmarks, err := h.bookmarkUsecase.GetBookmarks(principal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookmarks)
}

// GetBookmarkByID returns a single bookmark
// GET /bookmarks/:id
func (h *BookmarkHandler) GetBookmarkByID(c *gin.Context) {
	principal := authdelivery.PrincipalFromContext(c)

	bookmark, err := h.bookmarkUsecase.GetBookmarkByID(principal.ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrBookmarkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookmark)
}

// CreateBookmark creates a new bookmark
// POST /bookmarks
func (h *BookmarkHandler) CreateBookmark(c *gin.Context) {
	principal := authdelivery.PrincipalFromContext(c)

	var req bookmarkdto.CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bookmark, err := h.bookmarkUsecase.CreateBookmark(principal.ID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, bookmark)
}

// EditBookmark partially updates a bookmark
// PATCH /bookmarks/:id
func (h *BookmarkHandler) EditBookmark(c *gin.Context) {
	principal := authdelivery.PrincipalFromContext(c)

	var req bookmarkdto.EditBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bookmark, err := h.bookmarkUsecase.EditBookmark(principal.ID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrBookmarkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookmark)
}

// DeleteBookmark deletes a bookmark
// DELETE /bookmarks/:id
func (h *BookmarkHandler) DeleteBookmark(c *gin.Context) {
	principal := authdelivery.PrincipalFromContext(c)

	if err := h.bookmarkUsecase.DeleteBookmark(principal.ID, c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrBookmarkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
