package delivery

import (
	"errors"
	"net/http"

	authdelivery "bookmarks-backend/internal/auth/delivery"
	userdto "bookmarks-backend/internal/user/dto"
	"bookmarks-backend/internal/user/usecase"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user profile HTTP requests
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// GetMe returns the authenticated user
// GET /users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	principal := authdelivery.PrincipalFromContext(c)

	user, err := h.userUsecase.GetMe(principal.ID)
	if err != nil {
		// A valid token whose subject row is gone is treated as a stale
		// credential, not a missing resource.
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// EditUser updates the authenticated user's profile fields
// PATCH /users
func (h *UserHandler) EditUser(c *gin.Context) {
	principal := authdelivery.PrincipalFromContext(c)

	var req userdto.EditUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUsecase.EditUser(principal.ID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		if errors.Is(err, usecase.ErrEmailTaken) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
