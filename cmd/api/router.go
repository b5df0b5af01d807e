package api

import (
	"net/http"

	authDelivery "bookmarks-backend/internal/auth/delivery"
	authUsecase "bookmarks-backend/internal/auth/usecase"
	bookmarkDelivery "bookmarks-backend/internal/bookmark/delivery"
	bookmarkUsecase "bookmarks-backend/internal/bookmark/usecase"
	userDelivery "bookmarks-backend/internal/user/delivery"
	userUsecase "bookmarks-backend/internal/user/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, userUc userUsecase.UserUsecase, bookmarkUc bookmarkUsecase.BookmarkUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	userHandler := userDelivery.NewUserHandler(userUc)
	bookmarkHandler := bookmarkDelivery.NewBookmarkHandler(bookmarkUc)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
	}

	// User routes (protected)
	users := r.Group("/users")
	users.Use(authDelivery.AuthMiddleware(authUc))
	{
		users.GET("/me", userHandler.GetMe)
		users.PATCH("", userHandler.EditUser)
	}

	// Bookmark routes (protected)
	bookmarks := r.Group("/bookmarks")
	bookmarks.Use(authDelivery.AuthMiddleware(authUc))
	{
		bookmarks.GET("", bookmarkHandler.GetBookmarks)
		bookmarks.GET("/:id", bookmarkHandler.GetBookmarkByID)
		bookmarks.POST("", bookmarkHandler.CreateBookmark)
		bookmarks.PATCH("/:id", bookmarkHandler.EditBookmark)
		bookmarks.DELETE("/:id", bookmarkHandler.DeleteBookmark)
	}
}
