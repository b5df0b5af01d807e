package api

import (
	authUsecase "bookmarks-backend/internal/auth/usecase"
	bookmarkUsecase "bookmarks-backend/internal/bookmark/usecase"
	userUsecase "bookmarks-backend/internal/user/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type Handler struct {
	authUsecase     authUsecase.AuthUsecase
	userUsecase     userUsecase.UserUsecase
	bookmarkUsecase bookmarkUsecase.BookmarkUsecase
}

func NewHandler(authUc authUsecase.AuthUsecase, userUc userUsecase.UserUsecase, bookmarkUc bookmarkUsecase.BookmarkUsecase) *Handler {
	return &Handler{
		authUsecase:     authUc,
		userUsecase:     userUc,
		bookmarkUsecase: bookmarkUc,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// Request bodies are a strict whitelist: any unknown field fails
	// binding with a 400 before a handler runs.
	binding.EnableDecoderDisallowUnknownFields = true

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.userUsecase, h.bookmarkUsecase)

	return r.Run(addr)
}
