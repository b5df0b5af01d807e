package main

import (
	"log"

	api "bookmarks-backend/cmd/api"
	authdomain "bookmarks-backend/internal/auth/domain"
	authRepo "bookmarks-backend/internal/auth/repository"
	authUsecase "bookmarks-backend/internal/auth/usecase"
	bookmarkdomain "bookmarks-backend/internal/bookmark/domain"
	bookmarkRepo "bookmarks-backend/internal/bookmark/repository"
	bookmarkUsecase "bookmarks-backend/internal/bookmark/usecase"
	userUsecase "bookmarks-backend/internal/user/usecase"
	"bookmarks-backend/pkg/config"
	"bookmarks-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &bookmarkdomain.Bookmark{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewGormUserRepository(db)
	bookmarkRepository := bookmarkRepo.NewGormBookmarkRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	userUsecaseInstance := userUsecase.NewUserUsecase(userRepository)
	bookmarkUsecaseInstance := bookmarkUsecase.NewBookmarkUsecase(bookmarkRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, userUsecaseInstance, bookmarkUsecaseInstance)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
