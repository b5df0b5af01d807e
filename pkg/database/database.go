package database

import (
	"bookmarks-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresConnection opens the gorm connection used by all repositories.
// TranslateError lets callers match dialect-agnostic errors such as
// gorm.ErrDuplicatedKey on unique constraint violations.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
}
