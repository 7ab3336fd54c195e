package postgre

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/tsukasa1111/BurgerLendar/internal/profile/repository"
	"github.com/tsukasa1111/BurgerLendar/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the profile domain.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("profile/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Migrate creates the profile table if it does not exist.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&profileRow{})
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("profile/repository/postgre.%s", method)
}
