package repositories

import (
	"errors"

	"permitdesk/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the database operations backing staff auth.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	IncrementTokenVersion(userID uint) error
}
