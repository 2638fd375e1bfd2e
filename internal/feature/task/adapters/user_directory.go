package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	authentity "taskplanner_backend/internal/feature/auth/domain/entity"
	"taskplanner_backend/internal/feature/task/usecase"
)

// userDirectory resolves user accounts from the users table for the task
// feature's visibility and assignment checks.
type userDirectory struct {
	db *gorm.DB
}

// Compile-time check that userDirectory implements UserDirectory.
var _ usecase.UserDirectory = (*userDirectory)(nil)

// NewUserDirectory creates a new userDirectory instance with the given
// gorm.DB connection.
func NewUserDirectory(db *gorm.DB) *userDirectory {
	return &userDirectory{db: db}
}

// FindByID retrieves the member with the given user ID.
// It returns usecase.ErrUserNotFound when the user does not exist.
func (r *userDirectory) FindByID(ctx context.Context, id uint) (*usecase.Member, error) {
	var u authentity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &usecase.Member{ID: u.ID, Name: u.Name, Email: u.Email}, nil
}

// FindByEmail retrieves the member owning the given email address.
// It returns usecase.ErrUserNotFound when the user does not exist.
func (r *userDirectory) FindByEmail(ctx context.Context, email string) (*usecase.Member, error) {
	var u authentity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &usecase.Member{ID: u.ID, Name: u.Name, Email: u.Email}, nil
}
