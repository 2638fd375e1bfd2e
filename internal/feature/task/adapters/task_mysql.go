// Package adapters provides the repository implementations for the task feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskplanner_backend/internal/feature/task/domain/entity"
	"taskplanner_backend/internal/feature/task/usecase"
)

// taskMySQL is the MySQL implementation of the TaskRepository interface,
// backed by GORM.
type taskMySQL struct {
	db *gorm.DB
}

// Compile-time check that taskMySQL implements TaskRepository.
var _ usecase.TaskRepository = (*taskMySQL)(nil)

// NewTaskMySQL creates a new taskMySQL instance with the given gorm.DB
// connection.
func NewTaskMySQL(db *gorm.DB) *taskMySQL {
	return &taskMySQL{db: db}
}

// Create inserts a task into the database.
func (r *taskMySQL) Create(ctx context.Context, t *entity.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// FindByID retrieves a task by ID.
// It returns usecase.ErrTaskNotFound when the task does not exist.
func (r *taskMySQL) FindByID(ctx context.Context, id uint) (*entity.Task, error) {
	var t entity.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindVisible retrieves every task created by the user or assigned to the
// user's email.
func (r *taskMySQL) FindVisible(ctx context.Context, creatorID uint, email string) ([]entity.Task, error) {
	var tasks []entity.Task
	err := r.db.WithContext(ctx).
		Where("created_by = ? OR assigned_to = ?", creatorID, email).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByCreator retrieves every task created by the user.
func (r *taskMySQL) FindByCreator(ctx context.Context, creatorID uint) ([]entity.Task, error) {
	var tasks []entity.Task
	err := r.db.WithContext(ctx).
		Where("created_by = ?", creatorID).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Save persists changes to an existing task. GORM refreshes UpdatedAt.
func (r *taskMySQL) Save(ctx context.Context, t *entity.Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// Delete removes a task by ID.
func (r *taskMySQL) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Task{}, id).Error
}
