package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "taskplanner_backend/internal/feature/auth/domain/entity"
	"taskplanner_backend/internal/feature/task/domain/entity"
	"taskplanner_backend/internal/feature/task/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&authentity.User{}, &entity.Task{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func newTask(creator uint, assignedTo string) *entity.Task {
	return &entity.Task{
		Title:      "Pack bags",
		Category:   entity.CategoryToDo,
		Priority:   entity.PriorityLow,
		Checklist:  []entity.ChecklistItem{{Text: "passport"}, {Text: "tickets", Completed: true}},
		AssignedTo: assignedTo,
		DueDate:    time.Date(2024, time.July, 20, 12, 0, 0, 0, time.UTC),
		CreatedBy:  creator,
	}
}

func TestTaskMySQL_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskMySQL(db)

	task := newTask(1, "")
	require.NoError(t, repo.Create(context.Background(), task))
	assert.NotZero(t, task.ID, "ID is not set")

	found, err := repo.FindByID(context.Background(), task.ID)
	require.NoError(t, err, "failed to find task")
	assert.Equal(t, task.Title, found.Title)
	assert.Equal(t, entity.CategoryToDo, found.Category)

	// The checklist JSON column round-trips in order
	require.Len(t, found.Checklist, 2)
	assert.Equal(t, "passport", found.Checklist[0].Text)
	assert.False(t, found.Checklist[0].Completed)
	assert.Equal(t, "tickets", found.Checklist[1].Text)
	assert.True(t, found.Checklist[1].Completed)
}

func TestTaskMySQL_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskMySQL(db)

	found, err := repo.FindByID(context.Background(), 999)

	assert.Nil(t, found, "task should be nil")
	assert.ErrorIs(t, err, usecase.ErrTaskNotFound)
}

func TestTaskMySQL_FindVisible(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskMySQL(db)

	created := newTask(1, "")
	assigned := newTask(2, "me@example.com")
	foreign := newTask(2, "other@example.com")
	require.NoError(t, repo.Create(context.Background(), created))
	require.NoError(t, repo.Create(context.Background(), assigned))
	require.NoError(t, repo.Create(context.Background(), foreign))

	tasks, err := repo.FindVisible(context.Background(), 1, "me@example.com")

	require.NoError(t, err)
	require.Len(t, tasks, 2, "exactly the created and the assigned task are visible")
	ids := []uint{tasks[0].ID, tasks[1].ID}
	assert.Contains(t, ids, created.ID)
	assert.Contains(t, ids, assigned.ID)
}

func TestTaskMySQL_FindByCreator(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskMySQL(db)

	mine1 := newTask(1, "")
	mine2 := newTask(1, "")
	other := newTask(2, "")
	require.NoError(t, repo.Create(context.Background(), mine1))
	require.NoError(t, repo.Create(context.Background(), mine2))
	require.NoError(t, repo.Create(context.Background(), other))

	tasks, err := repo.FindByCreator(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestTaskMySQL_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskMySQL(db)

	task := newTask(1, "")
	require.NoError(t, repo.Create(context.Background(), task))
	createdUpdatedAt := task.UpdatedAt

	time.Sleep(10 * time.Millisecond)
	task.Title = "Repack bags"
	task.AssignedTo = "helper@example.com"
	require.NoError(t, repo.Save(context.Background(), task))

	found, err := repo.FindByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Repack bags", found.Title)
	assert.Equal(t, "helper@example.com", found.AssignedTo)
	assert.True(t, found.UpdatedAt.After(createdUpdatedAt), "UpdatedAt must be refreshed on save")
}

func TestTaskMySQL_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskMySQL(db)

	task := newTask(1, "")
	require.NoError(t, repo.Create(context.Background(), task))

	require.NoError(t, repo.Delete(context.Background(), task.ID))

	_, err := repo.FindByID(context.Background(), task.ID)
	assert.ErrorIs(t, err, usecase.ErrTaskNotFound)
}

func TestUserDirectory(t *testing.T) {
	db := setupTestDB(t)
	dir := NewUserDirectory(db)

	user := &authentity.User{Name: "Alice", Email: "alice@example.com", Password: "hash"}
	require.NoError(t, db.Create(user).Error)

	t.Run("find by id", func(t *testing.T) {
		m, err := dir.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice", m.Name)
		assert.Equal(t, "alice@example.com", m.Email)
	})

	t.Run("find by email", func(t *testing.T) {
		m, err := dir.FindByEmail(context.Background(), "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, m.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := dir.FindByID(context.Background(), 999)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := dir.FindByEmail(context.Background(), "ghost@example.com")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
