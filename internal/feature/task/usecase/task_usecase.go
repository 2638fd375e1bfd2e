package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskplanner_backend/internal/feature/task/domain/entity"
)

// TaskRepository abstracts the persistence layer for task entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type TaskRepository interface {
	// Create persists a new task.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves the task with the given ID.
	// It returns ErrTaskNotFound when no such task exists.
	FindByID(ctx context.Context, id uint) (*entity.Task, error)

	// FindVisible retrieves every task created by the user or assigned to
	// the user's email.
	FindVisible(ctx context.Context, creatorID uint, email string) ([]entity.Task, error)

	// FindByCreator retrieves every task created by the user.
	FindByCreator(ctx context.Context, creatorID uint) ([]entity.Task, error)

	// Save persists changes to an existing task, refreshing UpdatedAt.
	Save(ctx context.Context, task *entity.Task) error

	// Delete removes the task with the given ID.
	Delete(ctx context.Context, id uint) error
}

// Member is the subset of a user account the task feature needs.
type Member struct {
	ID    uint
	Name  string
	Email string
}

// UserDirectory resolves user accounts for visibility and assignment checks.
type UserDirectory interface {
	// FindByID retrieves the member with the given user ID.
	// It returns ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id uint) (*Member, error)

	// FindByEmail retrieves the member owning the given email address.
	// It returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*Member, error)
}

// CreateParams carries the fields of a task creation request.
type CreateParams struct {
	Title      string
	Category   entity.Category
	Priority   entity.Priority
	Checklist  []entity.ChecklistItem
	DueDate    time.Time
	AssignedTo string
}

// EditParams carries the optional fields of a task edit. Zero values (nil
// for Checklist and DueDate) mean "leave unchanged".
type EditParams struct {
	Title      string
	Category   entity.Category
	Priority   entity.Priority
	Checklist  []entity.ChecklistItem
	DueDate    *time.Time
	AssignedTo string
}

// Analytics holds the per-user task counts bucketed by category and
// priority, plus the number of overdue tasks.
type Analytics struct {
	BacklogTasks     int `json:"backlogTasks"`
	ToDoTasks        int `json:"toDoTasks"`
	InProgressTasks  int `json:"inProgressTasks"`
	CompletedTasks   int `json:"completedTasks"`
	LowPriority      int `json:"lowPriority"`
	ModeratePriority int `json:"moderatePriority"`
	HighPriority     int `json:"highPriority"`
	DueDateTasks     int `json:"dueDateTasks"`
}

// Due-date filter names accepted by Sort. Anything else selects tasks due
// after the end of the current month.
const (
	FilterToday     = "Today"
	FilterThisWeek  = "This Week"
	FilterThisMonth = "This Month"
)

// taskUsecase implements the task business logic.
type taskUsecase struct {
	tasks    TaskRepository
	users    UserDirectory
	frontURL string
	now      func() time.Time
}

// NewTaskUsecase creates a new taskUsecase instance. frontURL is the base
// URL used to build shareable task links.
func NewTaskUsecase(tasks TaskRepository, users UserDirectory, frontURL string) *taskUsecase {
	return &taskUsecase{
		tasks:    tasks,
		users:    users,
		frontURL: frontURL,
		now:      time.Now,
	}
}

// derivePriority applies the due-date override: a moderate or low priority
// becomes high when the due date is not after now. An empty priority
// defaults to low.
func derivePriority(p entity.Priority, due, now time.Time) entity.Priority {
	if p == "" {
		p = entity.PriorityLow
	}
	if (p == entity.PriorityModerate || p == entity.PriorityLow) && !due.After(now) {
		return entity.PriorityHigh
	}
	return p
}

// Create validates and persists a new task owned by the given user.
func (u *taskUsecase) Create(ctx context.Context, userID uint, p CreateParams) (*entity.Task, error) {
	if _, err := u.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	if p.Title == "" || p.Checklist == nil || p.Priority == "" {
		return nil, ErrMissingFields
	}
	for _, item := range p.Checklist {
		if item.Text == "" {
			return nil, ErrMissingFields
		}
	}
	if p.DueDate.IsZero() {
		return nil, ErrDueDateRequired
	}

	if p.AssignedTo != "" {
		if _, err := u.users.FindByEmail(ctx, p.AssignedTo); err != nil {
			if errors.Is(err, ErrUserNotFound) {
				return nil, &AssigneeNotFoundError{Email: p.AssignedTo}
			}
			return nil, err
		}
	}

	task := &entity.Task{
		Title:      p.Title,
		Category:   p.Category,
		Priority:   derivePriority(p.Priority, p.DueDate, u.now()),
		Checklist:  p.Checklist,
		AssignedTo: p.AssignedTo,
		DueDate:    p.DueDate,
		CreatedBy:  userID,
	}
	if err := u.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// List returns every task created by or assigned to the given user.
func (u *taskUsecase) List(ctx context.Context, userID uint) ([]entity.Task, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.tasks.FindVisible(ctx, userID, user.Email)
}

// Edit applies the provided fields to an existing task. Fields are applied
// as-is; in particular the priority is not re-derived from the due date.
// The caller's identity is not checked against the task: any authenticated
// caller may edit any task by ID.
func (u *taskUsecase) Edit(ctx context.Context, taskID uint, p EditParams) (*entity.Task, error) {
	task, err := u.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if p.Title != "" {
		task.Title = p.Title
	}
	if p.Category != "" {
		task.Category = p.Category
	}
	if p.Checklist != nil {
		task.Checklist = p.Checklist
	}
	if p.DueDate != nil {
		task.DueDate = *p.DueDate
	}
	if p.Priority != "" {
		task.Priority = p.Priority
	}
	if p.AssignedTo != "" {
		if _, err := u.users.FindByEmail(ctx, p.AssignedTo); err != nil {
			if errors.Is(err, ErrUserNotFound) {
				return nil, &AssigneeNotFoundError{Email: p.AssignedTo}
			}
			return nil, err
		}
		task.AssignedTo = p.AssignedTo
	}

	if err := u.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task and returns its last snapshot.
func (u *taskUsecase) Delete(ctx context.Context, taskID uint) (*entity.Task, error) {
	task, err := u.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := u.tasks.Delete(ctx, taskID); err != nil {
		return nil, err
	}
	return task, nil
}

// Share returns a shareable frontend link for the task together with the
// task itself.
func (u *taskUsecase) Share(ctx context.Context, taskID uint) (string, *entity.Task, error) {
	task, err := u.tasks.FindByID(ctx, taskID)
	if err != nil {
		return "", nil, err
	}
	link := fmt.Sprintf("%s/#/task/%d", u.frontURL, task.ID)
	return link, task, nil
}

// GetByID retrieves a task together with its creator's name and email.
// The creator is nil when the creating account no longer resolves.
func (u *taskUsecase) GetByID(ctx context.Context, taskID uint) (*entity.Task, *Member, error) {
	task, err := u.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}

	creator, err := u.users.FindByID(ctx, task.CreatedBy)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return task, nil, nil
		}
		return nil, nil, err
	}
	return task, creator, nil
}

// Analytics computes the category, priority and overdue counts over the
// user's visible task set.
func (u *taskUsecase) Analytics(ctx context.Context, userID uint) (*Analytics, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	tasks, err := u.tasks.FindVisible(ctx, userID, user.Email)
	if err != nil {
		return nil, err
	}

	now := u.now()
	var a Analytics
	for _, t := range tasks {
		switch t.Category {
		case entity.CategoryBacklog:
			a.BacklogTasks++
		case entity.CategoryToDo:
			a.ToDoTasks++
		case entity.CategoryInProgress:
			a.InProgressTasks++
		case entity.CategoryDone:
			a.CompletedTasks++
		}
		switch t.Priority {
		case entity.PriorityLow:
			a.LowPriority++
		case entity.PriorityModerate:
			a.ModeratePriority++
		case entity.PriorityHigh:
			a.HighPriority++
		}
		if t.DueDate.Before(now) {
			a.DueDateTasks++
		}
	}
	return &a, nil
}

// AddAssignee assigns every task created by the user to the given email and
// returns the number of tasks updated. Each task is saved independently;
// a failure partway leaves the earlier saves in place.
func (u *taskUsecase) AddAssignee(ctx context.Context, userID uint, email string) (int, error) {
	if _, err := u.users.FindByEmail(ctx, email); err != nil {
		return 0, err
	}

	tasks, err := u.tasks.FindByCreator(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(tasks) == 0 {
		return 0, ErrNoTasks
	}

	updated := 0
	for i := range tasks {
		tasks[i].AssignedTo = email
		if err := u.tasks.Save(ctx, &tasks[i]); err != nil {
			return updated, fmt.Errorf("failed to assign task %d: %w", tasks[i].ID, err)
		}
		updated++
	}
	return updated, nil
}

// Sort returns the user's visible tasks filtered by a due-date window.
// Weeks start on Sunday; the default branch selects tasks due strictly
// after the end of the current month.
func (u *taskUsecase) Sort(ctx context.Context, userID uint, filter string) ([]entity.Task, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	tasks, err := u.tasks.FindVisible(ctx, userID, user.Email)
	if err != nil {
		return nil, err
	}

	now := u.now()
	loc := now.Location()
	year, month, day := now.Date()

	today := time.Date(year, month, day, 0, 0, 0, 0, loc)
	weekStart := today.AddDate(0, 0, -int(now.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Millisecond)
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Millisecond)

	keep := func(due time.Time) bool {
		due = due.In(loc)
		switch filter {
		case FilterToday:
			y, m, d := due.Date()
			return y == year && m == month && d == day
		case FilterThisWeek:
			return !due.Before(weekStart) && !due.After(weekEnd)
		case FilterThisMonth:
			return !due.Before(monthStart) && !due.After(monthEnd)
		default:
			return due.After(monthEnd)
		}
	}

	filtered := make([]entity.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t.DueDate) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}
