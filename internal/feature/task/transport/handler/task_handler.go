// Package handler provides the HTTP handlers for the task feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskplanner_backend/internal/api"
	"taskplanner_backend/internal/feature/task/domain/entity"
	"taskplanner_backend/internal/feature/task/transport/http/dto"
	"taskplanner_backend/internal/feature/task/usecase"
	jwtmw "taskplanner_backend/internal/platform/jwt"
)

// TaskUsecase defines the task operations consumed by this handler.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type TaskUsecase interface {
	// Create validates and persists a new task owned by the given user.
	Create(ctx context.Context, userID uint, p usecase.CreateParams) (*entity.Task, error)
	// List returns every task created by or assigned to the given user.
	List(ctx context.Context, userID uint) ([]entity.Task, error)
	// Edit applies the provided fields to an existing task.
	Edit(ctx context.Context, taskID uint, p usecase.EditParams) (*entity.Task, error)
	// Delete removes a task and returns its last snapshot.
	Delete(ctx context.Context, taskID uint) (*entity.Task, error)
	// Share returns a shareable link for the task together with the task.
	Share(ctx context.Context, taskID uint) (string, *entity.Task, error)
	// GetByID retrieves a task together with its creator.
	GetByID(ctx context.Context, taskID uint) (*entity.Task, *usecase.Member, error)
	// Analytics computes counts over the user's visible task set.
	Analytics(ctx context.Context, userID uint) (*usecase.Analytics, error)
	// AddAssignee assigns all of the user's tasks to the given email.
	AddAssignee(ctx context.Context, userID uint, email string) (int, error)
	// Sort returns the user's visible tasks filtered by a due-date window.
	Sort(ctx context.Context, userID uint, filter string) ([]entity.Task, error)
}

// TaskHandler handles the HTTP requests for task operations.
type TaskHandler struct {
	tasks TaskUsecase
}

// NewTaskHandler creates a new TaskHandler instance.
func NewTaskHandler(tasks TaskUsecase) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// taskIDParam parses the :taskId route parameter.
func taskIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("taskId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Error("invalid task id"))
		return 0, false
	}
	return uint(id), true
}

// Create handles POST /api/task.
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create task validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Error("invalid request"))
		return
	}

	userID := c.GetUint(jwtmw.ContextUserID)
	params := usecase.CreateParams{
		Title:      req.Title,
		Category:   req.Category,
		Priority:   req.Priority,
		Checklist:  req.Checklist,
		AssignedTo: req.AssignedTo,
	}
	if req.DueDate != nil {
		params.DueDate = *req.DueDate
	}

	task, err := h.tasks.Create(c.Request.Context(), userID, params)
	if err != nil {
		slog.Warn("create task failed", "error", err, "user_id", userID)
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.Error("user not found"))
			return
		}
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	slog.Info("task created", "task_id", task.ID, "user_id", userID)
	c.JSON(http.StatusCreated, dto.TaskResponse{
		Success: true,
		Message: "task created successfully",
		Task:    dto.NewTaskPayload(task),
	})
}

// List handles GET /api/task.
func (h *TaskHandler) List(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	tasks, err := h.tasks.List(c.Request.Context(), userID)
	if err != nil {
		slog.Warn("list tasks failed", "error", err, "user_id", userID)
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.Error("user not found"))
			return
		}
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.TasksResponse{
		Success: true,
		Tasks:   dto.NewTaskPayloads(tasks),
	})
}

// Edit handles PUT /api/task/:taskId.
func (h *TaskHandler) Edit(c *gin.Context) {
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	var req dto.EditTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("edit task validation failed", "error", err, "task_id", taskID)
		c.JSON(http.StatusBadRequest, api.Error("invalid request"))
		return
	}

	task, err := h.tasks.Edit(c.Request.Context(), taskID, usecase.EditParams{
		Title:      req.Title,
		Category:   req.Category,
		Priority:   req.Priority,
		Checklist:  req.Checklist,
		DueDate:    req.DueDate,
		AssignedTo: req.AssignedTo,
	})
	if err != nil {
		slog.Warn("edit task failed", "error", err, "task_id", taskID)
		if errors.Is(err, usecase.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, api.Error("task not found"))
			return
		}
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{
		Success: true,
		Message: "task updated successfully",
		Task:    dto.NewTaskPayload(task),
	})
}

// Delete handles DELETE /api/task/:taskId.
func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	task, err := h.tasks.Delete(c.Request.Context(), taskID)
	if err != nil {
		slog.Warn("delete task failed", "error", err, "task_id", taskID)
		if errors.Is(err, usecase.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, api.Error("task not found"))
			return
		}
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	slog.Info("task deleted", "task_id", taskID)
	c.JSON(http.StatusOK, dto.TaskResponse{
		Success: true,
		Message: "task deleted successfully",
		Task:    dto.NewTaskPayload(task),
	})
}

// Share handles POST /api/task/share/:taskId.
func (h *TaskHandler) Share(c *gin.Context) {
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	link, task, err := h.tasks.Share(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, api.Error("task not found"))
			return
		}
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.ShareResponse{
		Success: true,
		Message: "task shared successfully",
		Link:    link,
		Task:    dto.NewTaskPayload(task),
	})
}

// GetByID handles GET /api/task/:taskId.
func (h *TaskHandler) GetByID(c *gin.Context) {
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	task, creator, err := h.tasks.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, api.Error("task not found"))
			return
		}
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.TaskDetailResponse{
		Success: true,
		Task:    dto.NewTaskDetailPayload(task, creator),
	})
}

// Analytics handles GET /api/task/analytics.
func (h *TaskHandler) Analytics(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	if userID == 0 {
		c.JSON(http.StatusBadRequest, api.Error("user not authenticated"))
		return
	}

	analytics, err := h.tasks.Analytics(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.Error("user not found"))
			return
		}
		slog.Error("analytics failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.Error("error fetching analytics"))
		return
	}

	c.JSON(http.StatusOK, dto.AnalyticsResponse{
		Success:       true,
		AnalyticsData: *analytics,
	})
}

// AddAssignee handles POST /api/task/add.
func (h *TaskHandler) AddAssignee(c *gin.Context) {
	var req dto.AddAssigneeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error("invalid request"))
		return
	}

	userID := c.GetUint(jwtmw.ContextUserID)
	updated, err := h.tasks.AddAssignee(c.Request.Context(), userID, req.Email)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.Error(
				fmt.Sprintf("the email %s does not belong to any registered user", req.Email)))
			return
		}
		if errors.Is(err, usecase.ErrNoTasks) {
			c.JSON(http.StatusNotFound, api.Error(err.Error()))
			return
		}
		slog.Error("add assignee failed", "error", err, "user_id", userID, "email", req.Email)
		c.JSON(http.StatusInternalServerError, api.Error("error adding assignee"))
		return
	}

	slog.Info("assignee added", "user_id", userID, "email", req.Email, "tasks_updated", updated)
	c.JSON(http.StatusOK, api.Message(
		fmt.Sprintf("all %d tasks have been assigned to user with email %s", updated, req.Email)))
}

// Sort handles GET /api/task/sort.
func (h *TaskHandler) Sort(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	filter := c.Query("filter")

	tasks, err := h.tasks.Sort(c.Request.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.Error("user not found"))
			return
		}
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.TasksResponse{
		Success: true,
		Tasks:   dto.NewTaskPayloads(tasks),
	})
}
