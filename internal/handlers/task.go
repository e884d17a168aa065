package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apierrors "github.com/Rampandiyar/Volunteer/internal/errors"
	"github.com/Rampandiyar/Volunteer/internal/models"
	"github.com/Rampandiyar/Volunteer/internal/repository"
)

// TaskHandler serves the task CRUD endpoints and the per-user
// task+assignment listing.
type TaskHandler struct {
	taskRepo repository.TaskRepository
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskRepo repository.TaskRepository) *TaskHandler {
	return &TaskHandler{taskRepo: taskRepo}
}

// Create creates a new task. Status defaults to Pending.
func (h *TaskHandler) Create(c *gin.Context) {
	type CreateTaskRequest struct {
		TaskName       string            `json:"task_name" binding:"required"`
		Description    string            `json:"description"`
		RequiredSkills models.SkillList  `json:"required_skills"`
		Status         models.TaskStatus `json:"status"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Task name is required")
		return
	}

	status := req.Status
	if status == "" {
		status = models.TaskStatusPending
	}
	if !models.ValidTaskStatus(status) {
		apierrors.BadRequest(c, "Invalid task status")
		return
	}

	task := models.Task{
		TaskName:       req.TaskName,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Status:         status,
	}

	if err := h.taskRepo.Create(&task); err != nil {
		log.Printf("create task error: %v", err)
		apierrors.InternalError(c, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, task)
}

// List returns all tasks.
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskRepo.List()
	if err != nil {
		log.Printf("list tasks error: %v", err)
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// UserAssignments returns the task+assignment join for one user so the
// caller can present a unified view. The path parameter carries the
// user id.
func (h *TaskHandler) UserAssignments(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user id")
		return
	}

	rows, err := h.taskRepo.ListUserAssignments(uint(userID))
	if err != nil {
		log.Printf("list user assignments error: %v", err)
		apierrors.InternalError(c, "Failed to fetch assigned tasks")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// Update applies the provided fields to an existing task.
func (h *TaskHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task id")
		return
	}

	type UpdateTaskRequest struct {
		TaskName       *string            `json:"task_name"`
		Description    *string            `json:"description"`
		RequiredSkills *models.SkillList  `json:"required_skills"`
		Status         *models.TaskStatus `json:"status"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskRepo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		log.Printf("find task error: %v", err)
		apierrors.InternalError(c, "Failed to fetch task")
		return
	}

	if req.TaskName != nil {
		if *req.TaskName == "" {
			apierrors.BadRequest(c, "Task name cannot be empty")
			return
		}
		task.TaskName = *req.TaskName
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.RequiredSkills != nil {
		task.RequiredSkills = *req.RequiredSkills
	}
	if req.Status != nil {
		if !models.ValidTaskStatus(*req.Status) {
			apierrors.BadRequest(c, "Invalid task status")
			return
		}
		task.Status = *req.Status
	}

	if err := h.taskRepo.Update(task); err != nil {
		log.Printf("update task error: %v", err)
		apierrors.InternalError(c, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// Delete removes a task and its assignments.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task id")
		return
	}

	if _, err := h.taskRepo.FindByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		log.Printf("find task error: %v", err)
		apierrors.InternalError(c, "Failed to fetch task")
		return
	}

	if err := h.taskRepo.Delete(uint(id)); err != nil {
		log.Printf("delete task error: %v", err)
		apierrors.InternalError(c, "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
