package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Rampandiyar/Volunteer/internal/dto"
	apierrors "github.com/Rampandiyar/Volunteer/internal/errors"
	"github.com/Rampandiyar/Volunteer/internal/models"
	"github.com/Rampandiyar/Volunteer/internal/repository"
)

// AssignmentHandler serves the assignment CRUD endpoints.
type AssignmentHandler struct {
	assignmentRepo repository.AssignmentRepository
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(assignmentRepo repository.AssignmentRepository) *AssignmentHandler {
	return &AssignmentHandler{assignmentRepo: assignmentRepo}
}

// Create creates a new assignment. Task and user ids are required and
// arrive as numbers or numeric strings; status defaults to Assigned.
func (h *AssignmentHandler) Create(c *gin.Context) {
	type CreateAssignmentRequest struct {
		TaskID     dto.FlexID `json:"task_id" binding:"required"`
		UserID     dto.FlexID `json:"user_id" binding:"required"`
		Status     string     `json:"status"`
		AssignedAt *time.Time `json:"assigned_at"`
	}

	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Task ID and User ID are required")
		return
	}

	status := req.Status
	if status == "" {
		status = models.AssignmentStatusDefault
	}
	assignedAt := time.Now()
	if req.AssignedAt != nil {
		assignedAt = *req.AssignedAt
	}

	assignment := models.Assignment{
		TaskID:     uint(req.TaskID),
		UserID:     uint(req.UserID),
		Status:     status,
		AssignedAt: assignedAt,
	}

	if err := h.assignmentRepo.Create(&assignment); err != nil {
		log.Printf("create assignment error: %v", err)
		apierrors.InternalError(c, "Failed to create assignment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Assignment created successfully",
		"assignment": assignment,
	})
}

// List returns all assignments for the admin table.
func (h *AssignmentHandler) List(c *gin.Context) {
	assignments, err := h.assignmentRepo.List()
	if err != nil {
		log.Printf("list assignments error: %v", err)
		apierrors.InternalError(c, "Failed to fetch assignments")
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// Update applies partial fields to an assignment. An empty status falls
// back to Assigned.
func (h *AssignmentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apierrors.BadRequest(c, "Invalid assignment id")
		return
	}

	type UpdateAssignmentRequest struct {
		TaskID      dto.FlexID `json:"task_id"`
		UserID      dto.FlexID `json:"user_id"`
		Status      string     `json:"status"`
		HoursLogged *int       `json:"hours_logged"`
		AssignedAt  *time.Time `json:"assigned_at"`
	}

	var req UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	assignment, err := h.assignmentRepo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Assignment not found")
			return
		}
		log.Printf("find assignment error: %v", err)
		apierrors.InternalError(c, "Failed to fetch assignment")
		return
	}

	if req.TaskID != 0 {
		assignment.TaskID = uint(req.TaskID)
	}
	if req.UserID != 0 {
		assignment.UserID = uint(req.UserID)
	}
	if req.Status != "" {
		assignment.Status = req.Status
	} else {
		assignment.Status = models.AssignmentStatusDefault
	}
	if req.HoursLogged != nil {
		assignment.HoursLogged = *req.HoursLogged
	}
	if req.AssignedAt != nil {
		assignment.AssignedAt = *req.AssignedAt
	}

	if err := h.assignmentRepo.Update(assignment); err != nil {
		log.Printf("update assignment error: %v", err)
		apierrors.InternalError(c, "Failed to update assignment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Assignment updated successfully",
		"assignment": assignment,
	})
}

// Delete removes an assignment.
func (h *AssignmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apierrors.BadRequest(c, "Invalid assignment id")
		return
	}

	if _, err := h.assignmentRepo.FindByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Assignment not found")
			return
		}
		log.Printf("find assignment error: %v", err)
		apierrors.InternalError(c, "Failed to fetch assignment")
		return
	}

	if err := h.assignmentRepo.Delete(uint(id)); err != nil {
		log.Printf("delete assignment error: %v", err)
		apierrors.InternalError(c, "Failed to delete assignment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Assignment deleted successfully"})
}
