package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Rampandiyar/Volunteer/internal/dto"
	apierrors "github.com/Rampandiyar/Volunteer/internal/errors"
	"github.com/Rampandiyar/Volunteer/internal/models"
	"github.com/Rampandiyar/Volunteer/internal/repository"
)

// FeedbackHandler serves the feedback endpoints.
type FeedbackHandler struct {
	feedbackRepo repository.FeedbackRepository
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedbackRepo repository.FeedbackRepository) *FeedbackHandler {
	return &FeedbackHandler{feedbackRepo: feedbackRepo}
}

// Create records feedback for an assignment. Rating must be within 1-5.
func (h *FeedbackHandler) Create(c *gin.Context) {
	type CreateFeedbackRequest struct {
		AssignmentID dto.FlexID `json:"assignment_id" binding:"required"`
		UserID       dto.FlexID `json:"user_id" binding:"required"`
		Rating       int        `json:"rating" binding:"required"`
		Comment      string     `json:"comment"`
	}

	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Assignment ID, User ID and rating are required")
		return
	}

	if req.Rating < models.MinRating || req.Rating > models.MaxRating {
		apierrors.BadRequest(c, "Rating must be between 1 and 5")
		return
	}

	feedback := models.Feedback{
		AssignmentID: uint(req.AssignmentID),
		UserID:       uint(req.UserID),
		Rating:       req.Rating,
		Comment:      req.Comment,
	}

	if err := h.feedbackRepo.Create(&feedback); err != nil {
		log.Printf("create feedback error: %v", err)
		apierrors.InternalError(c, "Failed to submit feedback")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Feedback submitted successfully",
		"feedback": feedback,
	})
}

// ListByAssignment returns all feedback left on one assignment.
func (h *FeedbackHandler) ListByAssignment(c *gin.Context) {
	assignmentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apierrors.BadRequest(c, "Invalid assignment id")
		return
	}

	feedback, err := h.feedbackRepo.ListByAssignment(uint(assignmentID))
	if err != nil {
		log.Printf("list feedback error: %v", err)
		apierrors.InternalError(c, "Failed to fetch feedback")
		return
	}

	c.JSON(http.StatusOK, feedback)
}
