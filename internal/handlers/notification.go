package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Rampandiyar/Volunteer/internal/dto"
	apierrors "github.com/Rampandiyar/Volunteer/internal/errors"
	"github.com/Rampandiyar/Volunteer/internal/models"
	"github.com/Rampandiyar/Volunteer/internal/repository"
)

// NotificationHandler serves the notification endpoints.
type NotificationHandler struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationRepo repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepo: notificationRepo}
}

// Send inserts one notification row and returns it.
func (h *NotificationHandler) Send(c *gin.Context) {
	type SendNotificationRequest struct {
		UserID  dto.FlexID                `json:"user_id" binding:"required"`
		Message string                    `json:"message" binding:"required"`
		Status  models.NotificationStatus `json:"status"`
	}

	var req SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "User ID and message are required")
		return
	}

	status := req.Status
	if status == "" {
		status = models.NotificationStatusSent
	}

	notification := models.Notification{
		UserID:  uint(req.UserID),
		Message: req.Message,
		Status:  status,
	}

	if err := h.notificationRepo.Create(&notification); err != nil {
		log.Printf("send notification error: %v", err)
		apierrors.InternalError(c, "Failed to send notification")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Notification sent successfully",
		"notification": notification,
	})
}

// ListByUser returns all notifications for a user, newest first. The
// path parameter carries the user id.
func (h *NotificationHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user id")
		return
	}

	notifications, err := h.notificationRepo.ListByUser(uint(userID))
	if err != nil {
		log.Printf("get notifications error: %v", err)
		apierrors.InternalError(c, "Failed to fetch notifications")
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkRead flips a single notification to Read. Re-marking an already
// read notification still succeeds; only an unknown id is a 404.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apierrors.BadRequest(c, "Invalid notification id")
		return
	}

	notification, err := h.notificationRepo.MarkRead(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Notification not found")
			return
		}
		log.Printf("mark as read error: %v", err)
		apierrors.InternalError(c, "Failed to mark notification as read")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Notification marked as read",
		"notification": notification,
	})
}

// MarkManyRead flips all listed notifications to Read in one statement
// and reports the matched count, not the rows.
func (h *NotificationHandler) MarkManyRead(c *gin.Context) {
	type MarkManyRequest struct {
		NotificationIDs []uint `json:"notification_ids" binding:"required,min=1"`
	}

	var req MarkManyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "No valid notification IDs provided")
		return
	}

	count, err := h.notificationRepo.MarkManyRead(req.NotificationIDs)
	if err != nil {
		log.Printf("mark multiple as read error: %v", err)
		apierrors.InternalError(c, "Failed to mark notifications as read")
		return
	}
	if count == 0 {
		apierrors.NotFound(c, "No notifications found for the given IDs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Notifications marked as read",
		"updated_count": count,
	})
}
