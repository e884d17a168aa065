package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apierrors "github.com/Rampandiyar/Volunteer/internal/errors"
	"github.com/Rampandiyar/Volunteer/internal/models"
	"github.com/Rampandiyar/Volunteer/internal/repository"
)

// EventHandler serves the event endpoints.
type EventHandler struct {
	eventRepo repository.EventRepository
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventRepo repository.EventRepository) *EventHandler {
	return &EventHandler{eventRepo: eventRepo}
}

// Create adds an event.
func (h *EventHandler) Create(c *gin.Context) {
	type CreateEventRequest struct {
		Title       string    `json:"title" binding:"required"`
		Description string    `json:"description"`
		Date        time.Time `json:"date" binding:"required"`
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Title and date are required")
		return
	}

	event := models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
	}

	if err := h.eventRepo.Create(&event); err != nil {
		log.Printf("create event error: %v", err)
		apierrors.InternalError(c, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, event)
}

// List returns events soonest first.
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventRepo.List()
	if err != nil {
		log.Printf("list events error: %v", err)
		apierrors.InternalError(c, "Failed to fetch events")
		return
	}

	c.JSON(http.StatusOK, events)
}
