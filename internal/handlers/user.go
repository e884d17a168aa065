package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Rampandiyar/Volunteer/internal/dto"
	apierrors "github.com/Rampandiyar/Volunteer/internal/errors"
	"github.com/Rampandiyar/Volunteer/internal/models"
	"github.com/Rampandiyar/Volunteer/internal/services"
)

// UserHandler serves the user directory and profile endpoints.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListAll returns every user for the volunteer directory and the
// notification recipient picker.
func (h *UserHandler) ListAll(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

// GetByID returns one user row.
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user id")
		return
	}

	user, err := h.userService.GetUser(uint(id))
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Update applies profile edits. Role and password fields in the payload
// are ignored: they cannot be changed through a profile edit.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user id")
		return
	}

	type UpdateUserRequest struct {
		Username     string           `json:"username"`
		Email        string           `json:"email"`
		Phone        string           `json:"phone"`
		Year         string           `json:"year"`
		Department   string           `json:"department"`
		Skills       models.SkillList `json:"skills"`
		Interests    string           `json:"interests"`
		Availability string           `json:"availability"`
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateProfile(uint(id), services.ProfileInput{
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		Year:         req.Year,
		Department:   req.Department,
		Skills:       req.Skills,
		Interests:    req.Interests,
		Availability: req.Availability,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Stats returns a volunteer's assignment totals for the dashboard.
func (h *UserHandler) Stats(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user id")
		return
	}

	total, completed, hours, err := h.userService.Stats(uint(id))
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TaskStatistics{
		TotalTasks:       total,
		CompletedTasks:   completed,
		TotalHoursLogged: hours,
	})
}
