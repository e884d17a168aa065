package dto

import (
	"github.com/Rampandiyar/Volunteer/internal/models"
)

// UserDTO represents a user in API responses. The password column is
// never serialized.
type UserDTO struct {
	UserID       uint             `json:"user_id"`
	Username     string           `json:"username"`
	Email        string           `json:"email"`
	Role         string           `json:"role"`
	Department   string           `json:"department"`
	Year         string           `json:"year"`
	Skills       models.SkillList `json:"skills"`
	Interests    string           `json:"interests"`
	Availability string           `json:"availability"`
	Phone        string           `json:"phone"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		UserID:       user.ID,
		Username:     user.Username,
		Email:        user.Email,
		Role:         user.Role,
		Department:   user.Department,
		Year:         user.Year,
		Skills:       user.Skills,
		Interests:    user.Interests,
		Availability: user.Availability,
		Phone:        user.Phone,
	}
}

// ToUserDTOs converts a slice of users.
func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, u := range users {
		out[i] = ToUserDTO(u)
	}
	return out
}

// TaskStatistics summarizes a volunteer's workload for the dashboard.
type TaskStatistics struct {
	TotalTasks       int64 `json:"total_tasks"`
	CompletedTasks   int64 `json:"completed_tasks"`
	TotalHoursLogged int64 `json:"total_hours_logged"`
}
