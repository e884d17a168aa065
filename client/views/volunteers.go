package views

import (
	"context"
	"strings"

	"github.com/Rampandiyar/Volunteer/client"
	"github.com/Rampandiyar/Volunteer/internal/dto"
)

// VolunteerFilter is the directory's search criteria. Empty fields
// match everything.
type VolunteerFilter struct {
	Search       string
	Skill        string
	Availability string
	Department   string
}

// VolunteerDirectory is the admin screen listing every volunteer. All
// filtering happens in the view; the server returns the full list.
type VolunteerDirectory struct {
	api   *client.Client
	Users []dto.UserDTO
}

// NewVolunteerDirectory creates the directory bound to the given API
// client.
func NewVolunteerDirectory(api *client.Client) *VolunteerDirectory {
	return &VolunteerDirectory{api: api}
}

// Load fetches all users.
func (v *VolunteerDirectory) Load(ctx context.Context) error {
	users, err := v.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	v.Users = users
	return nil
}

func hasSkill(user dto.UserDTO, skill string) bool {
	for _, s := range user.Skills {
		if strings.EqualFold(strings.TrimSpace(s), skill) {
			return true
		}
	}
	return false
}

// Filter returns the users matching the criteria: case-insensitive name
// substring, exact skill membership, and availability/department
// substring matches.
func (v *VolunteerDirectory) Filter(filter VolunteerFilter) []dto.UserDTO {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	skill := strings.TrimSpace(filter.Skill)
	availability := strings.ToLower(strings.TrimSpace(filter.Availability))
	department := strings.ToLower(strings.TrimSpace(filter.Department))

	var out []dto.UserDTO
	for _, user := range v.Users {
		if search != "" && !strings.Contains(strings.ToLower(user.Username), search) {
			continue
		}
		if skill != "" && !hasSkill(user, skill) {
			continue
		}
		if availability != "" && !strings.Contains(strings.ToLower(user.Availability), availability) {
			continue
		}
		if department != "" && !strings.Contains(strings.ToLower(user.Department), department) {
			continue
		}
		out = append(out, user)
	}
	return out
}
