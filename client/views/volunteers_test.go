package views

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rampandiyar/Volunteer/internal/dto"
	"github.com/Rampandiyar/Volunteer/internal/models"
)

func directoryFixture() *VolunteerDirectory {
	return &VolunteerDirectory{Users: []dto.UserDTO{
		{UserID: 1, Username: "Ana Torres", Skills: models.SkillList{"cooking", "first aid"}, Availability: "Weekends", Department: "Logistics"},
		{UserID: 2, Username: "Ben Okafor", Skills: models.SkillList{"driving"}, Availability: "Weekdays", Department: "Transport"},
		{UserID: 3, Username: "Anaya Patel", Skills: models.SkillList{"First Aid"}, Availability: "Weekends", Department: "Medical"},
	}}
}

func TestVolunteerDirectoryLoad(t *testing.T) {
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/users/all", r.URL.Path)
		writeJSON(t, w, []dto.UserDTO{{UserID: 1, Username: "ana"}})
	}))

	v := NewVolunteerDirectory(api)
	require.NoError(t, v.Load(context.Background()))
	assert.Len(t, v.Users, 1)
}

func TestVolunteerDirectoryFilterByName(t *testing.T) {
	v := directoryFixture()

	matches := v.Filter(VolunteerFilter{Search: "ana"})
	require.Len(t, matches, 2)
	assert.Equal(t, uint(1), matches[0].UserID)
	assert.Equal(t, uint(3), matches[1].UserID)
}

func TestVolunteerDirectoryFilterBySkillIsCaseInsensitive(t *testing.T) {
	v := directoryFixture()

	matches := v.Filter(VolunteerFilter{Skill: "first aid"})
	require.Len(t, matches, 2)

	matches = v.Filter(VolunteerFilter{Skill: "FIRST AID"})
	assert.Len(t, matches, 2)
}

func TestVolunteerDirectoryFilterCombinesCriteria(t *testing.T) {
	v := directoryFixture()

	matches := v.Filter(VolunteerFilter{
		Search:       "ana",
		Skill:        "first aid",
		Availability: "weekends",
		Department:   "medical",
	})
	require.Len(t, matches, 1)
	assert.Equal(t, uint(3), matches[0].UserID)
}

func TestVolunteerDirectoryEmptyFilterReturnsAll(t *testing.T) {
	v := directoryFixture()
	assert.Len(t, v.Filter(VolunteerFilter{}), 3)
}
