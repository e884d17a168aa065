package views

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rampandiyar/Volunteer/client"
	"github.com/Rampandiyar/Volunteer/internal/dto"
	"github.com/Rampandiyar/Volunteer/internal/models"
)

func TestProfileLoadUsesSessionUser(t *testing.T) {
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/users/7", r.URL.Path)
		writeJSON(t, w, dto.UserDTO{UserID: 7, Username: "ana", Role: "Volunteer"})
	}))

	p := NewProfile(api)
	require.NoError(t, p.Load(context.Background()))
	assert.Equal(t, "ana", p.User.Username)
}

func TestProfileSaveTrimsUsernameAndOmitsCredentials(t *testing.T) {
	var gotBody map[string]interface{}
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/users/7", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(t, w, dto.UserDTO{UserID: 7, Username: "ana maria", Role: "Volunteer"})
	}))

	p := NewProfile(api)
	p.User = dto.UserDTO{UserID: 7, Username: "ana", Role: "Volunteer"}

	require.NoError(t, p.Save(context.Background(), client.ProfileInput{
		Username: "  ana maria  ",
		Email:    "ana@example.com",
		Skills:   models.SkillList{"cooking"},
	}))

	assert.Equal(t, "ana maria", gotBody["username"])
	assert.NotContains(t, gotBody, "password")
	assert.NotContains(t, gotBody, "role")
	assert.Equal(t, "ana maria", p.User.Username)
}

func TestProfileSaveRejectsEmptyUsername(t *testing.T) {
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("empty username must not reach the API: %s %s", r.Method, r.URL.Path)
	}))

	p := NewProfile(api)
	p.User = dto.UserDTO{UserID: 7, Username: "ana"}

	err := p.Save(context.Background(), client.ProfileInput{Username: "   "})
	assert.ErrorIs(t, err, ErrEmptyUsername)
}
