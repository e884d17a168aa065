package views

import (
	"context"
	"errors"
	"strings"

	"github.com/Rampandiyar/Volunteer/client"
	"github.com/Rampandiyar/Volunteer/internal/dto"
)

// ErrEmptyUsername is returned when a profile save would blank the
// username.
var ErrEmptyUsername = errors.New("username cannot be empty")

// Profile is the account screen for the logged-in user.
type Profile struct {
	api  *client.Client
	User dto.UserDTO
}

// NewProfile creates the profile view bound to the given API client.
func NewProfile(api *client.Client) *Profile {
	return &Profile{api: api}
}

// Load fetches the session user's profile.
func (p *Profile) Load(ctx context.Context) error {
	user, err := p.api.GetUser(ctx, p.api.Session().UserID())
	if err != nil {
		return err
	}
	p.User = user
	return nil
}

// Save pushes profile edits. The username is trimmed and required; role
// and password never leave this view, so they cannot change here.
func (p *Profile) Save(ctx context.Context, input client.ProfileInput) error {
	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" {
		return ErrEmptyUsername
	}

	user, err := p.api.UpdateUser(ctx, p.User.UserID, input)
	if err != nil {
		return err
	}
	p.User = user
	return nil
}
