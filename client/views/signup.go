package views

import (
	"context"
	"errors"

	"github.com/Rampandiyar/Volunteer/client"
	"github.com/Rampandiyar/Volunteer/internal/validation"
)

// ErrSignupInvalid is returned when a submit is attempted with failing
// fields; per-field messages are in Errors.
var ErrSignupInvalid = errors.New("signup form has invalid fields")

// signupFields lists every validated field, in form order.
var signupFields = []string{"username", "email", "password", "phone", "year", "department"}

// SignupForm is the registration screen. Fields validate on blur once
// touched, and all at once on submit.
type SignupForm struct {
	api *client.Client

	Values  map[string]string
	Touched map[string]bool
	Errors  map[string]string
}

// NewSignupForm creates an empty signup form bound to the given API
// client.
func NewSignupForm(api *client.Client) *SignupForm {
	return &SignupForm{
		api:     api,
		Values:  make(map[string]string),
		Touched: make(map[string]bool),
		Errors:  make(map[string]string),
	}
}

// SetField records a field value. Already-touched fields re-validate as
// they change.
func (f *SignupForm) SetField(name, value string) {
	f.Values[name] = value
	if f.Touched[name] {
		f.validateField(name)
	}
}

// HandleBlur marks a field touched and validates it.
func (f *SignupForm) HandleBlur(name string) {
	f.Touched[name] = true
	f.validateField(name)
}

func (f *SignupForm) validateField(name string) {
	if msg := validation.Field(name, f.Values[name]); msg != "" {
		f.Errors[name] = msg
	} else {
		delete(f.Errors, name)
	}
}

// Valid reports whether every field currently passes validation.
func (f *SignupForm) Valid() bool {
	for _, name := range signupFields {
		if validation.Field(name, f.Values[name]) != "" {
			return false
		}
	}
	return true
}

// Submit validates every field, and when all pass, registers the user
// and resets the form.
func (f *SignupForm) Submit(ctx context.Context) error {
	for _, name := range signupFields {
		f.Touched[name] = true
		f.validateField(name)
	}
	if len(f.Errors) > 0 {
		return ErrSignupInvalid
	}

	_, err := f.api.Signup(ctx, client.SignupInput{
		Username:   f.Values["username"],
		Email:      f.Values["email"],
		Password:   f.Values["password"],
		Phone:      f.Values["phone"],
		Year:       f.Values["year"],
		Department: f.Values["department"],
	})
	if err != nil {
		return err
	}

	f.Values = make(map[string]string)
	f.Touched = make(map[string]bool)
	f.Errors = make(map[string]string)
	return nil
}
