// Package validation holds the field-level rules for the signup form.
// Each validator returns an empty string when the value is acceptable and
// a human-readable message otherwise.
package validation

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	upperPattern = regexp.MustCompile(`[A-Z]`)
	lowerPattern = regexp.MustCompile(`[a-z]`)
	digitPattern = regexp.MustCompile(`[0-9]`)
)

func Username(value string) string {
	if value == "" {
		return "Name is required"
	}
	if len(value) < 2 {
		return "Name must be at least 2 characters"
	}
	return ""
}

func Email(value string) string {
	if value == "" {
		return "Email is required"
	}
	if !emailPattern.MatchString(value) {
		return "Invalid email address"
	}
	return ""
}

func Password(value string) string {
	if value == "" {
		return "Password is required"
	}
	if len(value) < 8 {
		return "Password must be at least 8 characters"
	}
	if !upperPattern.MatchString(value) {
		return "Must contain at least one uppercase letter"
	}
	if !lowerPattern.MatchString(value) {
		return "Must contain at least one lowercase letter"
	}
	if !digitPattern.MatchString(value) {
		return "Must contain at least one number"
	}
	return ""
}

func Phone(value string) string {
	if value == "" {
		return "Phone number is required"
	}
	if !phonePattern.MatchString(value) {
		return "Invalid phone number"
	}
	return ""
}

func Year(value string) string {
	if value == "" {
		return "Year is required"
	}
	return ""
}

func Department(value string) string {
	if value == "" {
		return "Department is required"
	}
	return ""
}

// Field dispatches to the validator for the named form field. Unknown
// fields are considered valid, matching the form's default branch.
func Field(name, value string) string {
	switch name {
	case "username":
		return Username(value)
	case "email":
		return Email(value)
	case "password":
		return Password(value)
	case "phone":
		return Phone(value)
	case "year":
		return Year(value)
	case "department":
		return Department(value)
	default:
		return ""
	}
}
