package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassword(t *testing.T) {
	assert.Equal(t, "Password must be at least 8 characters", Password("abcdefg"))
	assert.NotEmpty(t, Password("abcdefg1")) // no uppercase
	assert.Empty(t, Password("Abcdefg1"))
	assert.NotEmpty(t, Password("ABCDEFG1")) // no lowercase
	assert.NotEmpty(t, Password("Abcdefgh")) // no digit
	assert.Equal(t, "Password is required", Password(""))
}

func TestPhone(t *testing.T) {
	assert.NotEmpty(t, Phone("12345"))
	assert.Empty(t, Phone("1234567890"))
	assert.NotEmpty(t, Phone("12345678901"))
	assert.NotEmpty(t, Phone("123456789a"))
	assert.Equal(t, "Phone number is required", Phone(""))
}

func TestUsername(t *testing.T) {
	assert.Equal(t, "Name is required", Username(""))
	assert.NotEmpty(t, Username("a"))
	assert.Empty(t, Username("ab"))
}

func TestEmail(t *testing.T) {
	assert.Empty(t, Email("user@example.com"))
	assert.NotEmpty(t, Email("user@example"))
	assert.NotEmpty(t, Email("not an email"))
	assert.Equal(t, "Email is required", Email(""))
}

func TestRequiredSelects(t *testing.T) {
	assert.Equal(t, "Year is required", Year(""))
	assert.Empty(t, Year("2"))
	assert.Equal(t, "Department is required", Department(""))
	assert.Empty(t, Department("Computer Science"))
}

func TestFieldDispatch(t *testing.T) {
	assert.Equal(t, Username("x"), Field("username", "x"))
	assert.Equal(t, Password("x"), Field("password", "x"))
	assert.Empty(t, Field("role", ""))
}
