package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@example.com", true},
		{"first.last@sub.example.org", true},
		{"noat.example.com", false},
		{"spaces in@example.com", false},
		{"missing@tld", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsNotEmpty(t *testing.T) {
	assert.True(t, IsNotEmpty("x"))
	assert.False(t, IsNotEmpty(""))
	assert.False(t, IsNotEmpty("   "))
	assert.False(t, IsNotEmpty("\t\n"))
}

func TestPasswordsMatch(t *testing.T) {
	assert.True(t, PasswordsMatch("Passw0rd!", "Passw0rd!"))
	assert.False(t, PasswordsMatch("Passw0rd!", "passw0rd!"))
}

func TestPasswordError_RuleOrder(t *testing.T) {
	// First failing rule wins: length, lowercase, uppercase, digit.
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{"too short wins over everything", "A1", "password must be at least 8 characters"},
		{"lowercase reported before uppercase", "12345678", "password must contain at least one lowercase letter"},
		{"uppercase reported before digit", "abcdefgh", "password must contain at least one uppercase letter"},
		{"digit last", "Abcdefgh", "password must contain at least one digit"},
		{"valid", "Passw0rd", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PasswordError(tt.password))
		})
	}
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("Passw0rd"))
	assert.False(t, IsStrongPassword("password"))
	assert.False(t, IsStrongPassword("PASSWORD1"))
	assert.False(t, IsStrongPassword("Pass1"))
}

func TestValidator_StructTags(t *testing.T) {
	type req struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `json:"name" validate:"required"`
	}

	v := New()

	assert.NoError(t, v.Validate(req{Email: "a@example.com", Name: "A"}))

	err := v.Validate(req{Email: "not-an-email"})
	assert.Error(t, err)
}
