package user

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	ProviderLocal = "local"
)

var fullNamePattern = regexp.MustCompile(`^[^0-9!@#$%^&*()_+=\[{\]};:<>|./?,]+$`)

type User struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	ProviderName string
	ProviderID   string
	AvatarPath   string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidateRegistration checks the fields a new local account is created
// from. The password itself is hashed by the application layer.
func ValidateRegistration(fullName, email, password string) error {
	fullName = strings.TrimSpace(fullName)
	if len(fullName) < 5 || len(fullName) > 100 || !fullNamePattern.MatchString(fullName) {
		return ErrInvalidFullName
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if len(password) < 6 {
		return ErrWeakPassword
	}
	return nil
}

func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || len(email) > 255 {
		return ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
