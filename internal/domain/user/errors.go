package user

import "errors"

var (
	ErrInvalidFullName = errors.New("invalid full name")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrWeakPassword    = errors.New("password too short")
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already in use")
)
