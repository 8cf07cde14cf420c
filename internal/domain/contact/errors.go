package contact

import "errors"

var (
	ErrInvalidFullName     = errors.New("invalid full name")
	ErrInvalidPhoneNumber  = errors.New("invalid phone number")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrInvalidCategoryName = errors.New("invalid category name")
	ErrContactNotFound     = errors.New("contact not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrDuplicateCategory   = errors.New("category name already exists")
	ErrDuplicatePhone      = errors.New("phone number already exists")
)
