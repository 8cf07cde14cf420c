package contact

import "errors"

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrListContacts    = errors.New("failed to list contacts")
	ErrGetContact      = errors.New("failed to get contact")
	ErrCreateContact   = errors.New("failed to create contact")
	ErrUpdateContact   = errors.New("failed to update contact")
	ErrDeleteContact   = errors.New("failed to delete contact")
)
