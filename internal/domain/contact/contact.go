package contact

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
)

var (
	// Digits and common punctuation are banned from names on the
	// interactive paths. Bulk import deliberately skips this check.
	fullNamePattern = regexp.MustCompile(`^[^0-9!@#$%^&*()_+=\[{\]};:<>|./?,]+$`)

	// 10-digit local number with a leading zero.
	phonePattern = regexp.MustCompile(`^0[0-9]{9}$`)
)

type Contact struct {
	ID          int64
	OwnerID     int64
	FullName    string
	PhoneNumber string
	Email       string
	Address     string
	Notes       string
	CategoryIDs []int64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// NewContact applies the interactive-path validation rules. Rows coming
// through the bulk import pipeline are constructed directly and only
// checked for a name and a phone number.
func NewContact(ownerID int64, fullName, phoneNumber, email, address, notes string) (Contact, error) {
	fullName = strings.TrimSpace(fullName)
	phoneNumber = strings.TrimSpace(phoneNumber)
	email = strings.TrimSpace(email)
	address = strings.TrimSpace(address)
	notes = strings.TrimSpace(notes)

	if fullName == "" || len(fullName) > 100 || !fullNamePattern.MatchString(fullName) {
		return Contact{}, ErrInvalidFullName
	}
	if !phonePattern.MatchString(phoneNumber) {
		return Contact{}, ErrInvalidPhoneNumber
	}
	if email != "" {
		if len(email) > 100 {
			return Contact{}, ErrInvalidEmail
		}
		if _, err := mail.ParseAddress(email); err != nil {
			return Contact{}, ErrInvalidEmail
		}
	}
	if len(address) > 200 {
		return Contact{}, ErrInvalidAddress
	}

	return Contact{
		OwnerID:     ownerID,
		FullName:    fullName,
		PhoneNumber: phoneNumber,
		Email:       email,
		Address:     address,
		Notes:       notes,
	}, nil
}
