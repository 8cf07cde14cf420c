package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/haanhduc/mycontact/internal/domain/contact"
)

type GetContactInput struct {
	OwnerID   int64
	ContactID int64
}

type GetContactOutput struct {
	ID            int64      `json:"id"`
	FullName      string     `json:"full_name"`
	PhoneNumber   string     `json:"phone_number"`
	Email         string     `json:"email,omitempty"`
	Address       string     `json:"address,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CategoryNames []string   `json:"category_names"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type GetContact interface {
	Execute(ctx context.Context, in GetContactInput) (GetContactOutput, error)
}

type getContact struct {
	contacts   contactRepository
	categories categoryFetcher
}

func NewGetContact(contacts contactRepository, categories categoryFetcher) GetContact {
	return &getContact{contacts: contacts, categories: categories}
}

func (uc *getContact) Execute(ctx context.Context, in GetContactInput) (GetContactOutput, error) {
	c, err := uc.contacts.GetByID(ctx, in.OwnerID, in.ContactID)
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return GetContactOutput{}, ErrContactNotFound
		}
		return GetContactOutput{}, fmt.Errorf("%w: %v", ErrGetContact, err)
	}

	names := make([]string, 0, len(c.CategoryIDs))
	if len(c.CategoryIDs) > 0 {
		owned, err := uc.categories.FilterOwned(ctx, in.OwnerID, c.CategoryIDs)
		if err != nil {
			return GetContactOutput{}, fmt.Errorf("%w: %v", ErrGetContact, err)
		}
		for _, category := range owned {
			names = append(names, category.Name)
		}
	}

	return GetContactOutput{
		ID:            c.ID,
		FullName:      c.FullName,
		PhoneNumber:   c.PhoneNumber,
		Email:         c.Email,
		Address:       c.Address,
		Notes:         c.Notes,
		CategoryNames: names,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}, nil
}
