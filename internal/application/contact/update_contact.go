package contact

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/haanhduc/mycontact/internal/domain/contact"
)

type UpdateContactInput struct {
	OwnerID     int64
	ContactID   int64
	FullName    string
	PhoneNumber string
	Email       string
	Address     string
	Notes       string
	CategoryIDs []int64
}

type UpdateContact interface {
	Execute(ctx context.Context, in UpdateContactInput) error
}

type updateContact struct {
	contacts   contactRepository
	categories categoryFetcher
}

func NewUpdateContact(contacts contactRepository, categories categoryFetcher) UpdateContact {
	return &updateContact{contacts: contacts, categories: categories}
}

func (uc *updateContact) Execute(ctx context.Context, in UpdateContactInput) error {
	existing, err := uc.contacts.GetByID(ctx, in.OwnerID, in.ContactID)
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return ErrContactNotFound
		}
		return fmt.Errorf("%w: %v", ErrUpdateContact, err)
	}

	updated, err := domain.NewContact(in.OwnerID, in.FullName, in.PhoneNumber, in.Email, in.Address, in.Notes)
	if err != nil {
		return err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	var categoryIDs []int64
	if len(in.CategoryIDs) > 0 {
		owned, err := uc.categories.FilterOwned(ctx, in.OwnerID, in.CategoryIDs)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUpdateContact, err)
		}
		for _, category := range owned {
			categoryIDs = append(categoryIDs, category.ID)
		}
	}

	// The category set is replaced wholesale on every update.
	if err := uc.contacts.Update(ctx, updated, categoryIDs); err != nil {
		if errors.Is(err, domain.ErrDuplicatePhone) {
			return domain.ErrDuplicatePhone
		}
		return fmt.Errorf("%w: %v", ErrUpdateContact, err)
	}
	return nil
}
