package contact

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/haanhduc/mycontact/internal/domain/contact"
)

type CreateContactInput struct {
	OwnerID     int64
	FullName    string
	PhoneNumber string
	Email       string
	Address     string
	Notes       string
	CategoryIDs []int64
}

type CreateContactOutput struct {
	ContactID int64 `json:"contact_id"`
}

type CreateContact interface {
	Execute(ctx context.Context, in CreateContactInput) (CreateContactOutput, error)
}

type createContact struct {
	contacts   contactRepository
	categories categoryFetcher
}

func NewCreateContact(contacts contactRepository, categories categoryFetcher) CreateContact {
	return &createContact{contacts: contacts, categories: categories}
}

func (uc *createContact) Execute(ctx context.Context, in CreateContactInput) (CreateContactOutput, error) {
	c, err := domain.NewContact(in.OwnerID, in.FullName, in.PhoneNumber, in.Email, in.Address, in.Notes)
	if err != nil {
		return CreateContactOutput{}, err
	}

	categoryIDs, err := uc.ownedCategoryIDs(ctx, in.OwnerID, in.CategoryIDs)
	if err != nil {
		return CreateContactOutput{}, fmt.Errorf("%w: %v", ErrCreateContact, err)
	}

	id, err := uc.contacts.Create(ctx, c, categoryIDs)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicatePhone) {
			return CreateContactOutput{}, domain.ErrDuplicatePhone
		}
		return CreateContactOutput{}, fmt.Errorf("%w: %v", ErrCreateContact, err)
	}

	return CreateContactOutput{ContactID: id}, nil
}

func (uc *createContact) ownedCategoryIDs(ctx context.Context, ownerID int64, requested []int64) ([]int64, error) {
	if len(requested) == 0 {
		return nil, nil
	}
	owned, err := uc.categories.FilterOwned(ctx, ownerID, requested)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(owned))
	for _, category := range owned {
		ids = append(ids, category.ID)
	}
	return ids, nil
}
