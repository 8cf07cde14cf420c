package contact

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/haanhduc/mycontact/internal/domain/contact"
)

type DeleteContactInput struct {
	OwnerID   int64
	ContactID int64
}

type DeleteContact interface {
	Execute(ctx context.Context, in DeleteContactInput) error
}

type deleteContact struct {
	contacts contactRepository
}

func NewDeleteContact(contacts contactRepository) DeleteContact {
	return &deleteContact{contacts: contacts}
}

// Execute soft-deletes: the row stays but drops out of every owner-scoped
// query, including the import pipeline's phone snapshot.
func (uc *deleteContact) Execute(ctx context.Context, in DeleteContactInput) error {
	if err := uc.contacts.SoftDelete(ctx, in.OwnerID, in.ContactID); err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return ErrContactNotFound
		}
		return fmt.Errorf("%w: %v", ErrDeleteContact, err)
	}
	return nil
}
