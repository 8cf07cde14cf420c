package contact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/haanhduc/mycontact/internal/pagination"
)

const defaultPageSize = 10

type ListContactsInput struct {
	OwnerID   int64
	Search    string
	PageIndex int
	PageSize  int
}

type ContactSummary struct {
	ID          int64     `json:"id"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListContactsOutput struct {
	Page pagination.Page[ContactSummary]
}

type ListContacts interface {
	Execute(ctx context.Context, in ListContactsInput) (ListContactsOutput, error)
}

type listContacts struct {
	contacts contactRepository
}

func NewListContacts(contacts contactRepository) ListContacts {
	return &listContacts{contacts: contacts}
}

func (uc *listContacts) Execute(ctx context.Context, in ListContactsInput) (ListContactsOutput, error) {
	if in.PageIndex < 1 {
		in.PageIndex = 1
	}
	if in.PageSize < 1 {
		in.PageSize = defaultPageSize
	}

	page, err := uc.contacts.ListPage(ctx, in.OwnerID, strings.TrimSpace(in.Search), in.PageIndex, in.PageSize)
	if err != nil {
		return ListContactsOutput{}, fmt.Errorf("%w: %v", ErrListContacts, err)
	}

	summaries := make([]ContactSummary, 0, len(page.Items))
	for _, c := range page.Items {
		summaries = append(summaries, ContactSummary{
			ID:          c.ID,
			FullName:    c.FullName,
			PhoneNumber: c.PhoneNumber,
			Email:       c.Email,
			CreatedAt:   c.CreatedAt,
		})
	}

	out := pagination.Page[ContactSummary]{
		Items:      summaries,
		PageIndex:  page.PageIndex,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
	}
	return ListContactsOutput{Page: out}, nil
}
