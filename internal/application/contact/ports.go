package contact

import (
	"context"

	domain "github.com/haanhduc/mycontact/internal/domain/contact"
	"github.com/haanhduc/mycontact/internal/pagination"
)

type contactRepository interface {
	ListPage(ctx context.Context, ownerID int64, search string, pageIndex, pageSize int) (pagination.Page[domain.Contact], error)
	GetByID(ctx context.Context, ownerID, contactID int64) (domain.Contact, error)
	Create(ctx context.Context, c domain.Contact, categoryIDs []int64) (int64, error)
	Update(ctx context.Context, c domain.Contact, categoryIDs []int64) error
	SoftDelete(ctx context.Context, ownerID, contactID int64) error
}

type categoryFetcher interface {
	// FilterOwned returns, of the given ids, only the categories that
	// belong to the owner. Unknown or foreign ids are dropped silently.
	FilterOwned(ctx context.Context, ownerID int64, categoryIDs []int64) ([]domain.Category, error)
}
