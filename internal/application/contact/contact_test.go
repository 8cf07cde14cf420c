package contact_test

import (
	"context"
	"errors"
	"testing"
	"time"

	app "github.com/haanhduc/mycontact/internal/application/contact"
	domain "github.com/haanhduc/mycontact/internal/domain/contact"
	"github.com/haanhduc/mycontact/internal/pagination"
)

type fakeContactRepo struct {
	byID         map[int64]domain.Contact
	page         pagination.Page[domain.Contact]
	listErr      error
	createdWith  []int64
	created      domain.Contact
	updatedWith  []int64
	updated      domain.Contact
	deleted      []int64
	deleteErr    error
	createErr    error
	gotSearch    string
	gotPageIndex int
	gotPageSize  int
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{byID: map[int64]domain.Contact{}}
}

func (f *fakeContactRepo) ListPage(ctx context.Context, ownerID int64, search string, pageIndex, pageSize int) (pagination.Page[domain.Contact], error) {
	f.gotSearch = search
	f.gotPageIndex = pageIndex
	f.gotPageSize = pageSize
	if f.listErr != nil {
		return pagination.Page[domain.Contact]{}, f.listErr
	}
	return f.page, nil
}

func (f *fakeContactRepo) GetByID(ctx context.Context, ownerID, contactID int64) (domain.Contact, error) {
	c, ok := f.byID[contactID]
	if !ok || c.OwnerID != ownerID {
		return domain.Contact{}, domain.ErrContactNotFound
	}
	return c, nil
}

func (f *fakeContactRepo) Create(ctx context.Context, c domain.Contact, categoryIDs []int64) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = c
	f.createdWith = categoryIDs
	return 42, nil
}

func (f *fakeContactRepo) Update(ctx context.Context, c domain.Contact, categoryIDs []int64) error {
	f.updated = c
	f.updatedWith = categoryIDs
	return nil
}

func (f *fakeContactRepo) SoftDelete(ctx context.Context, ownerID, contactID int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, contactID)
	return nil
}

type fakeCategoryFetcher struct {
	owned []domain.Category
	err   error
}

func (f *fakeCategoryFetcher) FilterOwned(ctx context.Context, ownerID int64, categoryIDs []int64) ([]domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.owned, nil
}

func TestCreateContactFiltersForeignCategories(t *testing.T) {
	t.Parallel()

	repo := newFakeContactRepo()
	categories := &fakeCategoryFetcher{owned: []domain.Category{{ID: 2, OwnerID: 1, Name: "Family"}}}
	uc := app.NewCreateContact(repo, categories)

	out, err := uc.Execute(context.Background(), app.CreateContactInput{
		OwnerID:     1,
		FullName:    "Tran Thi Mai",
		PhoneNumber: "0912345678",
		CategoryIDs: []int64{2, 99},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.ContactID != 42 {
		t.Fatalf("unexpected contact id: %d", out.ContactID)
	}
	if len(repo.createdWith) != 1 || repo.createdWith[0] != 2 {
		t.Fatalf("expected only owned category 2, got %v", repo.createdWith)
	}
}

func TestCreateContactInvalidPhone(t *testing.T) {
	t.Parallel()

	uc := app.NewCreateContact(newFakeContactRepo(), &fakeCategoryFetcher{})

	_, err := uc.Execute(context.Background(), app.CreateContactInput{
		OwnerID:     1,
		FullName:    "Tran Thi Mai",
		PhoneNumber: "12345",
	})
	if !errors.Is(err, domain.ErrInvalidPhoneNumber) {
		t.Fatalf("expected ErrInvalidPhoneNumber, got %v", err)
	}
}

func TestCreateContactDuplicatePhone(t *testing.T) {
	t.Parallel()

	repo := newFakeContactRepo()
	repo.createErr = domain.ErrDuplicatePhone
	uc := app.NewCreateContact(repo, &fakeCategoryFetcher{})

	_, err := uc.Execute(context.Background(), app.CreateContactInput{
		OwnerID:     1,
		FullName:    "Tran Thi Mai",
		PhoneNumber: "0912345678",
	})
	if !errors.Is(err, domain.ErrDuplicatePhone) {
		t.Fatalf("expected ErrDuplicatePhone, got %v", err)
	}
}

func TestUpdateContactKeepsIdentityAndCreatedAt(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeContactRepo()
	repo.byID[5] = domain.Contact{ID: 5, OwnerID: 1, FullName: "Old Name", PhoneNumber: "0911111111", CreatedAt: created}
	uc := app.NewUpdateContact(repo, &fakeCategoryFetcher{})

	err := uc.Execute(context.Background(), app.UpdateContactInput{
		OwnerID:     1,
		ContactID:   5,
		FullName:    "Tran Thi Mai",
		PhoneNumber: "0912345678",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.updated.ID != 5 {
		t.Fatalf("expected id 5 preserved, got %d", repo.updated.ID)
	}
	if !repo.updated.CreatedAt.Equal(created) {
		t.Fatalf("expected CreatedAt preserved, got %v", repo.updated.CreatedAt)
	}
}

func TestUpdateContactNotFound(t *testing.T) {
	t.Parallel()

	uc := app.NewUpdateContact(newFakeContactRepo(), &fakeCategoryFetcher{})

	err := uc.Execute(context.Background(), app.UpdateContactInput{
		OwnerID:     1,
		ContactID:   5,
		FullName:    "Tran Thi Mai",
		PhoneNumber: "0912345678",
	})
	if !errors.Is(err, app.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestDeleteContactOwnerScoped(t *testing.T) {
	t.Parallel()

	repo := newFakeContactRepo()
	repo.deleteErr = domain.ErrContactNotFound
	uc := app.NewDeleteContact(repo)

	err := uc.Execute(context.Background(), app.DeleteContactInput{OwnerID: 1, ContactID: 9})
	if !errors.Is(err, app.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestListContactsClampsPaging(t *testing.T) {
	t.Parallel()

	repo := newFakeContactRepo()
	uc := app.NewListContacts(repo)

	_, err := uc.Execute(context.Background(), app.ListContactsInput{OwnerID: 1, PageIndex: 0, PageSize: 0, Search: "  mai "})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.gotPageIndex != 1 {
		t.Fatalf("expected page index clamped to 1, got %d", repo.gotPageIndex)
	}
	if repo.gotPageSize != 10 {
		t.Fatalf("expected default page size 10, got %d", repo.gotPageSize)
	}
	if repo.gotSearch != "mai" {
		t.Fatalf("expected trimmed search, got %q", repo.gotSearch)
	}
}

func TestGetContactIncludesCategoryNames(t *testing.T) {
	t.Parallel()

	repo := newFakeContactRepo()
	repo.byID[5] = domain.Contact{ID: 5, OwnerID: 1, FullName: "Tran Thi Mai", PhoneNumber: "0912345678", CategoryIDs: []int64{2}}
	categories := &fakeCategoryFetcher{owned: []domain.Category{{ID: 2, Name: "Family"}}}
	uc := app.NewGetContact(repo, categories)

	out, err := uc.Execute(context.Background(), app.GetContactInput{OwnerID: 1, ContactID: 5})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out.CategoryNames) != 1 || out.CategoryNames[0] != "Family" {
		t.Fatalf("unexpected category names: %v", out.CategoryNames)
	}
}
