package category_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	app "github.com/haanhduc/mycontact/internal/application/category"
	domain "github.com/haanhduc/mycontact/internal/domain/contact"
)

type fakeCategoryRepo struct {
	list     []domain.Category
	byID     map[int64]domain.Category
	names    map[string]int64
	created  []domain.Category
	renamed  map[int64]string
	lastName string
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		byID:    map[int64]domain.Category{},
		names:   map[string]int64{},
		renamed: map[int64]string{},
	}
}

func (f *fakeCategoryRepo) List(ctx context.Context, ownerID int64, search string) ([]domain.Category, error) {
	return f.list, nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, ownerID, categoryID int64) (domain.Category, error) {
	c, ok := f.byID[categoryID]
	if !ok || c.OwnerID != ownerID {
		return domain.Category{}, domain.ErrCategoryNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepo) NameExists(ctx context.Context, ownerID int64, name string, excludeID int64) (bool, error) {
	f.lastName = name
	id, ok := f.names[strings.ToLower(name)]
	if !ok {
		return false, nil
	}
	return id != excludeID, nil
}

func (f *fakeCategoryRepo) Create(ctx context.Context, c domain.Category) (int64, error) {
	f.created = append(f.created, c)
	return 10, nil
}

func (f *fakeCategoryRepo) Rename(ctx context.Context, ownerID, categoryID int64, name string) error {
	f.renamed[categoryID] = name
	return nil
}

func TestCreateCategoryTrimsAndChecksDuplicate(t *testing.T) {
	t.Parallel()

	repo := newFakeCategoryRepo()
	svc := app.NewService(repo)

	id, err := svc.Create(context.Background(), 1, "  Family  ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != 10 {
		t.Fatalf("unexpected id: %d", id)
	}
	if repo.lastName != "Family" {
		t.Fatalf("expected trimmed name checked, got %q", repo.lastName)
	}
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	t.Parallel()

	repo := newFakeCategoryRepo()
	repo.names["family"] = 3
	svc := app.NewService(repo)

	_, err := svc.Create(context.Background(), 1, "Family")
	if !errors.Is(err, domain.ErrDuplicateCategory) {
		t.Fatalf("expected ErrDuplicateCategory, got %v", err)
	}
}

func TestRenameCategoryAllowsOwnName(t *testing.T) {
	t.Parallel()

	repo := newFakeCategoryRepo()
	repo.byID[3] = domain.Category{ID: 3, OwnerID: 1, Name: "Family"}
	repo.names["family"] = 3
	svc := app.NewService(repo)

	if err := svc.Rename(context.Background(), 1, 3, "Family"); err != nil {
		t.Fatalf("renaming to the same name must pass, got %v", err)
	}
	if repo.renamed[3] != "Family" {
		t.Fatalf("expected rename applied, got %v", repo.renamed)
	}
}

func TestRenameCategoryNotFound(t *testing.T) {
	t.Parallel()

	svc := app.NewService(newFakeCategoryRepo())

	err := svc.Rename(context.Background(), 1, 99, "Work")
	if !errors.Is(err, app.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCreateCategoryBlankName(t *testing.T) {
	t.Parallel()

	svc := app.NewService(newFakeCategoryRepo())

	_, err := svc.Create(context.Background(), 1, "   ")
	if !errors.Is(err, domain.ErrInvalidCategoryName) {
		t.Fatalf("expected ErrInvalidCategoryName, got %v", err)
	}
}
