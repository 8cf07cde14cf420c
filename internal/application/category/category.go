package category

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/haanhduc/mycontact/internal/domain/contact"
)

type categoryRepository interface {
	List(ctx context.Context, ownerID int64, search string) ([]domain.Category, error)
	GetByID(ctx context.Context, ownerID, categoryID int64) (domain.Category, error)
	// NameExists reports whether the owner already has a category with
	// this name, ignoring case, excluding excludeID (0 for none).
	NameExists(ctx context.Context, ownerID int64, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, c domain.Category) (int64, error)
	Rename(ctx context.Context, ownerID, categoryID int64, name string) error
}

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrListCategories   = errors.New("failed to list categories")
	ErrSaveCategory     = errors.New("failed to save category")
)

type CategoryView struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type Service struct {
	categories categoryRepository
}

func NewService(categories categoryRepository) *Service {
	return &Service{categories: categories}
}

func (s *Service) List(ctx context.Context, ownerID int64, search string) ([]CategoryView, error) {
	categories, err := s.categories.List(ctx, ownerID, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListCategories, err)
	}
	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, CategoryView{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt})
	}
	return views, nil
}

func (s *Service) Get(ctx context.Context, ownerID, categoryID int64) (CategoryView, error) {
	c, err := s.categories.GetByID(ctx, ownerID, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return CategoryView{}, ErrCategoryNotFound
		}
		return CategoryView{}, fmt.Errorf("%w: %v", ErrListCategories, err)
	}
	return CategoryView{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}, nil
}

func (s *Service) Create(ctx context.Context, ownerID int64, name string) (int64, error) {
	c, err := domain.NewCategory(ownerID, name)
	if err != nil {
		return 0, err
	}

	taken, err := s.categories.NameExists(ctx, ownerID, c.Name, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSaveCategory, err)
	}
	if taken {
		return 0, domain.ErrDuplicateCategory
	}

	id, err := s.categories.Create(ctx, c)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSaveCategory, err)
	}
	return id, nil
}

func (s *Service) Rename(ctx context.Context, ownerID, categoryID int64, name string) error {
	c, err := domain.NewCategory(ownerID, name)
	if err != nil {
		return err
	}

	if _, err := s.categories.GetByID(ctx, ownerID, categoryID); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("%w: %v", ErrSaveCategory, err)
	}

	taken, err := s.categories.NameExists(ctx, ownerID, c.Name, categoryID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSaveCategory, err)
	}
	if taken {
		return domain.ErrDuplicateCategory
	}

	if err := s.categories.Rename(ctx, ownerID, categoryID, c.Name); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveCategory, err)
	}
	return nil
}
