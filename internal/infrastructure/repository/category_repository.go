package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/haanhduc/mycontact/internal/domain/contact"
	"github.com/haanhduc/mycontact/internal/infrastructure/db/models"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context, ownerID int64, search string) ([]domain.Category, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("name ASC")
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var rows []models.Category
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, toDomainCategory(row))
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, ownerID, categoryID int64) (domain.Category, error) {
	var row models.Category

	err := r.db.WithContext(ctx).
		First(&row, "id = ? AND user_id = ?", categoryID, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Category{}, domain.ErrCategoryNotFound
		}
		return domain.Category{}, fmt.Errorf("get category: %w", err)
	}
	return toDomainCategory(row), nil
}

func (r *CategoryRepository) NameExists(ctx context.Context, ownerID int64, name string, excludeID int64) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).Model(&models.Category{}).
		Where("user_id = ? AND LOWER(name) = LOWER(?) AND id <> ?", ownerID, name, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check category name: %w", err)
	}
	return count > 0, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c domain.Category) (int64, error) {
	row := models.Category{UserID: c.OwnerID, Name: c.Name}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, fmt.Errorf("create category: %w", err)
	}
	return row.ID, nil
}

func (r *CategoryRepository) Rename(ctx context.Context, ownerID, categoryID int64, name string) error {
	result := r.db.WithContext(ctx).Model(&models.Category{}).
		Where("id = ? AND user_id = ?", categoryID, ownerID).
		Updates(map[string]any{"name": name, "updated_at": time.Now()})
	if result.Error != nil {
		return fmt.Errorf("rename category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) FilterOwned(ctx context.Context, ownerID int64, categoryIDs []int64) ([]domain.Category, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}

	var rows []models.Category
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", ownerID, categoryIDs).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("filter categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, toDomainCategory(row))
	}
	return categories, nil
}

func toDomainCategory(row models.Category) domain.Category {
	return domain.Category{
		ID:        row.ID,
		OwnerID:   row.UserID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}
