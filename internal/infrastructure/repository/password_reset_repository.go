package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/haanhduc/mycontact/internal/domain/user"
	"github.com/haanhduc/mycontact/internal/infrastructure/db/models"
)

type PasswordResetRepository struct {
	db *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func (r *PasswordResetRepository) CreateReset(ctx context.Context, reset domain.PasswordReset) error {
	row := models.PasswordReset{
		UserID:    reset.UserID,
		Token:     reset.Token,
		ExpiresAt: reset.ExpiresAt,
		CreatedAt: reset.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create password reset: %w", err)
	}
	return nil
}

func (r *PasswordResetRepository) FindReset(ctx context.Context, token string) (domain.PasswordReset, error) {
	var row models.PasswordReset

	err := r.db.WithContext(ctx).First(&row, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PasswordReset{}, domain.ErrUserNotFound
		}
		return domain.PasswordReset{}, fmt.Errorf("find password reset: %w", err)
	}
	return domain.PasswordReset{
		ID:        row.ID,
		UserID:    row.UserID,
		Token:     row.Token,
		ExpiresAt: row.ExpiresAt,
		UsedAt:    row.UsedAt,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *PasswordResetRepository) MarkResetUsed(ctx context.Context, resetID int64) error {
	result := r.db.WithContext(ctx).Model(&models.PasswordReset{}).
		Where("id = ? AND used_at IS NULL", resetID).
		Update("used_at", time.Now())
	if result.Error != nil {
		return fmt.Errorf("mark reset used: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("mark reset used: token %d already consumed", resetID)
	}
	return nil
}
