package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/haanhduc/mycontact/internal/domain/user"
	"github.com/haanhduc/mycontact/internal/infrastructure/db/models"
	"github.com/haanhduc/mycontact/internal/pagination"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var row models.User

	err := r.db.WithContext(ctx).First(&row, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("find user by email: %w", err)
	}
	return toDomainUser(row), nil
}

func (r *UserRepository) FindByProvider(ctx context.Context, providerName, providerID string) (domain.User, error) {
	var row models.User

	err := r.db.WithContext(ctx).
		First(&row, "provider_name = ? AND provider_id = ?", providerName, providerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("find user by provider: %w", err)
	}
	return toDomainUser(row), nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID int64) (domain.User, error) {
	var row models.User

	err := r.db.WithContext(ctx).First(&row, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user by id: %w", err)
	}
	return toDomainUser(row), nil
}

func (r *UserRepository) Create(ctx context.Context, u domain.User) (domain.User, error) {
	row := toUserModel(u)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.User{}, domain.ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return toDomainUser(row), nil
}

func (r *UserRepository) Update(ctx context.Context, u domain.User) error {
	row := toUserModel(u)
	now := time.Now()
	row.UpdatedAt = &now

	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", row.ID).
		Select("full_name", "email", "provider_name", "provider_id", "avatar_path", "is_active", "updated_at").
		Updates(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, userID int64, hash string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{"password_hash": hash, "updated_at": time.Now()})
	if result.Error != nil {
		return fmt.Errorf("update password hash: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) EmailInUse(ctx context.Context, email string, excludeUserID int64) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ? AND id <> ?", email, excludeUserID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check email in use: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) AdminDashboard(ctx context.Context, startOfToday time.Time) (domain.AdminDashboard, error) {
	var stats domain.AdminDashboard

	users := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", domain.RoleUser)
	if err := users.Session(&gorm.Session{}).Count(&stats.TotalUsers).Error; err != nil {
		return domain.AdminDashboard{}, fmt.Errorf("count users: %w", err)
	}
	if err := users.Session(&gorm.Session{}).
		Where("created_at >= ?", startOfToday).
		Count(&stats.NewUsersToday).Error; err != nil {
		return domain.AdminDashboard{}, fmt.Errorf("count new users: %w", err)
	}
	if err := users.Session(&gorm.Session{}).
		Where("is_active").
		Count(&stats.ActiveUsers).Error; err != nil {
		return domain.AdminDashboard{}, fmt.Errorf("count active users: %w", err)
	}
	stats.InactiveUsers = stats.TotalUsers - stats.ActiveUsers

	if err := r.db.WithContext(ctx).Model(&models.Contact{}).
		Where("NOT is_deleted").
		Count(&stats.TotalContacts).Error; err != nil {
		return domain.AdminDashboard{}, fmt.Errorf("count contacts: %w", err)
	}

	return stats, nil
}

func (r *UserRepository) ListActiveUsersPage(ctx context.Context, search string, pageIndex, pageSize int) (pagination.Page[domain.AccountSummary], error) {
	query := r.db.WithContext(ctx).Model(&models.User{}).
		Where("role = ? AND is_active", domain.RoleUser).
		Order("created_at DESC")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("full_name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	page, err := pagination.FromQuery[models.User](ctx, query, pageIndex, pageSize)
	if err != nil {
		return pagination.Page[domain.AccountSummary]{}, fmt.Errorf("list users: %w", err)
	}

	summaries := make([]domain.AccountSummary, 0, len(page.Items))
	for _, row := range page.Items {
		summary, err := r.withContactCount(ctx, row)
		if err != nil {
			return pagination.Page[domain.AccountSummary]{}, err
		}
		summaries = append(summaries, summary)
	}

	return pagination.Page[domain.AccountSummary]{
		Items:      summaries,
		PageIndex:  page.PageIndex,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
	}, nil
}

func (r *UserRepository) GetUserSummary(ctx context.Context, userID int64) (domain.AccountSummary, error) {
	var row models.User

	err := r.db.WithContext(ctx).First(&row, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AccountSummary{}, domain.ErrUserNotFound
		}
		return domain.AccountSummary{}, fmt.Errorf("get user summary: %w", err)
	}
	return r.withContactCount(ctx, row)
}

func (r *UserRepository) withContactCount(ctx context.Context, row models.User) (domain.AccountSummary, error) {
	var contacts int64

	err := r.db.WithContext(ctx).Model(&models.Contact{}).
		Where("user_id = ? AND NOT is_deleted", row.ID).
		Count(&contacts).Error
	if err != nil {
		return domain.AccountSummary{}, fmt.Errorf("count contacts for user %d: %w", row.ID, err)
	}
	return domain.AccountSummary{User: toDomainUser(row), TotalContacts: contacts}, nil
}

func toDomainUser(row models.User) domain.User {
	return domain.User{
		ID:           row.ID,
		FullName:     row.FullName,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         row.Role,
		IsActive:     row.IsActive,
		ProviderName: row.ProviderName,
		ProviderID:   row.ProviderID,
		AvatarPath:   row.AvatarPath,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func toUserModel(u domain.User) models.User {
	return models.User{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsActive:     u.IsActive,
		ProviderName: u.ProviderName,
		ProviderID:   u.ProviderID,
		AvatarPath:   u.AvatarPath,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
