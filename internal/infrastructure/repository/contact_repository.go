package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/haanhduc/mycontact/internal/application/importexport"
	domain "github.com/haanhduc/mycontact/internal/domain/contact"
	"github.com/haanhduc/mycontact/internal/infrastructure/db/models"
	"github.com/haanhduc/mycontact/internal/pagination"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) ListPage(ctx context.Context, ownerID int64, search string, pageIndex, pageSize int) (pagination.Page[domain.Contact], error) {
	query := r.db.WithContext(ctx).Model(&models.Contact{}).
		Where("user_id = ? AND NOT is_deleted", ownerID).
		Order("created_at DESC")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("full_name ILIKE ? OR phone_number LIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}

	page, err := pagination.FromQuery[models.Contact](ctx, query, pageIndex, pageSize)
	if err != nil {
		return pagination.Page[domain.Contact]{}, fmt.Errorf("list contacts: %w", err)
	}

	contacts := make([]domain.Contact, 0, len(page.Items))
	for _, row := range page.Items {
		contacts = append(contacts, toDomainContact(row))
	}
	return pagination.Page[domain.Contact]{
		Items:      contacts,
		PageIndex:  page.PageIndex,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
	}, nil
}

func (r *ContactRepository) GetByID(ctx context.Context, ownerID, contactID int64) (domain.Contact, error) {
	var row models.Contact

	err := r.db.WithContext(ctx).
		Preload("Categories").
		First(&row, "id = ? AND user_id = ? AND NOT is_deleted", contactID, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Contact{}, domain.ErrContactNotFound
		}
		return domain.Contact{}, fmt.Errorf("get contact: %w", err)
	}

	contact := toDomainContact(row)
	for _, category := range row.Categories {
		contact.CategoryIDs = append(contact.CategoryIDs, category.ID)
	}
	return contact, nil
}

func (r *ContactRepository) Create(ctx context.Context, c domain.Contact, categoryIDs []int64) (int64, error) {
	row := toContactModel(c)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return replaceContactCategories(tx, row.ID, categoryIDs)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, domain.ErrDuplicatePhone
		}
		return 0, fmt.Errorf("create contact: %w", err)
	}
	return row.ID, nil
}

func (r *ContactRepository) Update(ctx context.Context, c domain.Contact, categoryIDs []int64) error {
	now := time.Now()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Contact{}).
			Where("id = ? AND user_id = ? AND NOT is_deleted", c.ID, c.OwnerID).
			Updates(map[string]any{
				"full_name":    c.FullName,
				"phone_number": c.PhoneNumber,
				"email":        c.Email,
				"address":      c.Address,
				"notes":        c.Notes,
				"updated_at":   now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrContactNotFound
		}
		return replaceContactCategories(tx, c.ID, categoryIDs)
	})
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return domain.ErrContactNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicatePhone
		}
		return fmt.Errorf("update contact: %w", err)
	}
	return nil
}

func (r *ContactRepository) SoftDelete(ctx context.Context, ownerID, contactID int64) error {
	result := r.db.WithContext(ctx).Model(&models.Contact{}).
		Where("id = ? AND user_id = ? AND NOT is_deleted", contactID, ownerID).
		Updates(map[string]any{"is_deleted": true, "updated_at": time.Now()})
	if result.Error != nil {
		return fmt.Errorf("delete contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

func (r *ContactRepository) FetchPhoneNumbers(ctx context.Context, ownerID int64) ([]string, error) {
	var numbers []string

	err := r.db.WithContext(ctx).Model(&models.Contact{}).
		Where("user_id = ? AND NOT is_deleted", ownerID).
		Pluck("phone_number", &numbers).Error
	if err != nil {
		return nil, fmt.Errorf("fetch phone numbers: %w", err)
	}
	return numbers, nil
}

func (r *ContactRepository) FetchContacts(ctx context.Context, ownerID int64) ([]importexport.ContactRecord, error) {
	var rows []models.Contact

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND NOT is_deleted", ownerID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetch contacts: %w", err)
	}

	records := make([]importexport.ContactRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, importexport.ContactRecord{
			FullName:    row.FullName,
			PhoneNumber: row.PhoneNumber,
			Email:       row.Email,
			Address:     row.Address,
			Notes:       row.Notes,
			OwnerID:     row.UserID,
		})
	}
	return records, nil
}

func (r *ContactRepository) OwnerDashboard(ctx context.Context, ownerID int64, startOfMonth time.Time) (domain.OwnerDashboard, error) {
	var stats domain.OwnerDashboard

	owned := r.db.WithContext(ctx).Model(&models.Contact{}).
		Where("user_id = ? AND NOT is_deleted", ownerID)
	if err := owned.Session(&gorm.Session{}).Count(&stats.TotalContacts).Error; err != nil {
		return domain.OwnerDashboard{}, fmt.Errorf("count contacts: %w", err)
	}
	if err := owned.Session(&gorm.Session{}).
		Where("created_at >= ?", startOfMonth).
		Count(&stats.NewContactsThisMonth).Error; err != nil {
		return domain.OwnerDashboard{}, fmt.Errorf("count new contacts: %w", err)
	}
	return stats, nil
}

func (r *ContactRepository) ListAllContactsPage(ctx context.Context, search string, ownerID int64, pageIndex, pageSize int) (pagination.Page[domain.ContactWithOwner], error) {
	type joinedRow struct {
		models.Contact
		OwnerName  string
		OwnerEmail string
	}

	query := r.db.WithContext(ctx).Model(&models.Contact{}).
		Select("contacts.*, users.full_name AS owner_name, users.email AS owner_email").
		Joins("JOIN users ON users.id = contacts.user_id").
		Where("NOT contacts.is_deleted").
		Order("contacts.created_at DESC")
	if ownerID != 0 {
		query = query.Where("contacts.user_id = ?", ownerID)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("contacts.full_name ILIKE ? OR contacts.phone_number LIKE ?", pattern, pattern)
	}

	page, err := pagination.FromQuery[joinedRow](ctx, query, pageIndex, pageSize)
	if err != nil {
		return pagination.Page[domain.ContactWithOwner]{}, fmt.Errorf("list all contacts: %w", err)
	}

	contacts := make([]domain.ContactWithOwner, 0, len(page.Items))
	for _, row := range page.Items {
		contacts = append(contacts, domain.ContactWithOwner{
			Contact:    toDomainContact(row.Contact),
			OwnerName:  row.OwnerName,
			OwnerEmail: row.OwnerEmail,
		})
	}
	return pagination.Page[domain.ContactWithOwner]{
		Items:      contacts,
		PageIndex:  page.PageIndex,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
	}, nil
}

func replaceContactCategories(tx *gorm.DB, contactID int64, categoryIDs []int64) error {
	if err := tx.Where("contact_id = ?", contactID).
		Delete(&models.ContactCategory{}).Error; err != nil {
		return err
	}
	if len(categoryIDs) == 0 {
		return nil
	}

	links := make([]models.ContactCategory, 0, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		links = append(links, models.ContactCategory{ContactID: contactID, CategoryID: categoryID})
	}
	return tx.Create(&links).Error
}

func toDomainContact(row models.Contact) domain.Contact {
	return domain.Contact{
		ID:          row.ID,
		OwnerID:     row.UserID,
		FullName:    row.FullName,
		PhoneNumber: row.PhoneNumber,
		Email:       row.Email,
		Address:     row.Address,
		Notes:       row.Notes,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func toContactModel(c domain.Contact) models.Contact {
	return models.Contact{
		ID:          c.ID,
		UserID:      c.OwnerID,
		FullName:    c.FullName,
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
		Address:     c.Address,
		Notes:       c.Notes,
	}
}
