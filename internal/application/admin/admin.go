package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	contactdomain "github.com/haanhduc/mycontact/internal/domain/contact"
	userdomain "github.com/haanhduc/mycontact/internal/domain/user"
	"github.com/haanhduc/mycontact/internal/pagination"
)

const defaultPageSize = 10

type adminUserRepository interface {
	AdminDashboard(ctx context.Context, startOfToday time.Time) (userdomain.AdminDashboard, error)
	ListActiveUsersPage(ctx context.Context, search string, pageIndex, pageSize int) (pagination.Page[userdomain.AccountSummary], error)
	GetUserSummary(ctx context.Context, userID int64) (userdomain.AccountSummary, error)
}

type adminContactRepository interface {
	// ListAllContactsPage spans every tenant; ownerID 0 means no filter.
	ListAllContactsPage(ctx context.Context, search string, ownerID int64, pageIndex, pageSize int) (pagination.Page[contactdomain.ContactWithOwner], error)
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrLoadDashboard = errors.New("failed to load dashboard")
	ErrListUsers     = errors.New("failed to list users")
	ErrListContacts  = errors.New("failed to list contacts")
)

type DashboardOutput struct {
	TotalUsers    int64 `json:"total_users"`
	TotalContacts int64 `json:"total_contacts"`
	NewUsersToday int64 `json:"new_users_today"`
	ActiveUsers   int64 `json:"active_users"`
	InactiveUsers int64 `json:"inactive_users"`
}

type UserRow struct {
	UserID        int64     `json:"user_id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	IsActive      bool      `json:"is_active"`
	TotalContacts int64     `json:"total_contacts"`
	CreatedAt     time.Time `json:"created_at"`
}

type ContactRow struct {
	ContactID   int64     `json:"contact_id"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	OwnerName   string    `json:"owner_name"`
	OwnerEmail  string    `json:"owner_email"`
	CreatedAt   time.Time `json:"created_at"`
}

type Service struct {
	users    adminUserRepository
	contacts adminContactRepository
}

func NewService(users adminUserRepository, contacts adminContactRepository) *Service {
	return &Service{users: users, contacts: contacts}
}

func (s *Service) Dashboard(ctx context.Context) (DashboardOutput, error) {
	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats, err := s.users.AdminDashboard(ctx, startOfToday)
	if err != nil {
		return DashboardOutput{}, fmt.Errorf("%w: %v", ErrLoadDashboard, err)
	}
	return DashboardOutput{
		TotalUsers:    stats.TotalUsers,
		TotalContacts: stats.TotalContacts,
		NewUsersToday: stats.NewUsersToday,
		ActiveUsers:   stats.ActiveUsers,
		InactiveUsers: stats.InactiveUsers,
	}, nil
}

func (s *Service) ListUsers(ctx context.Context, search string, pageIndex, pageSize int) (pagination.Page[UserRow], error) {
	pageIndex, pageSize = clamp(pageIndex, pageSize)

	page, err := s.users.ListActiveUsersPage(ctx, strings.TrimSpace(search), pageIndex, pageSize)
	if err != nil {
		return pagination.Page[UserRow]{}, fmt.Errorf("%w: %v", ErrListUsers, err)
	}

	rows := make([]UserRow, 0, len(page.Items))
	for _, item := range page.Items {
		rows = append(rows, userRow(item))
	}
	return pagination.Page[UserRow]{
		Items:      rows,
		PageIndex:  page.PageIndex,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
	}, nil
}

func (s *Service) GetUser(ctx context.Context, userID int64) (UserRow, error) {
	summary, err := s.users.GetUserSummary(ctx, userID)
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			return UserRow{}, ErrUserNotFound
		}
		return UserRow{}, fmt.Errorf("%w: %v", ErrListUsers, err)
	}
	return userRow(summary), nil
}

func (s *Service) ListContacts(ctx context.Context, search string, ownerID int64, pageIndex, pageSize int) (pagination.Page[ContactRow], error) {
	pageIndex, pageSize = clamp(pageIndex, pageSize)

	page, err := s.contacts.ListAllContactsPage(ctx, strings.TrimSpace(search), ownerID, pageIndex, pageSize)
	if err != nil {
		return pagination.Page[ContactRow]{}, fmt.Errorf("%w: %v", ErrListContacts, err)
	}

	rows := make([]ContactRow, 0, len(page.Items))
	for _, item := range page.Items {
		rows = append(rows, ContactRow{
			ContactID:   item.ID,
			FullName:    item.FullName,
			PhoneNumber: item.PhoneNumber,
			OwnerName:   item.OwnerName,
			OwnerEmail:  item.OwnerEmail,
			CreatedAt:   item.CreatedAt,
		})
	}
	return pagination.Page[ContactRow]{
		Items:      rows,
		PageIndex:  page.PageIndex,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
	}, nil
}

func clamp(pageIndex, pageSize int) (int, int) {
	if pageIndex < 1 {
		pageIndex = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return pageIndex, pageSize
}

func userRow(summary userdomain.AccountSummary) UserRow {
	return UserRow{
		UserID:        summary.ID,
		FullName:      summary.FullName,
		Email:         summary.Email,
		IsActive:      summary.IsActive,
		TotalContacts: summary.TotalContacts,
		CreatedAt:     summary.CreatedAt,
	}
}
