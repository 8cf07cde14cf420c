package contact

import (
	"context"
	"fmt"
	"time"

	domain "github.com/haanhduc/mycontact/internal/domain/contact"
)

type ownerStatsFetcher interface {
	OwnerDashboard(ctx context.Context, ownerID int64, startOfMonth time.Time) (domain.OwnerDashboard, error)
}

type DashboardOutput struct {
	TotalContacts        int64 `json:"total_contacts"`
	NewContactsThisMonth int64 `json:"new_contacts_this_month"`
}

type GetDashboard interface {
	Execute(ctx context.Context, ownerID int64) (DashboardOutput, error)
}

type getDashboard struct {
	stats ownerStatsFetcher
}

func NewGetDashboard(stats ownerStatsFetcher) GetDashboard {
	return &getDashboard{stats: stats}
}

func (uc *getDashboard) Execute(ctx context.Context, ownerID int64) (DashboardOutput, error) {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats, err := uc.stats.OwnerDashboard(ctx, ownerID, startOfMonth)
	if err != nil {
		return DashboardOutput{}, fmt.Errorf("load owner dashboard: %w", err)
	}
	return DashboardOutput{
		TotalContacts:        stats.TotalContacts,
		NewContactsThisMonth: stats.NewContactsThisMonth,
	}, nil
}
