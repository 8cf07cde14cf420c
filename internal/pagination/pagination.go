package pagination

import (
	"context"

	"gorm.io/gorm"
)

// Page is one window of an ordered result set. PageIndex is 1-based; a
// page beyond the end has empty Items rather than being an error.
type Page[T any] struct {
	Items      []T `json:"items"`
	PageIndex  int `json:"page_index"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

func (p Page[T]) HasPrevious() bool {
	return p.PageIndex > 1
}

func (p Page[T]) HasNext() bool {
	return p.PageIndex < p.TotalPages
}

func newPage[T any](items []T, totalCount, pageIndex, pageSize int) Page[T] {
	totalPages := (totalCount + pageSize - 1) / pageSize
	return Page[T]{
		Items:      items,
		PageIndex:  pageIndex,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

// FromSlice windows an already ordered in-memory slice.
func FromSlice[T any](source []T, pageIndex, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(source)
	start := (pageIndex - 1) * pageSize
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	items := make([]T, end-start)
	copy(items, source[start:end])
	return newPage(items, total, pageIndex, pageSize)
}

// FromQuery runs exactly one count and one bounded fetch against an
// ordered gorm query. Ordering is the caller's responsibility, as is
// clamping pageIndex to >= 1.
func FromQuery[T any](ctx context.Context, query *gorm.DB, pageIndex, pageSize int) (Page[T], error) {
	if pageSize < 1 {
		pageSize = 1
	}

	var total int64
	if err := query.WithContext(ctx).Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page[T]{}, err
	}

	items := make([]T, 0, pageSize)
	err := query.WithContext(ctx).Session(&gorm.Session{}).
		Offset((pageIndex - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return Page[T]{}, err
	}

	return newPage(items, int(total), pageIndex, pageSize), nil
}
