package contact

import (
	"strings"
	"time"
)

type Category struct {
	ID        int64
	OwnerID   int64
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewCategory(ownerID int64, name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 50 {
		return Category{}, ErrInvalidCategoryName
	}
	return Category{OwnerID: ownerID, Name: name}, nil
}
