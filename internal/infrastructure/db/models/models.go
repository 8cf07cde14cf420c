package models

import "time"

type User struct {
	ID           int64  `gorm:"primaryKey"`
	FullName     string `gorm:"size:100;not null"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:72"`
	Role         string `gorm:"size:16;not null;default:user"`
	IsActive     bool   `gorm:"not null;default:true"`
	ProviderName string `gorm:"size:32;not null;default:local;index:idx_users_provider,priority:1"`
	ProviderID   string `gorm:"size:255;index:idx_users_provider,priority:2"`
	AvatarPath   string `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func (User) TableName() string {
	return "users"
}

type Contact struct {
	ID          int64  `gorm:"primaryKey"`
	UserID      int64  `gorm:"not null;index"`
	FullName    string `gorm:"size:100;not null"`
	PhoneNumber string `gorm:"size:32;not null"`
	Email       string `gorm:"size:100"`
	Address     string `gorm:"size:200"`
	Notes       string `gorm:"type:text"`
	IsDeleted   bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   *time.Time

	Categories []Category `gorm:"many2many:contact_categories;joinForeignKey:ContactID;joinReferences:CategoryID"`
}

func (Contact) TableName() string {
	return "contacts"
}

type Category struct {
	ID        int64  `gorm:"primaryKey"`
	UserID    int64  `gorm:"not null;index"`
	Name      string `gorm:"size:50;not null"`
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (Category) TableName() string {
	return "categories"
}

type ContactCategory struct {
	ContactID  int64 `gorm:"primaryKey"`
	CategoryID int64 `gorm:"primaryKey"`
}

func (ContactCategory) TableName() string {
	return "contact_categories"
}

type PasswordReset struct {
	ID        int64  `gorm:"primaryKey"`
	UserID    int64  `gorm:"not null;index"`
	Token     string `gorm:"size:36;not null;uniqueIndex"`
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

func (PasswordReset) TableName() string {
	return "password_resets"
}
