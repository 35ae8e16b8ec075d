package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User represents an account in the system
type User struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	FullName  string        `gorm:"size:255;not null" json:"fullName"`
	Email     string        `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone     *string       `gorm:"size:50" json:"phone,omitempty"`
	Role      enum.UserRole `gorm:"size:20;not null;default:'user';index" json:"role"`
	CreatedAt time.Time     `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
