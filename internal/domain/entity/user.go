package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a back-office operator who can sign in and run reports
type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Username    string         `gorm:"size:100;uniqueIndex;not null" json:"username"`
	UserCode    string         `gorm:"size:50" json:"user_code"`
	FullName    string         `gorm:"size:255" json:"full_name"`
	Email       *string        `gorm:"size:255" json:"email,omitempty"`
	Password    string         `gorm:"size:255;not null" json:"-"`
	Role        string         `gorm:"size:50;not null;default:'Cashier'" json:"role"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	LastLoginAt *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleCashier = "Cashier"
)

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

// HasRole checks if the user has a specific role
func (u *User) HasRole(roleName string) bool {
	return u.Role == roleName
}

// DisplayName is what gets written into VoidedBy and receipt cashier fields.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}
