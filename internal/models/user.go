package models

import (
	"time"
)

// Role gates what a user can see and do.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleManager || r == RoleEmployee
}

// User represents a staff member account
type User struct {
	ID           string    `gorm:"primarykey" json:"id"` // UUID
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Name         string `gorm:"not null" json:"name"`
	Role         Role   `gorm:"default:employee" json:"role"`
	PasswordHash string `json:"-"`
}

// ActivityLog is an append-only audit trail of notable user actions
type ActivityLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Action    string    `gorm:"not null" json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

// AppSettings is a single-row table holding shop-wide preferences
type AppSettings struct {
	ID          uint   `gorm:"primarykey" json:"id"` // always 1
	OfficeTitle string `gorm:"default:Shopdesk" json:"office_title"`
	AppTheme    string `gorm:"default:dark" json:"app_theme"`
}
