package models

import (
	"time"
)

// Service is an item from the shop's service catalog
type Service struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string  `gorm:"not null" json:"name"`
	Category string  `json:"category"`
	Price    float64 `gorm:"not null" json:"price"`
	Link     string  `json:"link"`
}

// Client is a customer of the shop, deduplicated by name and phone
type Client struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name  string `gorm:"not null" json:"name"`
	Phone string `json:"phone"`
}

// Order is one performed service, submitted by the employee who did the work
type Order struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID    string  `gorm:"not null;index" json:"user_id"`
	ClientID  uint    `gorm:"not null" json:"client_id"`
	ServiceID uint    `gorm:"not null" json:"service_id"`
	Price     float64 `gorm:"not null" json:"price"` // catalog price at submit time
	Quantity  int     `gorm:"default:1" json:"quantity"`
	Discount  float64 `gorm:"default:0" json:"discount"`
	Total     float64 `json:"total"`
	Notes     string  `json:"notes"`

	// Relationships
	User    User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Client  Client  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`
	Service Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`
}

// Expense is a shop expense recorded by a staff member
type Expense struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name   string  `gorm:"not null" json:"name"`
	Amount float64 `gorm:"not null" json:"amount"`
	UserID string  `gorm:"not null;index" json:"user_id"`

	// Relationships
	User User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
}
