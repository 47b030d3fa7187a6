package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is an immutable record created by converting a cart's contents.
// Total is computed at creation time, never user-supplied.
type Order struct {
	gorm.Model
	Total decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	Items []OrderItem `json:"items"`
}
