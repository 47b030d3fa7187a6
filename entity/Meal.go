package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Meal struct {
	gorm.Model
	Title string          `gorm:"size:200;not null" json:"title"`
	Slug  string          `gorm:"size:200;not null;uniqueIndex:idx_meal_category_slug" json:"slug"`
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	// Decremented only at order-creation time, never below zero.
	AvailableInventory int `gorm:"not null;default:0" json:"availableInventory"`

	CategoryID uint     `gorm:"uniqueIndex:idx_meal_category_slug" json:"categoryId"`
	Category   Category `json:"category,omitempty"`

	OrderItems []OrderItem `json:"-"`
}
