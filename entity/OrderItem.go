package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem snapshots a cart line at order-creation time. Later changes
// to the meal's price or inventory never touch existing rows.
type OrderItem struct {
	gorm.Model
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MealID uint `json:"mealId"`
	Meal   Meal `json:"meal"`
}
