package entity

import (
	"gorm.io/gorm"
)

// CartItem holds at most one row per (cart, meal); repeated adds merge
// into the existing row's quantity.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId" gorm:"uniqueIndex:idx_cart_meal"`
	Cart   Cart `json:"-"`

	MealID uint `json:"mealId" gorm:"uniqueIndex:idx_cart_meal"`
	Meal   Meal `json:"meal"`

	Quantity int `json:"quantity"`
}
