package entity

import (
	"gorm.io/gorm"
)

// Cart is one-to-one with a user, created lazily on first access.
type Cart struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
