package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	Meals []Meal `gorm:"foreignKey:CategoryID" json:"meals,omitempty"`
}
