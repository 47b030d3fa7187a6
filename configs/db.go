package configs

import (
	"github.com/alibek123/DProject/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Meal{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
