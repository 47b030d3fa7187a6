package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alibek123/DProject/entity"
	"github.com/alibek123/DProject/repository"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Each test gets its own named in-memory database; cache=shared keeps the
// connection pool pointed at the same store.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Meal{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Role: "customer"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func createCategory(t *testing.T, db *gorm.DB, name, slug string) *entity.Category {
	t.Helper()
	c := &entity.Category{Name: name, Slug: slug}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return c
}

func createMeal(t *testing.T, db *gorm.DB, cat *entity.Category, title, slug, price string, inventory int) *entity.Meal {
	t.Helper()
	m := &entity.Meal{
		Title:              title,
		Slug:               slug,
		Price:              decimal.RequireFromString(price),
		AvailableInventory: inventory,
		CategoryID:         cat.ID,
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("create meal: %v", err)
	}
	return m
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewCatalogRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewCatalogRepository(db),
	)
}
