package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alibek123/DProject/entity"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&entity.Category{}, &entity.Meal{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// The WHERE guard is what keeps inventory non-negative even when the
// caller's pre-check was stale.
func TestCatalogRepository_DecrementInventoryGuard(t *testing.T) {
	db := openTestDB(t)
	repo := NewCatalogRepository(db)

	cat := entity.Category{Name: "Drinks", Slug: "drinks"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	meal := entity.Meal{
		Title:              "Ayran",
		Slug:               "ayran",
		Price:              decimal.RequireFromString("1.50"),
		AvailableInventory: 5,
		CategoryID:         cat.ID,
	}
	if err := db.Create(&meal).Error; err != nil {
		t.Fatalf("create meal: %v", err)
	}

	ok, err := repo.DecrementInventory(db, meal.ID, 3)
	if err != nil || !ok {
		t.Fatalf("decrement within stock: ok=%v err=%v", ok, err)
	}

	// 2 left; asking for 3 must refuse and leave the row alone.
	ok, err = repo.DecrementInventory(db, meal.ID, 3)
	if err != nil {
		t.Fatalf("decrement: %v", err)
	}
	if ok {
		t.Error("decrement past zero was allowed")
	}

	var m entity.Meal
	db.First(&m, meal.ID)
	if m.AvailableInventory != 2 {
		t.Errorf("expected inventory 2, got %d", m.AvailableInventory)
	}

	// Unknown meal also reports no rows.
	ok, err = repo.DecrementInventory(db, 9999, 1)
	if err != nil || ok {
		t.Errorf("expected ok=false for unknown meal, got ok=%v err=%v", ok, err)
	}
}
