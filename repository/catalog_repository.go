package repository

import (
	"github.com/alibek123/DProject/entity"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// GET /meals → every meal with its category
func (r *CatalogRepository) ListMeals() ([]entity.Meal, error) {
	var meals []entity.Meal
	err := r.DB.Preload("Category").Order("id").Find(&meals).Error
	return meals, err
}

// Basic row (id, title, price, inventory) for cart/order math.
func (r *CatalogRepository) GetMealByID(id uint) (*entity.Meal, error) {
	var m entity.Meal
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GET /meals/:category_slug/:meal_slug
func (r *CatalogRepository) GetMealBySlugs(categorySlug, mealSlug string) (*entity.Meal, error) {
	var m entity.Meal
	err := r.DB.
		Joins("JOIN categories ON categories.id = meals.category_id").
		Where("categories.slug = ? AND meals.slug = ?", categorySlug, mealSlug).
		Preload("Category").
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GET /meals/:category_slug
func (r *CatalogRepository) GetCategoryBySlug(slug string) (*entity.Category, error) {
	var c entity.Category
	err := r.DB.Where("slug = ?", slug).Preload("Meals").First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CatalogRepository) CategoryExists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Category{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// POST /admin/meals
func (r *CatalogRepository) CreateMeal(m *entity.Meal) error {
	return r.DB.Create(m).Error
}

// PATCH /admin/meals/:id — partial update, reports whether the row existed.
func (r *CatalogRepository) UpdateMeal(id uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Meal{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

// GetInventory reads the current shelf count through the caller's
// transaction, so a post-decrement failure can report what is really left.
func (r *CatalogRepository) GetInventory(tx *gorm.DB, mealID uint) (int, error) {
	var m entity.Meal
	if err := tx.Select("available_inventory").First(&m, mealID).Error; err != nil {
		return 0, err
	}
	return m.AvailableInventory, nil
}

// DecrementInventory takes qty units off a meal's inventory, but only when
// enough is left. The WHERE guard makes the check-and-decrement a single
// statement, so two concurrent orders can never drive inventory negative:
// whichever commits second sees zero rows affected and aborts.
func (r *CatalogRepository) DecrementInventory(tx *gorm.DB, mealID uint, qty int) (bool, error) {
	res := tx.Model(&entity.Meal{}).
		Where("id = ? AND available_inventory >= ?", mealID, qty).
		UpdateColumn("available_inventory", gorm.Expr("available_inventory - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
