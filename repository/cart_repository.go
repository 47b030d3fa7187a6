package repository

import (
	"errors"

	"github.com/alibek123/DProject/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// Returns the user's cart with lines and meal detail preloaded. A user who
// never added anything gets an empty, unsaved cart back instead of an error.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Meal").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Lazily creates the user's cart row on first access.
func (r *CartRepository) GetOrCreateCart(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindItem returns the (cart, meal) line, or gorm.ErrRecordNotFound.
func (r *CartRepository) FindItem(cartID, mealID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	if err := r.DB.Where("cart_id = ? AND meal_id = ?", cartID, mealID).First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

// UpsertItem merges qty into the existing (cart, meal) line or inserts one,
// keeping at most one row per pair.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID, mealID uint, qty int) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND meal_id = ?", cartID, mealID).First(&exist).Error
	if err == nil {
		exist.Quantity += qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(&entity.CartItem{CartID: cartID, MealID: mealID, Quantity: qty}).Error
}

// DecrementItem takes one unit off a line, deleting it when quantity hits
// zero. Reports whether a matching line existed.
func (r *CartRepository) DecrementItem(tx *gorm.DB, cartID, mealID uint) (bool, error) {
	var it entity.CartItem
	err := tx.Where("cart_id = ? AND meal_id = ?", cartID, mealID).First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if it.Quantity <= 1 {
		return true, tx.Unscoped().Delete(&it).Error
	}
	it.Quantity--
	return true, tx.Save(&it).Error
}

// SetItemQty pins a line to an exact quantity; zero or less removes it.
// The subquery scopes the item to the user's own cart.
func (r *CartRepository) SetItemQty(tx *gorm.DB, userID, itemID uint, qty int) (int64, error) {
	if qty <= 0 {
		return r.RemoveItem(tx, userID, itemID)
	}
	res := tx.Model(&entity.CartItem{}).
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Update("quantity", qty)
	return res.RowsAffected, res.Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) (int64, error) {
	res := tx.Unscoped().
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return tx.Unscoped().Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}
