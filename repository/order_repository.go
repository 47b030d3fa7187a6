package repository

import (
	"github.com/alibek123/DProject/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// GET /orders/order_history → the user's orders, most recent first, with
// line snapshots and meal detail.
func (r *OrderRepository) ListOrdersForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Meal").
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

// GET /orders/:id — ownership-scoped.
func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").
		Preload("Items.Meal").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}
