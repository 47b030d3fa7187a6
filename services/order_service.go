package services

import (
	"errors"

	"github.com/alibek123/DProject/entity"
	"github.com/alibek123/DProject/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	catalogRepo *repository.CatalogRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, CatalogRepo: catalogRepo}
}

// CreateFromCart converts the user's cart into an order.
//
// The pre-check rejects obviously doomed carts with a message naming the
// offending meal; the conditional decrement inside the transaction is the
// one that actually guarantees inventory never goes negative when two
// orders race on the same meal. Order row, item snapshots, decrements and
// cart clearing commit together or not at all.
func (s *OrderService) CreateFromCart(userID uint) (*entity.Order, error) {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	total := decimal.Zero
	for _, it := range cart.Items {
		if it.Meal.AvailableInventory-it.Quantity < 0 {
			return nil, &InsufficientInventoryError{
				Meal:      it.Meal.Title,
				Available: it.Meal.AvailableInventory,
				Requested: it.Quantity,
			}
		}
		total = total.Add(it.Meal.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	total = total.Round(2)

	var order entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order = entity.Order{UserID: userID, Total: total}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				MealID:    it.MealID,
				Quantity:  it.Quantity,
				UnitPrice: it.Meal.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}

			ok, err := s.CatalogRepo.DecrementInventory(tx, it.MealID, it.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				// Someone else took the stock between the pre-check and
				// here; roll the whole order back. The pre-check snapshot
				// is stale by now, so report the count actually left.
				avail, aerr := s.CatalogRepo.GetInventory(tx, it.MealID)
				if aerr != nil {
					return aerr
				}
				return &InsufficientInventoryError{
					Meal:      it.Meal.Title,
					Available: avail,
					Requested: it.Quantity,
				}
			}
		}

		return s.CartRepo.ClearCart(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	return s.Repo.GetOrderForUser(userID, order.ID)
}

func (s *OrderService) History(userID uint) ([]entity.Order, error) {
	return s.Repo.ListOrdersForUser(userID)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}
