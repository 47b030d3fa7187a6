package services

import (
	"errors"

	"github.com/alibek123/DProject/entity"
	"github.com/alibek123/DProject/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, cat *repository.CatalogRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, CatalogRepo: cat}
}

// CartLine is one cart row with its computed subtotal.
type CartLine struct {
	ItemID   uint            `json:"itemId"`
	Meal     entity.Meal     `json:"meal"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type CartView struct {
	ID       uint            `json:"id"`
	Items    []CartLine      `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func (s *CartService) View(userID uint) (*CartView, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{ID: c.ID, Items: make([]CartLine, 0, len(c.Items)), Subtotal: decimal.Zero}
	for _, it := range c.Items {
		sub := it.Meal.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		view.Items = append(view.Items, CartLine{
			ItemID:   it.ID,
			Meal:     it.Meal,
			Quantity: it.Quantity,
			Subtotal: sub,
		})
		view.Subtotal = view.Subtotal.Add(sub)
	}
	return view, nil
}

// Add merges qty of a meal into the user's cart. The availability check
// counts what is already in the cart, so a cart can never ask for more of
// a meal than the shelf currently holds.
func (s *CartService) Add(userID, mealID uint, qty int) (*CartView, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	meal, err := s.CatalogRepo.GetMealByID(mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}

	cart, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	inCart := 0
	if line, err := s.CartRepo.FindItem(cart.ID, mealID); err == nil {
		inCart = line.Quantity
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if meal.AvailableInventory <= 0 || meal.AvailableInventory-(inCart+qty) < 0 {
		return nil, &InsufficientInventoryError{
			Meal:      meal.Title,
			Available: meal.AvailableInventory,
			Requested: inCart + qty,
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, cart.ID, mealID, qty)
	})
	if err != nil {
		return nil, err
	}

	return s.View(userID)
}

// RemoveOne takes a single unit of a meal out of the cart, dropping the
// line entirely when it was the last unit.
func (s *CartService) RemoveOne(userID, mealID uint) (*CartView, error) {
	if _, err := s.CatalogRepo.GetMealByID(mealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}

	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if cart.ID == 0 {
		return nil, ErrCartItemNotFound
	}

	var found bool
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		found, err = s.CartRepo.DecrementItem(tx, cart.ID, mealID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrCartItemNotFound
	}

	return s.View(userID)
}

// UpdateQty pins a line to an exact quantity (zero or less deletes it).
func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	var affected int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		affected, err = s.CartRepo.SetItemQty(tx, userID, itemID, qty)
		return err
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	var affected int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		affected, err = s.CartRepo.RemoveItem(tx, userID, itemID)
		return err
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
