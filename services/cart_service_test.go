package services

import (
	"errors"
	"testing"

	"github.com/alibek123/DProject/entity"
)

func TestCartService_AddMergesLines(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "a@example.com")
	cat := createCategory(t, db, "Main Dishes", "main-dishes")
	meal := createMeal(t, db, cat, "Plov", "plov", "6.50", 10)
	svc := newCartService(db)

	// Repeated adds of the same meal keep a single line whose quantity is
	// the sum of the requested quantities.
	for _, qty := range []int{2, 3, 1} {
		if _, err := svc.Add(user.ID, meal.ID, qty); err != nil {
			t.Fatalf("add qty %d: %v", qty, err)
		}
	}

	view, err := svc.View(user.ID)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(view.Items))
	}
	if view.Items[0].Quantity != 6 {
		t.Errorf("expected quantity 6, got %d", view.Items[0].Quantity)
	}
	if want := "39"; !view.Items[0].Subtotal.Equal(view.Subtotal) || view.Subtotal.String() != want {
		t.Errorf("expected subtotal %s, got %s", want, view.Subtotal)
	}

	var count int64
	db.Model(&entity.CartItem{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 cart item row, got %d", count)
	}
}

func TestCartService_AddErrors(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "a@example.com")
	cat := createCategory(t, db, "Drinks", "drinks")
	meal := createMeal(t, db, cat, "Ayran", "ayran", "1.50", 3)
	soldOut := createMeal(t, db, cat, "Kumis", "kumis", "2.00", 0)
	svc := newCartService(db)

	tests := []struct {
		name    string
		mealID  uint
		qty     int
		wantErr error
		wantInv bool
	}{
		{"unknown meal", 9999, 1, ErrMealNotFound, false},
		{"zero quantity", meal.ID, 0, ErrInvalidQuantity, false},
		{"negative quantity", meal.ID, -2, ErrInvalidQuantity, false},
		{"sold out", soldOut.ID, 1, nil, true},
		{"over inventory", meal.ID, 4, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(user.ID, tt.mealID, tt.qty)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantInv {
				var inv *InsufficientInventoryError
				if !errors.As(err, &inv) {
					t.Fatalf("expected InsufficientInventoryError, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCartService_AddChecksCombinedQuantity(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "a@example.com")
	cat := createCategory(t, db, "Main Dishes", "main-dishes")
	meal := createMeal(t, db, cat, "Manty", "manty", "5.90", 5)
	svc := newCartService(db)

	if _, err := svc.Add(user.ID, meal.ID, 3); err != nil {
		t.Fatalf("first add: %v", err)
	}

	// 3 already in the cart + 3 more would exceed the 5 on the shelf.
	_, err := svc.Add(user.ID, meal.ID, 3)
	var inv *InsufficientInventoryError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InsufficientInventoryError, got %v", err)
	}
	if inv.Meal != "Manty" {
		t.Errorf("error should name the meal, got %q", inv.Meal)
	}
	if inv.Available != 5 || inv.Requested != 6 {
		t.Errorf("expected available=5 requested=6, got %d/%d", inv.Available, inv.Requested)
	}

	// The failed add must not have touched the line.
	view, _ := svc.View(user.ID)
	if len(view.Items) != 1 || view.Items[0].Quantity != 3 {
		t.Errorf("cart changed by rejected add: %+v", view.Items)
	}
}

func TestCartService_RemoveOne(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "a@example.com")
	cat := createCategory(t, db, "Drinks", "drinks")
	tea := createMeal(t, db, cat, "Green Tea", "green-tea", "1.20", 50)
	ayran := createMeal(t, db, cat, "Ayran", "ayran", "1.50", 50)
	svc := newCartService(db)

	if _, err := svc.Add(user.ID, tea.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(user.ID, ayran.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	// quantity 2 → decrements to 1
	view, err := svc.RemoveOne(user.ID, tea.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	for _, line := range view.Items {
		if line.Meal.ID == tea.ID && line.Quantity != 1 {
			t.Errorf("expected tea quantity 1, got %d", line.Quantity)
		}
	}

	// quantity 1 → line deleted
	view, err = svc.RemoveOne(user.ID, tea.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].Meal.ID != ayran.ID {
		t.Errorf("expected only ayran left, got %+v", view.Items)
	}

	// no such line anymore
	if _, err := svc.RemoveOne(user.ID, tea.ID); !errors.Is(err, ErrCartItemNotFound) {
		t.Errorf("expected ErrCartItemNotFound, got %v", err)
	}

	// meal that does not exist at all
	if _, err := svc.RemoveOne(user.ID, 9999); !errors.Is(err, ErrMealNotFound) {
		t.Errorf("expected ErrMealNotFound, got %v", err)
	}
}

func TestCartService_UpdateQty(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "a@example.com")
	other := createUser(t, db, "b@example.com")
	cat := createCategory(t, db, "Drinks", "drinks")
	meal := createMeal(t, db, cat, "Green Tea", "green-tea", "1.20", 50)
	svc := newCartService(db)

	view, err := svc.Add(user.ID, meal.ID, 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	itemID := view.Items[0].ItemID

	if err := svc.UpdateQty(user.ID, itemID, 5); err != nil {
		t.Fatalf("update qty: %v", err)
	}
	view, _ = svc.View(user.ID)
	if view.Items[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", view.Items[0].Quantity)
	}

	// Another user cannot touch the line.
	if err := svc.UpdateQty(other.ID, itemID, 1); !errors.Is(err, ErrCartItemNotFound) {
		t.Errorf("expected ErrCartItemNotFound for foreign item, got %v", err)
	}

	// Zero or less removes the line.
	if err := svc.UpdateQty(user.ID, itemID, 0); err != nil {
		t.Fatalf("update qty to 0: %v", err)
	}
	view, _ = svc.View(user.ID)
	if len(view.Items) != 0 {
		t.Errorf("expected empty cart, got %d lines", len(view.Items))
	}
}
