package controllers

import (
	"github.com/alibek123/DProject/pkg/resp"
	"github.com/alibek123/DProject/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MealController struct{ Svc *services.CatalogService }

func NewMealController(s *services.CatalogService) *MealController { return &MealController{Svc: s} }

// GET /meals
func (h *MealController) List(c *gin.Context) {
	meals, err := h.Svc.ListMeals()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, meals)
}

// GET /meals/:category_slug/:meal_slug
func (h *MealController) Detail(c *gin.Context) {
	meal, err := h.Svc.MealDetail(c.Param("category_slug"), c.Param("meal_slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, meal)
}

// GET /meals/:category_slug
func (h *MealController) Category(c *gin.Context) {
	cat, err := h.Svc.CategoryDetail(c.Param("category_slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, cat)
}

type CreateMealRequest struct {
	Title              string          `json:"title" binding:"required"`
	Slug               string          `json:"slug" binding:"required"`
	Price              decimal.Decimal `json:"price" binding:"required"`
	AvailableInventory int             `json:"availableInventory" binding:"gte=0"`
	CategoryID         uint            `json:"categoryId" binding:"required"`
}

// POST /admin/meals
func (h *MealController) Create(c *gin.Context) {
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	meal, err := h.Svc.CreateMeal(&services.MealInput{
		Title:              req.Title,
		Slug:               req.Slug,
		Price:              req.Price,
		AvailableInventory: req.AvailableInventory,
		CategoryID:         req.CategoryID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, meal)
}

type UpdateMealRequest struct {
	Title              *string          `json:"title"`
	Slug               *string          `json:"slug"`
	Price              *decimal.Decimal `json:"price"`
	AvailableInventory *int             `json:"availableInventory" binding:"omitempty,gte=0"`
	CategoryID         *uint            `json:"categoryId"`
}

// PATCH /admin/meals/:id
func (h *MealController) Update(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid meal id")
		return
	}

	var req UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.AvailableInventory != nil {
		updates["available_inventory"] = *req.AvailableInventory
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	meal, err := h.Svc.UpdateMeal(id, updates)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, meal)
}
