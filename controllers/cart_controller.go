package controllers

import (
	"github.com/alibek123/DProject/pkg/resp"
	"github.com/alibek123/DProject/services"
	"github.com/alibek123/DProject/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// PUT /carts/add_to_cart — body {"id": mealID, "quantity": n}
func (h *CartController) AddToCart(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var body struct {
		ID       uint `json:"id" binding:"required"`
		Quantity int  `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	view, err := h.Svc.Add(uid, body.ID, body.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, view)
}

// POST|PUT /carts/:id/remove_from_cart — body {"id": mealID}
// The path id is kept for URL compatibility; the cart is always the
// authenticated user's own.
func (h *CartController) RemoveFromCart(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var body struct {
		ID uint `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	view, err := h.Svc.RemoveOne(uid, body.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, view)
}

// GET /carts/mine
func (h *CartController) Mine(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	view, err := h.Svc.View(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, view)
}

// PATCH /carts/items/:id
func (h *CartController) UpdateQty(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	itemID, ok := paramUint(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid item id")
		return
	}

	var body struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateQty(uid, itemID, body.Quantity); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"itemId": itemID, "quantity": body.Quantity})
}

// DELETE /carts/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	itemID, ok := paramUint(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid item id")
		return
	}

	if err := h.Svc.RemoveItem(uid, itemID); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": itemID})
}

// DELETE /carts/mine
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	if err := h.Svc.Clear(uid); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
