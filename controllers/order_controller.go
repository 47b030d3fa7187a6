package controllers

import (
	"github.com/alibek123/DProject/pkg/resp"
	"github.com/alibek123/DProject/services"
	"github.com/alibek123/DProject/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /orders/make_order — converts the caller's cart into an order.
func (h *OrderController) MakeOrder(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	order, err := h.Svc.CreateFromCart(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/order_history
func (h *OrderController) History(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	orders, err := h.Svc.History(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	orderID, ok := paramUint(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.Svc.DetailForUser(uid, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}
