package controllers

import (
	"errors"

	"github.com/alibek123/DProject/pkg/resp"
	"github.com/alibek123/DProject/services"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error vocabulary to HTTP statuses:
// unknown ids/slugs → 404, insufficient inventory → 409, bad input → 400.
func respondError(c *gin.Context, err error) {
	var inv *services.InsufficientInventoryError
	switch {
	case errors.As(err, &inv):
		resp.Conflict(c, inv.Error())
	case errors.Is(err, services.ErrMealNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrEmptyCart):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
