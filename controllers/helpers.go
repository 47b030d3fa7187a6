package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func paramUint(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
