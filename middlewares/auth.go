package middlewares

import (
	"strings"

	"github.com/alibek123/DProject/pkg/resp"
	"github.com/alibek123/DProject/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and, when roles are given,
// enforces that the caller holds one of them.
func AuthMiddleware(secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "forbidden")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
