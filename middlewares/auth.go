package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MavMaver/food-delivery/configs"
	"github.com/MavMaver/food-delivery/pkg/resp"
	"github.com/MavMaver/food-delivery/utils"
)

// AuthMiddleware verifies the Bearer token and, when roles are given,
// requires one of them.
func AuthMiddleware(cfg *configs.Config, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(h, "Bearer "), cfg.JWTSecret)
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
