package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/salgaderia-api/internal/presentation/http/dto/response"
	"github.com/sangkips/salgaderia-api/pkg/utils"
)

// Context keys set by AuthMiddleware
const (
	OperatorIDKey    = "operator_id"
	OperatorNameKey  = "operator_name"
	OperatorEmailKey = "operator_email"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(OperatorIDKey, claims.OperatorID)
		c.Set(OperatorNameKey, claims.Name)
		c.Set(OperatorEmailKey, claims.Email)

		c.Next()
	}
}
