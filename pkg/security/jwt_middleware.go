package security

import (
	"fmt"
	"net/http"
	"strings"

	"assetdesk/pkg/roles"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTMiddleware validates the bearer token and extracts claims.
func JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization header missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return secretKey(), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			c.Abort()
			return
		}

		claims := token.Claims.(jwt.MapClaims)
		c.Set("emp_id", claims["emp_id"])
		c.Set("role", claims["role"])
		c.Next()
	}
}

// Authorize ensures the authenticated user has at least the required role.
func Authorize(requiredRole roles.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden: insufficient permissions"})
			c.Abort()
			return
		}

		roleString, ok := value.(string)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Invalid role format"})
			c.Abort()
			return
		}

		userRole := roles.Role(roleString)
		if !userRole.IsValid() || !userRole.HasPermission(requiredRole) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden: insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
