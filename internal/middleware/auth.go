package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"collegefest_backend/internal/auth"
	"collegefest_backend/internal/repositories"
)

// AdminAuth verifies the Bearer token and checks the admin account still
// exists, matching what the token claims.
func AdminAuth(jwtSecret string, adminRepo repositories.AdminUserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		admin, err := adminRepo.FindByID(claims.AdminID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("adminID", admin.ID)
		c.Set("adminRole", string(admin.Role))
		c.Next()
	}
}
