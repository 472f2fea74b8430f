// auth_middleware.go
package middleware

import (
	"net/http"
	"strings"

	"reserva-service/internal/service"

	"github.com/gin-gonic/gin"
)

// Middleware que valida o token e guarda o ator no contexto
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing authorization header"})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		token = strings.TrimSpace(token)
		user, err := authService.ValidateToken(token)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("atorID", user.ID)
		c.Set("atorNome", user.Nome)
		c.Set("atorPapel", string(user.Papel))
		c.Next()
	}
}
