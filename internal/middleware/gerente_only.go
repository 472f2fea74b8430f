// gerente_only.go
package middleware

import (
	"net/http"

	"reserva-service/internal/model"

	"github.com/gin-gonic/gin"
)

// GerenteOnly barra qualquer ator que não seja Gerente. Listagem
// completa, relatórios e operações administrativas passam por aqui.
func GerenteOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("atorPapel") != string(model.PapelGerente) {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "acesso restrito ao gerente"})
			c.Abort()
			return
		}
		c.Next()
	}
}
