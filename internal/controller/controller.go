package controller

import (
	"errors"
	"net/http"

	"reserva-service/internal/dto"
	"reserva-service/internal/model"
	"reserva-service/internal/repository"
	"reserva-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ReservaController struct {
	Service    *service.ReservaService
	Relatorios *service.RelatorioService
}

func NewReservaController(s *service.ReservaService, r *service.RelatorioService) *ReservaController {
	return &ReservaController{Service: s, Relatorios: r}
}

// Erros de negócio que viram 400; o restante mapeia em 403 ou 500
var erros400 = []error{
	repository.ErrNotFound,
	service.ErrClienteNaoEncontrado,
	service.ErrPacoteNaoEncontrado,
	service.ErrEnderecoNaoEncontrado,
	service.ErrDatasInvalidas,
	service.ErrInicioAposTermino,
	service.ErrDuracaoMinima,
	service.ErrEntregaJaRegistrada,
	service.ErrEntregaNaoRegistrada,
	service.ErrColetaJaRegistrada,
	service.ErrCodigoEntregaInvalido,
	service.ErrCodigoColetaInvalido,
	service.ErrReservaNaoCancelavel,
	service.ErrStatusInvalido,
	service.ErrPeriodoInvalido,
}

// Todo corpo de erro segue o contrato {success: false, message: ...}
func responderErro(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNaoAutorizado) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": err.Error()})
		return
	}
	for _, alvo := range erros400 {
		if errors.Is(err, alvo) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
}

func atorDoContexto(c *gin.Context) service.Ator {
	return service.Ator{
		ID:    c.GetString("atorID"),
		Papel: model.Papel(c.GetString("atorPapel")),
	}
}

// POST /reservas
func (ctl *ReservaController) CriarReserva(c *gin.Context) {
	var req dto.CriarReservaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	reserva, err := ctl.Service.CriarReserva(c.Request.Context(), atorDoContexto(c), req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, reserva)
}

// GET /reservas/:id — reserva com cliente, pacote e endereço resolvidos
func (ctl *ReservaController) BuscarReserva(c *gin.Context) {
	det, err := ctl.Service.BuscarReserva(c.Request.Context(), atorDoContexto(c), c.Param("id"))
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, det)
}

// GET /reservas — somente Gerente (middleware)
func (ctl *ReservaController) ListarReservas(c *gin.Context) {
	reservas, err := ctl.Service.ListarReservas(c.Request.Context())
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, reservas)
}

// GET /reservas/minhas
func (ctl *ReservaController) MinhasReservas(c *gin.Context) {
	reservas, err := ctl.Service.ListarMinhasReservas(c.Request.Context(), atorDoContexto(c))
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, reservas)
}

// PATCH /reservas/:id/cancelar-reserva
func (ctl *ReservaController) CancelarReserva(c *gin.Context) {
	reserva, err := ctl.Service.CancelarReserva(c.Request.Context(), atorDoContexto(c), c.Param("id"))
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, reserva)
}

// PATCH /reservas/:id/confirmar-entrega
func (ctl *ReservaController) ConfirmarEntrega(c *gin.Context) {
	var req dto.ConfirmarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	reserva, err := ctl.Service.ConfirmarEntrega(c.Request.Context(), atorDoContexto(c), c.Param("id"), req.Codigo)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, reserva)
}

// PATCH /reservas/:id/confirmar-coleta
func (ctl *ReservaController) ConfirmarColeta(c *gin.Context) {
	var req dto.ConfirmarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	reserva, err := ctl.Service.ConfirmarColeta(c.Request.Context(), atorDoContexto(c), c.Param("id"), req.Codigo)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, reserva)
}

// PUT /reservas/:id — sobrescrita administrativa, somente Gerente
func (ctl *ReservaController) AtualizacaoAdministrativa(c *gin.Context) {
	var req dto.AtualizacaoAdministrativaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	reserva, err := ctl.Service.AtualizacaoAdministrativa(c.Request.Context(), atorDoContexto(c), c.Param("id"), req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, reserva)
}

// DELETE /reservas/:id — degrada para cancelamento, somente Gerente
func (ctl *ReservaController) ExcluirReserva(c *gin.Context) {
	var req dto.ExcluirReservaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	reserva, err := ctl.Service.ExcluirReserva(c.Request.Context(), atorDoContexto(c), c.Param("id"), req.Motivo)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, reserva)
}

// GET /relatorios/financeiro?dataInicio&dataTermino
func (ctl *ReservaController) RelatorioFinanceiro(c *gin.Context) {
	resp, err := ctl.Relatorios.RelatorioFinanceiro(c.Request.Context(), c.Query("dataInicio"), c.Query("dataTermino"))
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /relatorios/reservas?dataInicio&dataTermino
func (ctl *ReservaController) RelatorioReservas(c *gin.Context) {
	resp, err := ctl.Relatorios.RelatorioReservas(c.Request.Context(), c.Query("dataInicio"), c.Query("dataTermino"))
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
