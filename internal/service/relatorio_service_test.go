package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reserva-service/internal/model"
	"reserva-service/internal/repository"
)

func seedReserva(t *testing.T, repo *repository.MemReservaRepository, id string, valor float64, status model.StatusReserva, inicio, termino string) {
	t.Helper()
	di, err := time.Parse(time.RFC3339, inicio)
	require.NoError(t, err)
	dt, err := time.Parse(time.RFC3339, termino)
	require.NoError(t, err)
	require.NoError(t, repo.Insert(context.Background(), &model.Reserva{
		ID:          id,
		ClienteID:   "cli-1",
		PacoteID:    "pac-1",
		EnderecoID:  "end-1",
		Valor:       valor,
		Status:      status,
		DataInicio:  di,
		DataTermino: dt,
	}))
}

func TestRelatorioFinanceiro(t *testing.T) {
	t.Run("só reservas concluídas entram no faturamento", func(t *testing.T) {
		repo := repository.NewMemReservaRepository()
		seedReserva(t, repo, "r1", 500, model.StatusConcluida, "2025-01-11T08:00:00Z", "2025-01-13T08:00:00Z")
		seedReserva(t, repo, "r2", 500, model.StatusCancelada, "2025-01-11T08:00:00Z", "2025-01-13T08:00:00Z")

		svc := NewRelatorioService(repo)
		resp, err := svc.RelatorioFinanceiro(context.Background(), "2025-01-11", "2025-11-11")
		require.NoError(t, err)

		assert.Equal(t, 500.0, resp.TotalRecebido)
		assert.Equal(t, 1, resp.QuantidadeReservasConcluidas)
		assert.Equal(t, 500.0, resp.ValorMedioReservas)
		require.Len(t, resp.FaturamentoPorDia, 1)
		assert.Equal(t, "2025-01-11", resp.FaturamentoPorDia[0].Dia)
		assert.Equal(t, 1, resp.FaturamentoPorDia[0].QuantidadeReservas)
		assert.Equal(t, 500.0, resp.FaturamentoPorDia[0].FaturamentoDia)
	})

	t.Run("baldes diários ascendentes e média com duas casas", func(t *testing.T) {
		repo := repository.NewMemReservaRepository()
		seedReserva(t, repo, "r1", 100, model.StatusConcluida, "2025-02-20T08:00:00Z", "2025-02-21T08:00:00Z")
		seedReserva(t, repo, "r2", 250.50, model.StatusConcluida, "2025-02-18T08:00:00Z", "2025-02-19T08:00:00Z")
		seedReserva(t, repo, "r3", 80, model.StatusConcluida, "2025-02-18T14:00:00Z", "2025-02-19T14:00:00Z")

		svc := NewRelatorioService(repo)
		resp, err := svc.RelatorioFinanceiro(context.Background(), "2025-02-01", "2025-02-28")
		require.NoError(t, err)

		assert.Equal(t, 430.50, resp.TotalRecebido)
		assert.Equal(t, 3, resp.QuantidadeReservasConcluidas)
		assert.Equal(t, 143.50, resp.ValorMedioReservas)
		require.Len(t, resp.FaturamentoPorDia, 2)
		assert.Equal(t, "2025-02-18", resp.FaturamentoPorDia[0].Dia)
		assert.Equal(t, 2, resp.FaturamentoPorDia[0].QuantidadeReservas)
		assert.Equal(t, 330.50, resp.FaturamentoPorDia[0].FaturamentoDia)
		assert.Equal(t, "2025-02-20", resp.FaturamentoPorDia[1].Dia)
	})

	t.Run("fora do período não conta", func(t *testing.T) {
		repo := repository.NewMemReservaRepository()
		seedReserva(t, repo, "r1", 500, model.StatusConcluida, "2025-01-11T08:00:00Z", "2025-01-13T08:00:00Z")

		svc := NewRelatorioService(repo)
		resp, err := svc.RelatorioFinanceiro(context.Background(), "2025-06-01", "2025-06-30")
		require.NoError(t, err)

		assert.Zero(t, resp.TotalRecebido)
		assert.Zero(t, resp.QuantidadeReservasConcluidas)
		// Média sobre zero reservas é 0, não NaN
		assert.Zero(t, resp.ValorMedioReservas)
		assert.Empty(t, resp.FaturamentoPorDia)
	})

	t.Run("período invertido rejeita antes de consultar", func(t *testing.T) {
		svc := NewRelatorioService(repository.NewMemReservaRepository())
		_, err := svc.RelatorioFinanceiro(context.Background(), "2025-11-11", "2025-01-11")
		assert.ErrorIs(t, err, ErrPeriodoInvalido)
	})

	t.Run("datas ilegíveis", func(t *testing.T) {
		svc := NewRelatorioService(repository.NewMemReservaRepository())
		_, err := svc.RelatorioFinanceiro(context.Background(), "11/01/2025", "2025-11-11")
		assert.ErrorIs(t, err, ErrDatasInvalidas)
	})
}

func TestRelatorioReservas(t *testing.T) {
	t.Run("interseção de janelas com qualquer status", func(t *testing.T) {
		repo := repository.NewMemReservaRepository()
		// Atravessa o início do período
		seedReserva(t, repo, "r1", 100, model.StatusConfirmada, "2025-03-30T08:00:00Z", "2025-04-02T08:00:00Z")
		// Inteira dentro do período
		seedReserva(t, repo, "r2", 100, model.StatusCancelada, "2025-04-10T08:00:00Z", "2025-04-11T08:00:00Z")
		// Concluída também aparece na listagem
		seedReserva(t, repo, "r3", 100, model.StatusConcluida, "2025-04-12T08:00:00Z", "2025-04-13T08:00:00Z")
		// Termina antes do período
		seedReserva(t, repo, "r4", 100, model.StatusConfirmada, "2025-03-01T08:00:00Z", "2025-03-05T08:00:00Z")

		svc := NewRelatorioService(repo)
		resp, err := svc.RelatorioReservas(context.Background(), "2025-04-01", "2025-04-30")
		require.NoError(t, err)

		assert.Len(t, resp.Reservas, 3)
		assert.Equal(t, 1, resp.QuantidadeConfirmada)
		assert.Equal(t, 1, resp.QuantidadeCancelada)
	})

	t.Run("período invertido", func(t *testing.T) {
		svc := NewRelatorioService(repository.NewMemReservaRepository())
		_, err := svc.RelatorioReservas(context.Background(), "2025-04-30", "2025-04-01")
		assert.ErrorIs(t, err, ErrPeriodoInvalido)
	})
}
