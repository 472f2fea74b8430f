package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"reserva-service/internal/dto"
	"reserva-service/internal/model"
)

var ErrPeriodoInvalido = errors.New("a data de início do período deve ser anterior à data de término")

// Layout das datas de consulta dos relatórios (dia-calendário)
const layoutDia = "2006-01-02"

// RelatorioService deriva os relatórios financeiro e operacional a
// partir de um recorte somente-leitura das reservas. Nunca muta estado
// e não toma locks: o resultado é eventualmente consistente.
type RelatorioService struct {
	reservas ReservaRepository
}

func NewRelatorioService(r ReservaRepository) *RelatorioService {
	return &RelatorioService{reservas: r}
}

// periodo interpreta o par de datas da query (limites inclusivos) e
// rejeita o intervalo invertido antes de tocar qualquer dado.
func periodo(inicioStr, terminoStr string) (time.Time, time.Time, error) {
	inicio, err := time.Parse(layoutDia, inicioStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrDatasInvalidas
	}
	termino, err := time.Parse(layoutDia, terminoStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrDatasInvalidas
	}
	if inicio.After(termino) {
		return time.Time{}, time.Time{}, ErrPeriodoInvalido
	}
	// Limite superior exclusivo no dia seguinte, para cobrir o dia
	// de término inteiro
	return inicio, termino.AddDate(0, 0, 1), nil
}

// RelatorioFinanceiro soma as reservas concluídas cuja janela cai
// dentro do período: total recebido, contagem, média aritmética
// (2 casas) e faturamento por dia-calendário de início, ascendente.
func (s *RelatorioService) RelatorioFinanceiro(ctx context.Context, inicioStr, terminoStr string) (*dto.RelatorioFinanceiroResponse, error) {
	inicio, fim, err := periodo(inicioStr, terminoStr)
	if err != nil {
		return nil, err
	}

	reservas, err := s.reservas.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.RelatorioFinanceiroResponse{
		DataInicio:        inicio,
		DataTermino:       fim.AddDate(0, 0, -1),
		FaturamentoPorDia: []dto.FaturamentoDia{},
	}

	porDia := make(map[string]*dto.FaturamentoDia)
	for _, r := range reservas {
		if r.Status != model.StatusConcluida {
			continue
		}
		if r.DataInicio.Before(inicio) || !r.DataTermino.Before(fim) {
			continue
		}
		resp.TotalRecebido += r.Valor
		resp.QuantidadeReservasConcluidas++

		dia := r.DataInicio.UTC().Format(layoutDia)
		bucket, ok := porDia[dia]
		if !ok {
			bucket = &dto.FaturamentoDia{Dia: dia}
			porDia[dia] = bucket
		}
		bucket.QuantidadeReservas++
		bucket.FaturamentoDia += r.Valor
	}

	// Média sobre zero reservas é 0, nunca NaN
	if resp.QuantidadeReservasConcluidas > 0 {
		media := resp.TotalRecebido / float64(resp.QuantidadeReservasConcluidas)
		resp.ValorMedioReservas = math.Round(media*100) / 100
	}

	dias := make([]string, 0, len(porDia))
	for dia := range porDia {
		dias = append(dias, dia)
	}
	sort.Strings(dias)
	for _, dia := range dias {
		resp.FaturamentoPorDia = append(resp.FaturamentoPorDia, *porDia[dia])
	}
	return resp, nil
}

// RelatorioReservas devolve as reservas (qualquer status) cuja janela
// intersecta o período, com as contagens de Confirmada e Cancelada.
func (s *RelatorioService) RelatorioReservas(ctx context.Context, inicioStr, terminoStr string) (*dto.RelatorioReservasResponse, error) {
	inicio, fim, err := periodo(inicioStr, terminoStr)
	if err != nil {
		return nil, err
	}

	reservas, err := s.reservas.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.RelatorioReservasResponse{
		DataInicio:  inicio,
		DataTermino: fim.AddDate(0, 0, -1),
		Reservas:    []*model.Reserva{},
	}
	for _, r := range reservas {
		// Interseção de janelas: começa antes do fim do período e
		// termina depois (ou exatamente no) início dele
		if !r.DataInicio.Before(fim) || r.DataTermino.Before(inicio) {
			continue
		}
		resp.Reservas = append(resp.Reservas, r)
		switch r.Status {
		case model.StatusConfirmada:
			resp.QuantidadeConfirmada++
		case model.StatusCancelada:
			resp.QuantidadeCancelada++
		}
	}
	return resp, nil
}
