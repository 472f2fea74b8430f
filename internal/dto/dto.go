// dto.go
package dto

import (
	"time"

	"reserva-service/internal/model"
)

// CriarReservaRequest é o corpo do POST /reservas. As datas chegam
// como string RFC3339 e são validadas pelo serviço, não pelo binding.
type CriarReservaRequest struct {
	PacoteID    string  `json:"pacoteId" binding:"required"`
	EnderecoID  string  `json:"enderecoId" binding:"required"`
	Valor       float64 `json:"valor" binding:"required"`
	DataInicio  string  `json:"dataInicio" binding:"required"`
	DataTermino string  `json:"dataTermino" binding:"required"`
}

// ConfirmarRequest carrega o código secreto de entrega ou coleta
type ConfirmarRequest struct {
	Codigo string `json:"codigo" binding:"required"`
}

// AtualizacaoAdministrativaRequest é o corpo do PUT /reservas/:id.
// Qualquer campo nulo é mantido como está; o motivo é obrigatório
// porque a operação contorna as travas do protocolo.
type AtualizacaoAdministrativaRequest struct {
	Motivo        string   `json:"motivo" binding:"required"`
	Valor         *float64 `json:"valor"`
	Status        *string  `json:"status"`
	DataInicio    *string  `json:"dataInicio"`
	DataTermino   *string  `json:"dataTermino"`
	DataEntrega   *string  `json:"dataEntrega"`
	DataColeta    *string  `json:"dataColeta"`
	CodigoEntrega *string  `json:"codigoEntrega"`
	CodigoColeta  *string  `json:"codigoColeta"`
}

// ExcluirReservaRequest acompanha o DELETE administrativo
type ExcluirReservaRequest struct {
	Motivo string `json:"motivo" binding:"required"`
}

// ReservaDetalhada é a projeção de leitura com as referências
// resolvidas (cliente, pacote e endereço completos). Montada na
// leitura; nada disso é duplicado no documento da reserva.
type ReservaDetalhada struct {
	model.Reserva
	Cliente  *model.Cliente  `json:"cliente,omitempty"`
	Pacote   *model.Pacote   `json:"pacote,omitempty"`
	Endereco *model.Endereco `json:"endereco,omitempty"`
}

// FaturamentoDia é um balde do relatório financeiro: um dia-calendário
// (data de início das reservas) com contagem e soma
type FaturamentoDia struct {
	Dia                string  `json:"dia"`
	QuantidadeReservas int     `json:"quantidadeReservas"`
	FaturamentoDia     float64 `json:"faturamentoDia"`
}

type RelatorioFinanceiroResponse struct {
	DataInicio                   time.Time        `json:"dataInicio"`
	DataTermino                  time.Time        `json:"dataTermino"`
	TotalRecebido                float64          `json:"totalRecebido"`
	QuantidadeReservasConcluidas int              `json:"quantidadeReservasConcluidas"`
	ValorMedioReservas           float64          `json:"valorMedioReservas"`
	FaturamentoPorDia            []FaturamentoDia `json:"faturamentoPorDia"`
}

type RelatorioReservasResponse struct {
	DataInicio           time.Time        `json:"dataInicio"`
	DataTermino          time.Time        `json:"dataTermino"`
	Reservas             []*model.Reserva `json:"reservas"`
	QuantidadeConfirmada int              `json:"quantidadeConfirmadas"`
	QuantidadeCancelada  int              `json:"quantidadeCanceladas"`
}
