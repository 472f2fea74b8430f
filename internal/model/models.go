// models.go
package model

import "time"

// Status possíveis de uma reserva
type StatusReserva string

const (
	StatusConfirmada StatusReserva = "Confirmada"
	StatusCancelada  StatusReserva = "Cancelada"
	StatusConcluida  StatusReserva = "Concluída"
)

// Status terminais: nenhuma transição sai deles
func (s StatusReserva) Terminal() bool {
	return s == StatusCancelada || s == StatusConcluida
}

// Papéis de autorização
type Papel string

const (
	PapelCliente Papel = "Cliente"
	PapelSuporte Papel = "Suporte"
	PapelGerente Papel = "Gerente"
)

// Reserva é a entidade central: um aluguel de pacote de equipamentos
// com janela de locação, entrega e coleta confirmadas por código.
type Reserva struct {
	ID            string        `bson:"_id" json:"id"`
	ClienteID     string        `bson:"cliente_id" json:"clienteId"`
	PacoteID      string        `bson:"pacote_id" json:"pacoteId"`
	EnderecoID    string        `bson:"endereco_id" json:"enderecoId"`
	Valor         float64       `bson:"valor" json:"valor"`
	Status        StatusReserva `bson:"status" json:"status"`
	DataInicio    time.Time     `bson:"data_inicio" json:"dataInicio"`
	DataTermino   time.Time     `bson:"data_termino" json:"dataTermino"`
	DataEntrega   *time.Time    `bson:"data_entrega,omitempty" json:"dataEntrega,omitempty"`
	DataColeta    *time.Time    `bson:"data_coleta,omitempty" json:"dataColeta,omitempty"`
	CodigoEntrega string        `bson:"codigo_entrega" json:"codigoEntrega"`
	CodigoColeta  string        `bson:"codigo_coleta" json:"codigoColeta"`
	CreatedAt     time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updatedAt"`
}

type Cliente struct {
	ID    string `bson:"_id" json:"id"`
	Nome  string `bson:"nome" json:"nome"`
	Email string `bson:"email" json:"email"`
}

type Pacote struct {
	ID          string  `bson:"_id" json:"id"`
	Nome        string  `bson:"nome" json:"nome"`
	Descricao   string  `bson:"descricao" json:"descricao"`
	PrecoDiaria float64 `bson:"preco_diaria" json:"precoDiaria"`
	Quantidade  int     `bson:"quantidade" json:"quantidade"`
}

type Endereco struct {
	ID          string `bson:"_id" json:"id"`
	ClienteID   string `bson:"cliente_id" json:"clienteId"`
	Logradouro  string `bson:"logradouro" json:"logradouro"`
	Numero      string `bson:"numero" json:"numero"`
	Cidade      string `bson:"cidade" json:"cidade"`
	Estado      string `bson:"estado" json:"estado"`
	CEP         string `bson:"cep" json:"cep"`
	Complemento string `bson:"complemento" json:"complemento"`
}
