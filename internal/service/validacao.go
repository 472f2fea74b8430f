// validacao.go — pré-condições temporais da criação de reserva.
// As checagens referenciais (cliente, pacote, endereço) ficam no
// serviço porque dependem dos repositórios.
package service

import (
	"errors"
	"time"
)

// Duração mínima de uma locação
const duracaoMinima = 15 * time.Minute

var (
	ErrDatasInvalidas    = errors.New("datas inválidas")
	ErrInicioAposTermino = errors.New("a data de início deve ser anterior à data de término")
	ErrDuracaoMinima     = errors.New("a reserva deve ter duração mínima de 15 minutos")
)

// ValidarJanela interpreta as duas datas (RFC3339) e verifica a
// ordem e a duração mínima da janela de locação. Devolve os
// instantes normalizados em UTC.
func ValidarJanela(inicioStr, terminoStr string) (time.Time, time.Time, error) {
	inicio, err := time.Parse(time.RFC3339, inicioStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrDatasInvalidas
	}
	termino, err := time.Parse(time.RFC3339, terminoStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrDatasInvalidas
	}
	if !inicio.Before(termino) {
		return time.Time{}, time.Time{}, ErrInicioAposTermino
	}
	if termino.Sub(inicio) < duracaoMinima {
		return time.Time{}, time.Time{}, ErrDuracaoMinima
	}
	return inicio.UTC(), termino.UTC(), nil
}
