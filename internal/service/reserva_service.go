package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"reserva-service/internal/dto"
	"reserva-service/internal/model"
	"reserva-service/internal/repository"
)

// Interfaces que os repositórios devem implementar
type ReservaRepository interface {
	Insert(ctx context.Context, r *model.Reserva) error
	FindByID(ctx context.Context, id string) (*model.Reserva, error)
	FindAll(ctx context.Context) ([]*model.Reserva, error)
	FindByClienteID(ctx context.Context, clienteID string) ([]*model.Reserva, error)
	RegistrarEntrega(ctx context.Context, id string, quando time.Time) error
	RegistrarColeta(ctx context.Context, id string, quando time.Time) error
	Cancelar(ctx context.Context, id string) error
	Replace(ctx context.Context, r *model.Reserva) error
}

type ClienteRepository interface {
	FindByID(ctx context.Context, id string) (*model.Cliente, error)
}

type PacoteRepository interface {
	FindByID(ctx context.Context, id string) (*model.Pacote, error)
}

type EnderecoRepository interface {
	FindByID(ctx context.Context, id string) (*model.Endereco, error)
}

// EventPublisher emite os eventos de ciclo de vida da reserva para
// sistemas externos. A publicação nunca falha a requisição.
type EventPublisher interface {
	Publicar(evento string, r *model.Reserva, motivo string)
}

// Ator é o chamador autenticado, resolvido pelo serviço de auth
type Ator struct {
	ID    string
	Papel model.Papel
}

func (a Ator) Staff() bool {
	return a.Papel == model.PapelGerente || a.Papel == model.PapelSuporte
}

// Erros de negócio exportados (os usa o controller)
var (
	ErrClienteNaoEncontrado  = errors.New("cliente não encontrado")
	ErrPacoteNaoEncontrado   = errors.New("pacote não encontrado")
	ErrEnderecoNaoEncontrado = errors.New("endereço não encontrado")
	ErrEntregaJaRegistrada   = errors.New("entrega já registrada")
	ErrEntregaNaoRegistrada  = errors.New("entrega ainda não registrada")
	ErrColetaJaRegistrada    = errors.New("coleta já registrada")
	ErrCodigoEntregaInvalido = errors.New("código de entrega inválido")
	ErrCodigoColetaInvalido  = errors.New("código de coleta inválido")
	ErrReservaNaoCancelavel  = errors.New("esta reserva não pode ser cancelada")
	ErrStatusInvalido        = errors.New("status inválido")
	ErrNaoAutorizado         = errors.New("não autorizado")
)

// Taxa fixa de entrega, somada ao valor na criação
const taxaEntrega = 50.0

type ReservaService struct {
	reservas  ReservaRepository
	clientes  ClienteRepository
	pacotes   PacoteRepository
	enderecos EnderecoRepository
	eventos   EventPublisher
}

func NewReservaService(r ReservaRepository, c ClienteRepository, p PacoteRepository, e EnderecoRepository, ev EventPublisher) *ReservaService {
	return &ReservaService{reservas: r, clientes: c, pacotes: p, enderecos: e, eventos: ev}
}

func (s *ReservaService) publicar(evento string, r *model.Reserva, motivo string) {
	if s.eventos != nil {
		s.eventos.Publicar(evento, r, motivo)
	}
}

// CriarReserva valida as referências e a janela temporal e instancia a
// reserva no status inicial com os dois códigos recém-gerados. A
// reserva nasce sempre sob a identidade do próprio chamador.
func (s *ReservaService) CriarReserva(ctx context.Context, ator Ator, req dto.CriarReservaRequest) (*model.Reserva, error) {
	// Checagens referenciais, em ordem fixa e com curto-circuito:
	// cliente -> pacote -> endereço
	if _, err := s.clientes.FindByID(ctx, ator.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClienteNaoEncontrado
		}
		return nil, err
	}
	if _, err := s.pacotes.FindByID(ctx, req.PacoteID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPacoteNaoEncontrado
		}
		return nil, err
	}
	if _, err := s.enderecos.FindByID(ctx, req.EnderecoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEnderecoNaoEncontrado
		}
		return nil, err
	}

	inicio, termino, err := ValidarJanela(req.DataInicio, req.DataTermino)
	if err != nil {
		return nil, err
	}

	reserva := &model.Reserva{
		ID:          uuid.NewString(),
		ClienteID:   ator.ID,
		PacoteID:    req.PacoteID,
		EnderecoID:  req.EnderecoID,
		Valor:       req.Valor + taxaEntrega,
		Status:      model.StatusConfirmada,
		DataInicio:  inicio,
		DataTermino: termino,
		// Os dois códigos são gerados de forma independente
		CodigoEntrega: GerarCodigo(),
		CodigoColeta:  GerarCodigo(),
	}

	if err := s.reservas.Insert(ctx, reserva); err != nil {
		return nil, err
	}
	s.publicar("reserva_criada", reserva, "")
	return reserva, nil
}

// BuscarReserva devolve a reserva com as referências resolvidas.
// Existência sempre antes da autorização: quem não é dono recebe
// "não autorizado", nunca um vazamento de "não encontrada".
func (s *ReservaService) BuscarReserva(ctx context.Context, ator Ator, id string) (*dto.ReservaDetalhada, error) {
	reserva, err := s.reservas.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ator.Staff() && ator.ID != reserva.ClienteID {
		return nil, ErrNaoAutorizado
	}

	det := &dto.ReservaDetalhada{Reserva: *reserva}
	if c, err := s.clientes.FindByID(ctx, reserva.ClienteID); err == nil {
		det.Cliente = c
	}
	if p, err := s.pacotes.FindByID(ctx, reserva.PacoteID); err == nil {
		det.Pacote = p
	}
	if e, err := s.enderecos.FindByID(ctx, reserva.EnderecoID); err == nil {
		det.Endereco = e
	}
	return det, nil
}

func (s *ReservaService) ListarReservas(ctx context.Context) ([]*model.Reserva, error) {
	return s.reservas.FindAll(ctx)
}

func (s *ReservaService) ListarMinhasReservas(ctx context.Context, ator Ator) ([]*model.Reserva, error) {
	return s.reservas.FindByClienteID(ctx, ator.ID)
}

// ConfirmarEntrega registra o momento da entrega mediante o código
// correto. Não muda o status. A data é sempre a hora do servidor.
func (s *ReservaService) ConfirmarEntrega(ctx context.Context, ator Ator, id, codigo string) (*model.Reserva, error) {
	reserva, err := s.reservas.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Somente Gerente ou Suporte confirmam entregas
	if !ator.Staff() {
		return nil, ErrNaoAutorizado
	}
	if reserva.DataEntrega != nil {
		return nil, ErrEntregaJaRegistrada
	}
	// Comparação exata, sensível a maiúsculas, sem aparar espaços
	if codigo != reserva.CodigoEntrega {
		return nil, ErrCodigoEntregaInvalido
	}

	agora := time.Now().UTC()
	if err := s.reservas.RegistrarEntrega(ctx, id, agora); err != nil {
		// Escrita condicional não casou: outra confirmação venceu
		if errors.Is(err, repository.ErrPrecondicao) {
			return nil, ErrEntregaJaRegistrada
		}
		return nil, err
	}
	reserva.DataEntrega = &agora
	s.publicar("entrega_confirmada", reserva, "")
	return reserva, nil
}

// ConfirmarColeta exige entrega já registrada, consome o código de
// coleta e conclui a reserva na mesma escrita.
func (s *ReservaService) ConfirmarColeta(ctx context.Context, ator Ator, id, codigo string) (*model.Reserva, error) {
	reserva, err := s.reservas.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ator.Staff() {
		return nil, ErrNaoAutorizado
	}
	if reserva.DataEntrega == nil {
		return nil, ErrEntregaNaoRegistrada
	}
	if reserva.DataColeta != nil {
		return nil, ErrColetaJaRegistrada
	}
	if codigo != reserva.CodigoColeta {
		return nil, ErrCodigoColetaInvalido
	}

	agora := time.Now().UTC()
	if err := s.reservas.RegistrarColeta(ctx, id, agora); err != nil {
		if errors.Is(err, repository.ErrPrecondicao) {
			return nil, ErrColetaJaRegistrada
		}
		return nil, err
	}
	reserva.DataColeta = &agora
	reserva.Status = model.StatusConcluida
	s.publicar("coleta_confirmada", reserva, "")
	return reserva, nil
}

// CancelarReserva só é legal antes da entrega. Dono ou Gerente;
// Suporte não cancela. Nenhum código é consumido.
func (s *ReservaService) CancelarReserva(ctx context.Context, ator Ator, id string) (*model.Reserva, error) {
	reserva, err := s.reservas.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ator.Papel != model.PapelGerente && ator.ID != reserva.ClienteID {
		return nil, ErrNaoAutorizado
	}
	if reserva.DataEntrega != nil || reserva.DataColeta != nil || reserva.Status != model.StatusConfirmada {
		return nil, ErrReservaNaoCancelavel
	}

	if err := s.reservas.Cancelar(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPrecondicao) {
			return nil, ErrReservaNaoCancelavel
		}
		return nil, err
	}
	reserva.Status = model.StatusCancelada
	s.publicar("reserva_cancelada", reserva, "")
	return reserva, nil
}

// AtualizacaoAdministrativa é a escotilha de correção do Gerente:
// sobrescreve campos mutáveis com checagem apenas de existência,
// contornando deliberadamente as travas do protocolo. Exige motivo e
// deixa rastro de auditoria.
func (s *ReservaService) AtualizacaoAdministrativa(ctx context.Context, ator Ator, id string, req dto.AtualizacaoAdministrativaRequest) (*model.Reserva, error) {
	if ator.Papel != model.PapelGerente {
		return nil, ErrNaoAutorizado
	}
	reserva, err := s.reservas.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Valor != nil {
		reserva.Valor = *req.Valor
	}
	if req.Status != nil {
		st := model.StatusReserva(*req.Status)
		if st != model.StatusConfirmada && st != model.StatusCancelada && st != model.StatusConcluida {
			return nil, ErrStatusInvalido
		}
		reserva.Status = st
	}
	if req.DataInicio != nil {
		t, err := time.Parse(time.RFC3339, *req.DataInicio)
		if err != nil {
			return nil, ErrDatasInvalidas
		}
		reserva.DataInicio = t.UTC()
	}
	if req.DataTermino != nil {
		t, err := time.Parse(time.RFC3339, *req.DataTermino)
		if err != nil {
			return nil, ErrDatasInvalidas
		}
		reserva.DataTermino = t.UTC()
	}
	if req.DataEntrega != nil {
		if *req.DataEntrega == "" {
			reserva.DataEntrega = nil
		} else {
			t, err := time.Parse(time.RFC3339, *req.DataEntrega)
			if err != nil {
				return nil, ErrDatasInvalidas
			}
			u := t.UTC()
			reserva.DataEntrega = &u
		}
	}
	if req.DataColeta != nil {
		if *req.DataColeta == "" {
			reserva.DataColeta = nil
		} else {
			t, err := time.Parse(time.RFC3339, *req.DataColeta)
			if err != nil {
				return nil, ErrDatasInvalidas
			}
			u := t.UTC()
			reserva.DataColeta = &u
		}
	}
	if req.CodigoEntrega != nil {
		reserva.CodigoEntrega = *req.CodigoEntrega
	}
	if req.CodigoColeta != nil {
		reserva.CodigoColeta = *req.CodigoColeta
	}

	log.Printf("[auditoria] atualização administrativa: gerente=%s reserva=%s motivo=%q", ator.ID, id, req.Motivo)

	if err := s.reservas.Replace(ctx, reserva); err != nil {
		return nil, err
	}
	s.publicar("reserva_atualizada", reserva, req.Motivo)
	return reserva, nil
}

// ExcluirReserva é a exclusão administrativa: degrada para
// cancelamento (soft), sem a pré-condição de pré-entrega do
// cancelamento normal. Reservas concluídas não são canceláveis nem
// por aqui; excluir uma já cancelada é idempotente.
func (s *ReservaService) ExcluirReserva(ctx context.Context, ator Ator, id, motivo string) (*model.Reserva, error) {
	if ator.Papel != model.PapelGerente {
		return nil, ErrNaoAutorizado
	}
	reserva, err := s.reservas.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reserva.Status == model.StatusConcluida {
		return nil, ErrReservaNaoCancelavel
	}
	if reserva.Status == model.StatusCancelada {
		return reserva, nil
	}

	reserva.Status = model.StatusCancelada
	log.Printf("[auditoria] exclusão administrativa: gerente=%s reserva=%s motivo=%q", ator.ID, id, motivo)
	if err := s.reservas.Replace(ctx, reserva); err != nil {
		return nil, err
	}
	s.publicar("reserva_cancelada", reserva, motivo)
	return reserva, nil
}
