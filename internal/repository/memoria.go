// memoria.go — implementações em memória dos repositórios, com a
// mesma semântica condicional da implementação Mongo. Usadas pelos
// testes e por ambientes de desenvolvimento sem banco.
package repository

import (
	"context"
	"sync"
	"time"

	"reserva-service/internal/model"
)

type MemReservaRepository struct {
	mu       sync.Mutex
	reservas map[string]*model.Reserva
}

func NewMemReservaRepository() *MemReservaRepository {
	return &MemReservaRepository{reservas: make(map[string]*model.Reserva)}
}

func clonar(r *model.Reserva) *model.Reserva {
	c := *r
	if r.DataEntrega != nil {
		d := *r.DataEntrega
		c.DataEntrega = &d
	}
	if r.DataColeta != nil {
		d := *r.DataColeta
		c.DataColeta = &d
	}
	return &c
}

func (m *MemReservaRepository) Insert(_ context.Context, r *model.Reserva) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	m.reservas[r.ID] = clonar(r)
	return nil
}

func (m *MemReservaRepository) FindByID(_ context.Context, id string) (*model.Reserva, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reservas[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clonar(r), nil
}

func (m *MemReservaRepository) FindAll(_ context.Context) ([]*model.Reserva, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.Reserva, 0, len(m.reservas))
	for _, r := range m.reservas {
		out = append(out, clonar(r))
	}
	return out, nil
}

func (m *MemReservaRepository) FindByClienteID(_ context.Context, clienteID string) ([]*model.Reserva, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Reserva
	for _, r := range m.reservas {
		if r.ClienteID == clienteID {
			out = append(out, clonar(r))
		}
	}
	return out, nil
}

func (m *MemReservaRepository) RegistrarEntrega(_ context.Context, id string, quando time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reservas[id]
	if !ok || r.DataEntrega != nil {
		return ErrPrecondicao
	}
	r.DataEntrega = &quando
	r.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *MemReservaRepository) RegistrarColeta(_ context.Context, id string, quando time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reservas[id]
	if !ok || r.DataEntrega == nil || r.DataColeta != nil {
		return ErrPrecondicao
	}
	r.DataColeta = &quando
	r.Status = model.StatusConcluida
	r.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *MemReservaRepository) Cancelar(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reservas[id]
	if !ok || r.Status != model.StatusConfirmada || r.DataEntrega != nil {
		return ErrPrecondicao
	}
	r.Status = model.StatusCancelada
	r.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *MemReservaRepository) Replace(_ context.Context, r *model.Reserva) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reservas[r.ID]; !ok {
		return ErrNotFound
	}
	r.UpdatedAt = time.Now().UTC()
	m.reservas[r.ID] = clonar(r)
	return nil
}

type MemClienteRepository struct {
	mu       sync.Mutex
	clientes map[string]*model.Cliente
}

func NewMemClienteRepository() *MemClienteRepository {
	return &MemClienteRepository{clientes: make(map[string]*model.Cliente)}
}

func (m *MemClienteRepository) Seed(c *model.Cliente) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clientes[c.ID] = c
}

func (m *MemClienteRepository) FindByID(_ context.Context, id string) (*model.Cliente, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.clientes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

type MemPacoteRepository struct {
	mu      sync.Mutex
	pacotes map[string]*model.Pacote
}

func NewMemPacoteRepository() *MemPacoteRepository {
	return &MemPacoteRepository{pacotes: make(map[string]*model.Pacote)}
}

func (m *MemPacoteRepository) Seed(p *model.Pacote) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pacotes[p.ID] = p
}

func (m *MemPacoteRepository) FindByID(_ context.Context, id string) (*model.Pacote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pacotes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

type MemEnderecoRepository struct {
	mu        sync.Mutex
	enderecos map[string]*model.Endereco
}

func NewMemEnderecoRepository() *MemEnderecoRepository {
	return &MemEnderecoRepository{enderecos: make(map[string]*model.Endereco)}
}

func (m *MemEnderecoRepository) Seed(e *model.Endereco) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enderecos[e.ID] = e
}

func (m *MemEnderecoRepository) FindByID(_ context.Context, id string) (*model.Endereco, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.enderecos[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}
