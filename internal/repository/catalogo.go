// catalogo.go — repositórios das entidades referenciadas pela reserva.
// Só precisamos de busca por id: a validação referencial na criação e a
// projeção detalhada na leitura.
package repository

import (
	"context"

	"reserva-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoClienteRepository struct {
	col *mongo.Collection
}

func NewMongoClienteRepository(db *mongo.Database) *MongoClienteRepository {
	return &MongoClienteRepository{col: db.Collection("clientes")}
}

func (m *MongoClienteRepository) FindByID(ctx context.Context, id string) (*model.Cliente, error) {
	var c model.Cliente
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &c, err
}

type MongoPacoteRepository struct {
	col *mongo.Collection
}

func NewMongoPacoteRepository(db *mongo.Database) *MongoPacoteRepository {
	return &MongoPacoteRepository{col: db.Collection("pacotes")}
}

func (m *MongoPacoteRepository) FindByID(ctx context.Context, id string) (*model.Pacote, error) {
	var p model.Pacote
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &p, err
}

type MongoEnderecoRepository struct {
	col *mongo.Collection
}

func NewMongoEnderecoRepository(db *mongo.Database) *MongoEnderecoRepository {
	return &MongoEnderecoRepository{col: db.Collection("enderecos")}
}

func (m *MongoEnderecoRepository) FindByID(ctx context.Context, id string) (*model.Endereco, error) {
	var e model.Endereco
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &e, err
}
