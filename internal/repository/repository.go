package repository

import (
	"context"
	"errors"
	"time"

	"reserva-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound = errors.New("reserva não encontrada")

	// ErrPrecondicao: o filtro condicional não casou. Como o serviço já
	// verificou a existência, isso significa que outra requisição venceu
	// a corrida e mudou o documento entre a leitura e a escrita.
	ErrPrecondicao = errors.New("condição de atualização não atendida")
)

// Mongo implementation
type MongoReservaRepository struct {
	col *mongo.Collection
}

func NewMongoReservaRepository(db *mongo.Database) *MongoReservaRepository {
	return &MongoReservaRepository{col: db.Collection("reservas")}
}

func (m *MongoReservaRepository) Insert(ctx context.Context, r *model.Reserva) error {
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	_, err := m.col.InsertOne(ctx, r)
	return err
}

func (m *MongoReservaRepository) FindByID(ctx context.Context, id string) (*model.Reserva, error) {
	var res model.Reserva
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

func (m *MongoReservaRepository) FindAll(ctx context.Context) ([]*model.Reserva, error) {
	return m.findMany(ctx, bson.M{})
}

func (m *MongoReservaRepository) FindByClienteID(ctx context.Context, clienteID string) ([]*model.Reserva, error) {
	return m.findMany(ctx, bson.M{"cliente_id": clienteID})
}

func (m *MongoReservaRepository) findMany(ctx context.Context, filter bson.M) ([]*model.Reserva, error) {
	cur, err := m.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*model.Reserva
	for cur.Next(ctx) {
		var v model.Reserva
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, cur.Err()
}

// RegistrarEntrega grava data_entrega somente se ainda estiver nula.
// O filtro condicional é a escrita atômica: de duas confirmações
// simultâneas, só uma casa o filtro; a outra recebe ErrPrecondicao.
func (m *MongoReservaRepository) RegistrarEntrega(ctx context.Context, id string, quando time.Time) error {
	filter := bson.M{"_id": id, "data_entrega": nil}
	update := bson.M{"$set": bson.M{
		"data_entrega": quando,
		"updated_at":   time.Now().UTC(),
	}}
	res, err := m.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrPrecondicao
	}
	return nil
}

// RegistrarColeta grava data_coleta e o status Concluída na mesma
// escrita. Exige entrega já registrada e coleta ainda nula.
func (m *MongoReservaRepository) RegistrarColeta(ctx context.Context, id string, quando time.Time) error {
	filter := bson.M{
		"_id":          id,
		"data_entrega": bson.M{"$ne": nil},
		"data_coleta":  nil,
	}
	update := bson.M{"$set": bson.M{
		"data_coleta": quando,
		"status":      model.StatusConcluida,
		"updated_at":  time.Now().UTC(),
	}}
	res, err := m.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrPrecondicao
	}
	return nil
}

// Cancelar só transiciona reservas Confirmada e ainda não entregues
func (m *MongoReservaRepository) Cancelar(ctx context.Context, id string) error {
	filter := bson.M{
		"_id":          id,
		"status":       model.StatusConfirmada,
		"data_entrega": nil,
	}
	update := bson.M{"$set": bson.M{
		"status":     model.StatusCancelada,
		"updated_at": time.Now().UTC(),
	}}
	res, err := m.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrPrecondicao
	}
	return nil
}

// Replace sobrescreve o documento inteiro. Usado apenas pela
// atualização administrativa, que dispensa as travas do protocolo.
func (m *MongoReservaRepository) Replace(ctx context.Context, r *model.Reserva) error {
	r.UpdatedAt = time.Now().UTC()
	res, err := m.col.ReplaceOne(ctx, bson.M{"_id": r.ID}, r)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
