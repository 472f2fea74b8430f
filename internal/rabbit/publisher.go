package rabbit

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"reserva-service/internal/model"

	"github.com/rabbitmq/amqp091-go"
)

type EventPublisher struct {
	ch *amqp091.Channel
}

func NewEventPublisher(ch *amqp091.Channel) *EventPublisher {
	return &EventPublisher{ch: ch}
}

// ReservaEvent é a mensagem publicada a cada mudança de ciclo de vida.
// O motivo só vem preenchido nas operações administrativas.
type ReservaEvent struct {
	Evento    string         `json:"evento"`
	Timestamp time.Time      `json:"timestamp"`
	Motivo    string         `json:"motivo,omitempty"`
	Reserva   *model.Reserva `json:"reserva"`
}

// Publicar emite o evento no exchange fanout. Falha de publicação é
// registrada e engolida: o evento nunca derruba a requisição que o
// originou.
func (p *EventPublisher) Publicar(evento string, r *model.Reserva, motivo string) {
	body, err := json.Marshal(ReservaEvent{
		Evento:    evento,
		Timestamp: time.Now().UTC(),
		Motivo:    motivo,
		Reserva:   r,
	})
	if err != nil {
		log.Println("❌ Error serializando evento:", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.ch.PublishWithContext(ctx,
		"reserva_eventos", // exchange fanout
		"",                // fanout ignora routing key
		false,
		false,
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		log.Println("❌ Error publicando evento:", evento, err)
		return
	}

	log.Println("✔ Evento publicado:", evento, "reserva:", r.ID)
}
