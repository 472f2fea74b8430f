// setup.go
package rabbit

import (
	"log"

	"github.com/rabbitmq/amqp091-go"
)

// Setup declara o exchange de eventos e devolve o publisher pronto.
// Consumidores downstream (faturamento, notificações) bindam as
// próprias filas neste exchange.
func Setup(ch *amqp091.Channel) (*EventPublisher, error) {
	err := ch.ExchangeDeclare(
		"reserva_eventos", // exchange do ciclo de vida das reservas
		"fanout",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Println("❌ Error declarando exchange:", err)
		return nil, err
	}

	log.Println("🐰 Exchange reserva_eventos (fanout) pronto")
	return NewEventPublisher(ch), nil
}
