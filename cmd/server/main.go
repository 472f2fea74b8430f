package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"reserva-service/internal/config"
	"reserva-service/internal/controller"
	"reserva-service/internal/middleware"
	"reserva-service/internal/rabbit"
	"reserva-service/internal/repository"
	"reserva-service/internal/service"
)

func main() {
	cfg := config.Load()

	// Conexão com o MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database(cfg.MongoDBName)

	// Conexão com o RabbitMQ
	conn, err := amqp091.Dial(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("Erro conectando ao RabbitMQ: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("Erro criando canal no RabbitMQ: %v", err)
	}

	publisher, err := rabbit.Setup(ch)
	if err != nil {
		log.Fatalf("Erro preparando exchange de eventos: %v", err)
	}

	// Repositórios e serviços
	reservaRepo := repository.NewMongoReservaRepository(db)
	clienteRepo := repository.NewMongoClienteRepository(db)
	pacoteRepo := repository.NewMongoPacoteRepository(db)
	enderecoRepo := repository.NewMongoEnderecoRepository(db)

	reservaService := service.NewReservaService(reservaRepo, clienteRepo, pacoteRepo, enderecoRepo, publisher)
	relatorioService := service.NewRelatorioService(reservaRepo)
	authService := service.NewAuthService(cfg.AuthURL)

	// Handlers
	ctrl := controller.NewReservaController(reservaService, relatorioService)

	// Router
	r := gin.Default()

	// Rotas autenticadas (token resolvido pelo serviço de auth)
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(authService))

	auth.POST("/reservas", ctrl.CriarReserva)
	auth.GET("/reservas/minhas", ctrl.MinhasReservas)
	auth.GET("/reservas/:id", ctrl.BuscarReserva)
	auth.PATCH("/reservas/:id/cancelar-reserva", ctrl.CancelarReserva)
	auth.PATCH("/reservas/:id/confirmar-entrega", ctrl.ConfirmarEntrega)
	auth.PATCH("/reservas/:id/confirmar-coleta", ctrl.ConfirmarColeta)

	// Rotas do gerente
	gerente := auth.Group("/")
	gerente.Use(middleware.GerenteOnly())
	gerente.GET("/reservas", ctrl.ListarReservas)
	gerente.PUT("/reservas/:id", ctrl.AtualizacaoAdministrativa)
	gerente.DELETE("/reservas/:id", ctrl.ExcluirReserva)
	gerente.GET("/relatorios/financeiro", ctrl.RelatorioFinanceiro)
	gerente.GET("/relatorios/reservas", ctrl.RelatorioReservas)

	// Executar servidor
	log.Printf("Reserva Service executando na porta %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
