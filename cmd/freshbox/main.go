package main

import (
	"context"
	"log"

	"github.com/freshbox-tech/Freshbox-admin/internal/database"
	router "github.com/freshbox-tech/Freshbox-admin/internal/http"
	"github.com/freshbox-tech/Freshbox-admin/internal/logger"
	"github.com/freshbox-tech/Freshbox-admin/internal/middlewares"
	"github.com/freshbox-tech/Freshbox-admin/internal/notifier"
	"github.com/freshbox-tech/Freshbox-admin/internal/services"
	"github.com/freshbox-tech/Freshbox-admin/internal/utils"
)

func main() {
	ctx := context.Background()
	config := NewConfig()

	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		log.Fatalf("Logger wasn't initialized due to %s", err)
	}

	db, err := database.New(ctx, config.dsn)
	if err != nil {
		log.Fatalf("Database wasn't initialized due to %s", err)
	}

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Migrations weren't run due to %s", err)
	}

	var statusNotifier *notifier.StatusNotifier
	if config.amqpURL != "" {
		statusNotifier, err = notifier.Connect(config.amqpURL)
		if err != nil {
			log.Fatalf("AMQP broker wasn't connected due to %s", err)
		}
	}

	jobQueueService := services.NewJobQueueService(ctx, 100, 2)
	chatService := services.NewChatService(db)
	orderService := services.NewOrderService(db, chatService, jobQueueService, statusNotifier)

	utils.HandleTerminationProcess(func() {
		jobQueueService.Shutdown()
		statusNotifier.Close()
		db.Close()
	})

	log.Printf("Running server on %s\n", config.endpoint)

	err = router.New(
		router.Config{Endpoint: config.endpoint},
		middlewares.Services{
			Auth:     services.NewAuthService(db),
			JWT:      services.NewJWTService(config.authSecretKey),
			Orders:   orderService,
			Riders:   services.NewRiderService(db),
			Areas:    services.NewAreaService(db),
			Catalog:  services.NewCatalogService(db),
			Customer: services.NewCustomerService(db),
			Tickets:  services.NewTicketService(db),
			Chats:    chatService,
			Reports:  services.NewReportService(db),
		},
	).Run()
	if err != nil {
		log.Fatalf("Server stopped due to %s", err)
	}
}
