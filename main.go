package main

import (
	"flag"
	"log"

	"github.com/gigmate/gigmate/config"
	"github.com/gigmate/gigmate/internal/handler"
	"github.com/gigmate/gigmate/internal/middleware"
	"github.com/gigmate/gigmate/internal/repository"
	"github.com/gigmate/gigmate/internal/service"
	"github.com/gigmate/gigmate/pkg/database"
	"github.com/gigmate/gigmate/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	seed := flag.Bool("seed", false, "populate demo data and exit")
	flag.Parse()

	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	if *seed {
		if err := database.Seed(db); err != nil {
			log.Fatalf("failed to seed: %v", err)
		}
		log.Println("demo data seeded")
		return
	}

	// RabbitMQ is optional: without a broker the services just skip
	// publishing domain events.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer p.Close()
		publisher = p
	}

	// Repositories
	venueRepo := repository.NewVenueRepository(db)
	organiserRepo := repository.NewOrganiserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	showRepo := repository.NewShowRepository(db)
	holderRepo := repository.NewTicketHolderRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	venueSvc := service.NewVenueService(venueRepo)
	organiserSvc := service.NewOrganiserService(organiserRepo)
	eventSvc := service.NewEventService(eventRepo, organiserRepo, venueRepo)
	showSvc := service.NewShowService(showRepo, eventRepo)
	holderSvc := service.NewTicketHolderService(holderRepo, bookingRepo)
	bookingSvc := service.NewBookingService(bookingRepo, showRepo, eventRepo, venueRepo, holderRepo, publisher)
	cascadeSvc := service.NewCascadeService(showRepo, eventRepo, bookingRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = middleware.NewRequestValidator()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "gigmate"})
	})

	api := e.Group("/api/v1")
	handler.NewVenueHandler(venueSvc).RegisterRoutes(api.Group("/venues"))
	handler.NewOrganiserHandler(organiserSvc).RegisterRoutes(api.Group("/organisers"))
	handler.NewEventHandler(eventSvc, cascadeSvc).RegisterRoutes(api.Group("/events"))
	handler.NewShowHandler(showSvc, cascadeSvc).RegisterRoutes(api.Group("/shows"))
	handler.NewTicketHolderHandler(holderSvc).RegisterRoutes(api.Group("/ticket-holders"))
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(api.Group("/bookings"))

	log.Printf("GigMate API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
