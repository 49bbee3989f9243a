package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Amadoujf/nouveauyama/internal/config"
	"github.com/Amadoujf/nouveauyama/internal/database/minio"
	"github.com/Amadoujf/nouveauyama/internal/database/postgres"
	"github.com/Amadoujf/nouveauyama/internal/database/redis"
	"github.com/Amadoujf/nouveauyama/internal/email"
	"github.com/Amadoujf/nouveauyama/internal/event"
	"github.com/Amadoujf/nouveauyama/internal/handlers"
	"github.com/Amadoujf/nouveauyama/internal/pdf"
	"github.com/Amadoujf/nouveauyama/internal/repository"
	"github.com/Amadoujf/nouveauyama/internal/services"

	"github.com/gofiber/fiber/v3"
	_ "github.com/lib/pq"
)

func setupLogging() (*os.File, error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic: %v\n", r)
		}
	}()

	logDir := filepath.Join("/yama", "log", "api")
	fmt.Println("Log directory:", logDir)
	err := os.MkdirAll(logDir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func main() {
	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	cfg := config.New()

	log.Printf("Connecting to PostgreSQL with: host=%s, port=%s, user=%s, dbname=%s",
		cfg.PostgresCfg.Host, cfg.PostgresCfg.Port, cfg.PostgresCfg.Username, cfg.PostgresCfg.DBname)
	db, err := postgres.ConnectAndCreateDB(cfg.PostgresCfg)
	if err != nil {
		log.Printf("error connect to database: %s", err)
		go postgres.RetryConnectOnFailed(30*time.Second, &db, cfg.PostgresCfg)
	}

	redisClient, err := redis.NewRedisClient(cfg.RedisCfg.Host, cfg.RedisCfg.Port, cfg.RedisCfg.Password, cfg.RedisCfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	minioClient, err := minio.NewMinioClient(cfg.MinioCfg)
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	rabbitConn, err := event.ConnectRabbitMQ(cfg.RabbitMQCfg)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer rabbitConn.Close()

	publisher := event.NewEmailPublisher(rabbitConn)
	emailService := email.NewEmailService(cfg.SMTPCfg)

	consumer, err := event.NewQueueConsumer(rabbitConn, &event.ConsumerConfig{
		QueueName:       event.EmailQueue,
		DeadLetterQueue: event.EmailDLQ,
		PrefetchCount:   10,
	}, emailService)
	if err != nil {
		log.Fatalf("Failed to setup queue consumer: %v", err)
	}
	go func() {
		if err := consumer.StartConsuming(context.Background()); err != nil {
			log.Printf("Consumer error: %v", err)
		}
	}()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	contactRepo := repository.NewContactRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	contractRepo := repository.NewContractRepository(db)
	marketingRepo := repository.NewMarketingRepository(db)
	sessionRepo := repository.NewSessionRepository(redisClient.GetClient())

	// Services
	jwtService := services.NewJWTService(cfg.JWTCfg.Secret, cfg.JWTCfg.AccessExpiry)
	authService := services.NewAuthService(userRepo, sessionRepo, jwtService)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, wishlistRepo, productRepo)
	shipping := services.NewShippingCalculator(cfg.ShippingCfg)
	orderService := services.NewOrderService(orderRepo, productRepo, cartService, marketingRepo, userRepo, shipping, publisher)
	paytechService := services.NewPayTechService(cfg.PayTechCfg, orderService)
	contactService := services.NewContactService(contactRepo)
	marketingService := services.NewMarketingService(marketingRepo, publisher)
	partnerService := services.NewPartnerService(partnerRepo)

	numbering := services.NewNumberingService(sequenceRepo, cfg.DocumentPrefix)
	renderer := pdf.NewRenderer()
	receiptService := services.NewReceiptService(renderer)
	quoteService := services.NewQuoteService(quoteRepo, invoiceRepo, partnerRepo, numbering, renderer, minioClient, publisher)
	invoiceService := services.NewInvoiceService(invoiceRepo, partnerRepo, numbering, renderer, minioClient, publisher)
	contractService := services.NewContractService(contractRepo, partnerRepo, numbering, renderer, minioClient, publisher)
	dashboardService := services.NewDashboardService(partnerRepo, quoteRepo, invoiceRepo, contractRepo, orderRepo, userRepo, productRepo, sequenceRepo)
	seedService := services.NewSeedService(userRepo, productRepo)

	app := fiber.New()
	app.Get("/checkhealth", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("YAMA+ API is healthy")
	})
	app.Get("/api/health", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "ok",
			"database": postgres.DBStatus,
		})
	})

	// Handlers
	middleware := handlers.NewAuthMiddleware(jwtService, authService)
	handlers.NewAuthHandler(authService, middleware).Register(app)
	handlers.NewProductHandler(productService, authService, middleware).Register(app)
	handlers.NewCartHandler(cartService, middleware).Register(app)
	handlers.NewOrderHandler(orderService, receiptService, contactService, middleware).Register(app)
	handlers.NewPaymentHandler(paytechService, middleware).Register(app)
	handlers.NewMarketingHandler(marketingService, middleware).Register(app)
	handlers.NewAdminHandler(dashboardService, orderService, authService, contactService, seedService, cfg, middleware).Register(app)
	handlers.NewCommercialHandler(partnerService, quoteService, invoiceService, contractService, dashboardService, middleware).Register(app)

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := app.Listen(fmt.Sprintf("0.0.0.0:%s", cfg.Port)); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	<-shutdownChan
	log.Println("Shutting down server...")
}
