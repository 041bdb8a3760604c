package main

import (
	"fmt"
	"log"

	"github.com/Boldmaa4421/raffle-app/internal/config"
	"github.com/Boldmaa4421/raffle-app/internal/handler"
	"github.com/Boldmaa4421/raffle-app/internal/port"
	"github.com/Boldmaa4421/raffle-app/internal/repository/postgres"
	"github.com/Boldmaa4421/raffle-app/internal/router"
	"github.com/Boldmaa4421/raffle-app/internal/service"
	smsnoop "github.com/Boldmaa4421/raffle-app/internal/sms/noop"
	smsoperator "github.com/Boldmaa4421/raffle-app/internal/sms/operator"
	s3storage "github.com/Boldmaa4421/raffle-app/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	raffleRepo := postgres.NewRaffleRepo(db)
	purchaseRepo := postgres.NewPurchaseRepo(db)
	ticketRepo := postgres.NewTicketRepo(db)
	winnerRepo := postgres.NewWinnerRepo(db)
	store := postgres.NewAllocationStore(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize SMS sender
	var sender port.SmsSender
	switch cfg.SMS.Provider {
	case "operator_http":
		sender = smsoperator.NewSender(&cfg.SMS)
	default:
		log.Printf("SMS provider %q not configured, using noop sender", cfg.SMS.Provider)
		sender = smsnoop.NewSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(cfg.JWT)
	notifier := service.NewNotifier(purchaseRepo, sender, cfg.SMS.Concurrency)
	importSvc := service.NewImportService(raffleRepo, store, notifier, cfg.Import)
	raffleSvc := service.NewRaffleService(raffleRepo, ticketRepo, winnerRepo, store)
	lookupSvc := service.NewLookupService(raffleRepo, purchaseRepo)
	purchaseSvc := service.NewPurchaseService(raffleRepo, store, notifier, cfg.Import)
	uploadSvc := service.NewUploadService(s3Client, &cfg.S3)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	raffleH := handler.NewRaffleHandler(raffleSvc)
	importH := handler.NewImportHandler(importSvc)
	lookupH := handler.NewLookupHandler(lookupSvc)
	purchaseH := handler.NewPurchaseHandler(purchaseSvc)
	uploadH := handler.NewUploadHandler(uploadSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, raffleH, importH, lookupH, purchaseH, uploadH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
