// Command importfile runs a bank statement import against the database
// without going through the HTTP API.
// Usage: go run ./cmd/importfile <raffle-id> <statement.xlsx>
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Boldmaa4421/raffle-app/internal/config"
	"github.com/Boldmaa4421/raffle-app/internal/port"
	"github.com/Boldmaa4421/raffle-app/internal/repository/postgres"
	"github.com/Boldmaa4421/raffle-app/internal/service"
	smsnoop "github.com/Boldmaa4421/raffle-app/internal/sms/noop"
	smsoperator "github.com/Boldmaa4421/raffle-app/internal/sms/operator"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: importfile <raffle-id> <statement.xlsx>")
	}
	raffleID, err := uuid.Parse(os.Args[1])
	if err != nil {
		return fmt.Errorf("invalid raffle id: %w", err)
	}
	path := os.Args[2]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	raffleRepo := postgres.NewRaffleRepo(db)
	purchaseRepo := postgres.NewPurchaseRepo(db)
	store := postgres.NewAllocationStore(db)

	var sender port.SmsSender
	if cfg.SMS.Provider == "operator_http" {
		sender = smsoperator.NewSender(&cfg.SMS)
	} else {
		sender = smsnoop.NewSender()
	}
	notifier := service.NewNotifier(purchaseRepo, sender, cfg.SMS.Concurrency)
	importSvc := service.NewImportService(raffleRepo, store, notifier, cfg.Import)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open statement: %w", err)
	}
	defer f.Close()

	summary, err := importSvc.ImportSpreadsheet(context.Background(), raffleID, filepath.Base(path), f)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
