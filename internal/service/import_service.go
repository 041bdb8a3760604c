package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Boldmaa4421/raffle-app/internal/config"
	"github.com/Boldmaa4421/raffle-app/internal/domain"
	"github.com/Boldmaa4421/raffle-app/internal/importer"
	"github.com/Boldmaa4421/raffle-app/internal/port"
)

// ImportInput is the DTO for one import request.
type ImportInput struct {
	RaffleID   uuid.UUID
	SourceFile string
	Rows       []domain.RawRow
}

// ImportService reconciles raw bank statement rows into purchases and
// allocates their ticket codes.
type ImportService interface {
	ImportRows(ctx context.Context, input ImportInput) (*domain.ImportSummary, error)
	ImportSpreadsheet(ctx context.Context, raffleID uuid.UUID, sourceFile string, r io.Reader) (*domain.ImportSummary, error)
}

type importService struct {
	raffleRepo port.RaffleRepository
	store      port.AllocationStore
	notifier   Notifier
	cfg        config.ImportConfig
}

// NewImportService creates a new ImportService implementation.
func NewImportService(
	raffleRepo port.RaffleRepository,
	store port.AllocationStore,
	notifier Notifier,
	cfg config.ImportConfig,
) ImportService {
	return &importService{
		raffleRepo: raffleRepo,
		store:      store,
		notifier:   notifier,
		cfg:        cfg,
	}
}

func (s *importService) ImportRows(ctx context.Context, input ImportInput) (*domain.ImportSummary, error) {
	raffle, err := s.raffleRepo.GetByID(ctx, input.RaffleID)
	if err != nil {
		if errors.Is(err, domain.ErrRaffleNotFound) {
			return nil, domain.ErrRaffleNotFound
		}
		return nil, fmt.Errorf("importService.ImportRows: %w", err)
	}
	if raffle.TicketPrice <= 0 {
		return nil, domain.ErrInvalidTicketPrice
	}
	if len(input.Rows) == 0 {
		return nil, domain.ErrEmptyImport
	}

	scanner := importer.NewScanner(importer.Rules{
		UnitPrice:     raffle.TicketPrice,
		MaxQty:        s.cfg.MaxQty,
		MaxMultiplier: s.cfg.MaxMultiplier,
	})
	scan := scanner.Scan(input.Rows)

	summary := &domain.ImportSummary{
		RaffleID:     raffle.ID,
		SourceFile:   input.SourceFile,
		TicketPrice:  raffle.TicketPrice,
		ParsedGroups: len(scan.Groups),
		SkippedCount: len(scan.Skips),
	}
	for _, g := range scan.Groups {
		if g.OverpayDiff > 0 {
			summary.OverpaidCount++
			if len(summary.OverpaidPreview) < s.cfg.PreviewLimit {
				summary.OverpaidPreview = append(summary.OverpaidPreview, domain.OverpayRecord{
					Row:            g.StartRow,
					PhoneE164:      g.PhoneE164,
					PaidAmount:     g.PaidAmount,
					ExpectedAmount: g.ExpectedAmount,
					OverpayDiff:    g.OverpayDiff,
				})
			}
		}
	}
	if len(scan.Skips) > s.cfg.PreviewLimit {
		summary.SkippedPreview = scan.Skips[:s.cfg.PreviewLimit]
	} else {
		summary.SkippedPreview = scan.Skips
	}

	prefix := domain.TicketPrefix(raffle.ID)
	batchTimeout := time.Duration(s.cfg.BatchTimeoutSecs) * time.Second

	for start := 0; start < len(scan.Groups); start += s.cfg.BatchSize {
		end := start + s.cfg.BatchSize
		if end > len(scan.Groups) {
			end = len(scan.Groups)
		}
		batch := scan.Groups[start:end]

		batchCtx, cancel := context.WithTimeout(ctx, batchTimeout)
		result, err := s.store.AllocateBatch(batchCtx, raffle.ID, prefix, batch, input.SourceFile)
		cancel()
		if err != nil {
			// Committed batches stay committed. Stop here so codes remain
			// gap-free; the operator reimports the same file to resume.
			log.Printf("importService.ImportRows: batch %d-%d failed: %v", start, end, err)
			summary.FailedBatches++
			break
		}

		summary.InsertedPurchases += result.InsertedPurchases
		summary.InsertedTickets += result.InsertedTickets
		summary.SkippedTickets += result.SkippedTickets

		if len(result.NotifyIDs) > 0 {
			s.notifier.Dispatch(ctx, raffle, result.NotifyIDs)
		}
	}

	return summary, nil
}

func (s *importService) ImportSpreadsheet(ctx context.Context, raffleID uuid.UUID, sourceFile string, r io.Reader) (*domain.ImportSummary, error) {
	rows, err := importer.ReadWorkbook(r)
	if err != nil {
		return nil, err
	}
	return s.ImportRows(ctx, ImportInput{
		RaffleID:   raffleID,
		SourceFile: sourceFile,
		Rows:       rows,
	})
}
