package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Boldmaa4421/raffle-app/internal/config"
	"github.com/Boldmaa4421/raffle-app/internal/domain"
	"github.com/Boldmaa4421/raffle-app/internal/importer"
	"github.com/Boldmaa4421/raffle-app/internal/phone"
	"github.com/Boldmaa4421/raffle-app/internal/port"
)

// ManualPurchaseInput is the DTO for recording a sale outside the bank
// statement flow, for example a cash sale at an event.
type ManualPurchaseInput struct {
	Phone       string     `json:"phone" binding:"required"`
	PaidAmount  int64      `json:"paid_amount" binding:"required,gt=0"`
	PurchasedAt *time.Time `json:"purchased_at"`
	SendSms     bool       `json:"send_sms"`
}

// ManualPurchaseResult is the response for a manual purchase.
type ManualPurchaseResult struct {
	Purchase *domain.Purchase `json:"purchase"`
	Codes    []string         `json:"codes"`
}

// PurchaseService records manual purchases through the same reconciliation
// rules and allocation path as the importer.
type PurchaseService interface {
	CreateManual(ctx context.Context, raffleID uuid.UUID, input ManualPurchaseInput) (*ManualPurchaseResult, error)
}

type purchaseService struct {
	raffleRepo port.RaffleRepository
	store      port.AllocationStore
	notifier   Notifier
	cfg        config.ImportConfig
}

// NewPurchaseService creates a new PurchaseService implementation.
func NewPurchaseService(
	raffleRepo port.RaffleRepository,
	store port.AllocationStore,
	notifier Notifier,
	cfg config.ImportConfig,
) PurchaseService {
	return &purchaseService{
		raffleRepo: raffleRepo,
		store:      store,
		notifier:   notifier,
		cfg:        cfg,
	}
}

func (s *purchaseService) CreateManual(ctx context.Context, raffleID uuid.UUID, input ManualPurchaseInput) (*ManualPurchaseResult, error) {
	raffle, err := s.raffleRepo.GetByID(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	if raffle.TicketPrice <= 0 {
		return nil, domain.ErrInvalidTicketPrice
	}

	e164, ok := phone.NormalizeE164(input.Phone)
	if !ok {
		return nil, domain.ErrInvalidPhone
	}

	rules := importer.Rules{
		UnitPrice:     raffle.TicketPrice,
		MaxQty:        s.cfg.MaxQty,
		MaxMultiplier: s.cfg.MaxMultiplier,
	}
	rec, reason := rules.Reconcile(input.PaidAmount)
	if reason != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidQuantity, reason)
	}

	purchasedAt := time.Now().UTC()
	if input.PurchasedAt != nil {
		purchasedAt = *input.PurchasedAt
	}

	// Each manual entry gets a fresh source tag so repeated identical sales
	// are distinct purchases, unlike statement reimports.
	source := "manual:" + uuid.New().String()
	purchase := &domain.Purchase{
		RaffleID:       raffleID,
		PhoneRaw:       input.Phone,
		PhoneE164:      e164,
		Qty:            rec.Qty,
		ExpectedAmount: rec.Expected,
		PaidAmount:     input.PaidAmount,
		OverpayDiff:    rec.OverpayDiff,
		UniqueKey:      domain.PurchaseKey(raffleID, source, 0, e164, purchasedAt, input.PaidAmount),
		PurchasedAt:    purchasedAt,
	}

	stored, codes, err := s.store.AllocateDirect(ctx, purchase)
	if err != nil {
		return nil, fmt.Errorf("purchaseService.CreateManual: %w", err)
	}

	if input.SendSms {
		s.notifier.Dispatch(ctx, raffle, []uuid.UUID{stored.ID})
	}
	return &ManualPurchaseResult{Purchase: stored, Codes: codes}, nil
}
