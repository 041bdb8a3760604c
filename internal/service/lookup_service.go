package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
	"github.com/Boldmaa4421/raffle-app/internal/phone"
	"github.com/Boldmaa4421/raffle-app/internal/port"
)

// LookupService serves the public "check my codes" page.
type LookupService interface {
	ByPhone(ctx context.Context, raffleID uuid.UUID, rawPhone string) ([]domain.PurchaseWithCodes, error)
}

type lookupService struct {
	raffleRepo   port.RaffleRepository
	purchaseRepo port.PurchaseRepository
}

// NewLookupService creates a new LookupService implementation.
func NewLookupService(raffleRepo port.RaffleRepository, purchaseRepo port.PurchaseRepository) LookupService {
	return &lookupService{
		raffleRepo:   raffleRepo,
		purchaseRepo: purchaseRepo,
	}
}

// ByPhone returns every purchase of the given phone number in one raffle. The
// phone is normalized the same way the importer normalizes it, so "99019096"
// and "+97699019096" find the same purchases.
func (s *lookupService) ByPhone(ctx context.Context, raffleID uuid.UUID, rawPhone string) ([]domain.PurchaseWithCodes, error) {
	if _, err := s.raffleRepo.GetByID(ctx, raffleID); err != nil {
		return nil, err
	}
	e164, ok := phone.NormalizeE164(rawPhone)
	if !ok {
		return []domain.PurchaseWithCodes{}, nil
	}
	purchases, err := s.purchaseRepo.ListByPhone(ctx, raffleID, e164)
	if err != nil {
		return nil, err
	}
	if purchases == nil {
		purchases = []domain.PurchaseWithCodes{}
	}
	return purchases, nil
}
