package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
)

// RaffleRepository defines the contract for raffle persistence.
type RaffleRepository interface {
	Create(ctx context.Context, raffle *domain.Raffle) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Raffle, error)
	List(ctx context.Context) ([]domain.RaffleWithCount, error)
	Update(ctx context.Context, raffle *domain.Raffle) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context, id uuid.UUID) (*domain.RaffleStats, error)
}

// PurchaseRepository defines the contract for purchase reads and SMS
// bookkeeping. Purchase rows are written by AllocationStore only.
type PurchaseRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error)
	TicketCodes(ctx context.Context, purchaseID uuid.UUID) ([]string, error)
	ListByPhone(ctx context.Context, raffleID uuid.UUID, phoneE164 string) ([]domain.PurchaseWithCodes, error)
	MarkSmsSent(ctx context.Context, purchaseID uuid.UUID) error
	MarkSmsFailed(ctx context.Context, purchaseID uuid.UUID, reason string) error
}

// TicketRepository defines the contract for ticket reads.
type TicketRepository interface {
	GetByCode(ctx context.Context, raffleID uuid.UUID, code string) (*domain.Ticket, error)
	ListByRaffle(ctx context.Context, raffleID uuid.UUID) ([]domain.TicketExportRow, error)
}

// WinnerRepository defines the contract for winner persistence.
type WinnerRepository interface {
	Upsert(ctx context.Context, winner *domain.Winner) error
	GetByRaffle(ctx context.Context, raffleID uuid.UUID) ([]domain.Winner, error)
}

// BatchResult summarizes one allocation batch.
type BatchResult struct {
	InsertedPurchases int
	InsertedTickets   int
	SkippedTickets    int
	// NotifyIDs lists purchase IDs that received new tickets in this batch
	// and still have SMS pending.
	NotifyIDs []uuid.UUID
}

// AllocationStore writes purchases and tickets atomically. Each AllocateBatch
// call runs in a single transaction: it locks the raffle counter, upserts
// purchases keyed by their idempotency key, allocates sequential ticket codes
// for purchases that do not already have them, and advances the counter once.
type AllocationStore interface {
	AllocateBatch(ctx context.Context, raffleID uuid.UUID, prefix string, groups []domain.PurchaseGroup, sourceFile string) (*BatchResult, error)
	AllocateDirect(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, []string, error)
	Reset(ctx context.Context, raffleID uuid.UUID) (*ResetResult, error)
}

// ResetResult reports what an administrative reset removed.
type ResetResult struct {
	DeletedTickets   int64 `json:"deleted_tickets"`
	DeletedPurchases int64 `json:"deleted_purchases"`
}
