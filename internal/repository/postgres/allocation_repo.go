package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
	"github.com/Boldmaa4421/raffle-app/internal/port"
)

type allocationStore struct {
	db *sqlx.DB
}

// NewAllocationStore creates a new PostgreSQL-backed AllocationStore.
func NewAllocationStore(db *sqlx.DB) port.AllocationStore {
	return &allocationStore{db: db}
}

// lockCounter reads the raffle's next sequence number under FOR UPDATE,
// creating the counter row on first use. The row lock serializes all
// allocation for the raffle, which is what keeps codes gap-free.
func lockCounter(ctx context.Context, tx *sqlx.Tx, raffleID uuid.UUID) (int64, error) {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO raffle_counters (raffle_id, next_seq, updated_at)
		 VALUES ($1, 1, $2) ON CONFLICT (raffle_id) DO NOTHING`,
		raffleID, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("init counter: %w", err)
	}

	var nextSeq int64
	err = tx.GetContext(ctx, &nextSeq,
		"SELECT next_seq FROM raffle_counters WHERE raffle_id = $1 FOR UPDATE", raffleID)
	if err != nil {
		return 0, fmt.Errorf("lock counter: %w", err)
	}
	return nextSeq, nil
}

func saveCounter(ctx context.Context, tx *sqlx.Tx, raffleID uuid.UUID, nextSeq int64) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE raffle_counters SET next_seq = $1, updated_at = $2 WHERE raffle_id = $3",
		nextSeq, time.Now().UTC(), raffleID)
	if err != nil {
		return fmt.Errorf("save counter: %w", err)
	}
	return nil
}

// upsertPurchase writes one purchase row keyed by its idempotency key.
// Reimporting the same source rows updates the existing row in place.
func upsertPurchase(ctx context.Context, tx *sqlx.Tx, p *domain.Purchase) (id uuid.UUID, inserted bool, smsStatus domain.SmsStatus, err error) {
	query := `INSERT INTO purchases
		(id, raffle_id, phone_raw, phone_e164, qty, expected_amount, paid_amount,
		 overpay_diff, unique_key, sms_status, sms_error, purchased_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, '', $11, $12, $12)
		ON CONFLICT (unique_key) DO UPDATE SET
			phone_raw = EXCLUDED.phone_raw,
			qty = EXCLUDED.qty,
			expected_amount = EXCLUDED.expected_amount,
			paid_amount = EXCLUDED.paid_amount,
			overpay_diff = EXCLUDED.overpay_diff,
			updated_at = EXCLUDED.updated_at
		RETURNING id, sms_status, (xmax = 0) AS inserted`

	row := tx.QueryRowxContext(ctx, query,
		uuid.New(), p.RaffleID, p.PhoneRaw, p.PhoneE164, p.Qty, p.ExpectedAmount,
		p.PaidAmount, p.OverpayDiff, p.UniqueKey, domain.SmsStatusUnsent,
		p.PurchasedAt, time.Now().UTC())
	if err := row.Scan(&id, &smsStatus, &inserted); err != nil {
		return uuid.Nil, false, "", fmt.Errorf("upsert purchase: %w", err)
	}
	return id, inserted, smsStatus, nil
}

// ticketShortfall is how many tickets a purchase still needs given how many
// it already holds. A reimport after the raffle's ticket price was lowered
// updates the purchase to a larger qty while its old tickets remain, so the
// difference is allocated instead of skipping the purchase outright.
func ticketShortfall(existing, qty int) int {
	if existing >= qty {
		return 0
	}
	return qty - existing
}

func insertTickets(ctx context.Context, tx *sqlx.Tx, raffleID, purchaseID uuid.UUID, prefix string, startSeq int64, qty int, purchasedAt time.Time) (int, error) {
	now := time.Now().UTC()
	count := 0
	for i := 0; i < qty; i++ {
		seq := startSeq + int64(i)
		result, err := tx.ExecContext(ctx,
			`INSERT INTO tickets (id, raffle_id, purchase_id, seq, code, purchased_at, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (code) DO NOTHING`,
			uuid.New(), raffleID, purchaseID, seq, domain.TicketCode(prefix, seq), purchasedAt, now)
		if err != nil {
			return count, fmt.Errorf("insert ticket seq %d: %w", seq, err)
		}
		rows, _ := result.RowsAffected()
		count += int(rows)
	}
	return count, nil
}

// AllocateBatch persists one batch of reconciled purchase groups and allocates
// their ticket codes in a single transaction. Tickets already held from a
// previous import are kept and counted as skipped; a purchase holding fewer
// than its current qty is topped up with codes for the difference.
func (s *allocationStore) AllocateBatch(ctx context.Context, raffleID uuid.UUID, prefix string, groups []domain.PurchaseGroup, sourceFile string) (*port.BatchResult, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("allocationStore.AllocateBatch begin: %w", err)
	}
	defer tx.Rollback()

	nextSeq, err := lockCounter(ctx, tx, raffleID)
	if err != nil {
		return nil, fmt.Errorf("allocationStore.AllocateBatch: %w", err)
	}

	result := &port.BatchResult{}
	for _, g := range groups {
		purchase := &domain.Purchase{
			RaffleID:       raffleID,
			PhoneRaw:       g.PhoneRaw,
			PhoneE164:      g.PhoneE164,
			Qty:            g.Qty,
			ExpectedAmount: g.ExpectedAmount,
			PaidAmount:     g.PaidAmount,
			OverpayDiff:    g.OverpayDiff,
			UniqueKey:      domain.PurchaseKey(raffleID, sourceFile, g.StartRow, g.PhoneE164, g.PurchasedAt, g.PaidAmount),
			PurchasedAt:    g.PurchasedAt,
		}

		purchaseID, inserted, smsStatus, err := upsertPurchase(ctx, tx, purchase)
		if err != nil {
			return nil, fmt.Errorf("allocationStore.AllocateBatch: %w", err)
		}
		if inserted {
			result.InsertedPurchases++
		}

		var existing int
		err = tx.GetContext(ctx, &existing,
			"SELECT COUNT(*) FROM tickets WHERE purchase_id = $1", purchaseID)
		if err != nil {
			return nil, fmt.Errorf("allocationStore.AllocateBatch count tickets: %w", err)
		}
		need := ticketShortfall(existing, g.Qty)
		if need == 0 {
			result.SkippedTickets += existing
			continue
		}
		result.SkippedTickets += existing

		n, err := insertTickets(ctx, tx, raffleID, purchaseID, prefix, nextSeq, need, g.PurchasedAt)
		if err != nil {
			return nil, fmt.Errorf("allocationStore.AllocateBatch: %w", err)
		}
		nextSeq += int64(need)
		result.InsertedTickets += n

		if smsStatus != domain.SmsStatusSent {
			result.NotifyIDs = append(result.NotifyIDs, purchaseID)
		}
	}

	if err := saveCounter(ctx, tx, raffleID, nextSeq); err != nil {
		return nil, fmt.Errorf("allocationStore.AllocateBatch: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("allocationStore.AllocateBatch commit: %w", err)
	}
	return result, nil
}

// AllocateDirect records one manually entered purchase and allocates its
// tickets. The caller fills every purchase field except ID; the ticket codes
// come back in allocation order.
func (s *allocationStore) AllocateDirect(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, []string, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("allocationStore.AllocateDirect begin: %w", err)
	}
	defer tx.Rollback()

	nextSeq, err := lockCounter(ctx, tx, purchase.RaffleID)
	if err != nil {
		return nil, nil, fmt.Errorf("allocationStore.AllocateDirect: %w", err)
	}

	purchaseID, _, _, err := upsertPurchase(ctx, tx, purchase)
	if err != nil {
		return nil, nil, fmt.Errorf("allocationStore.AllocateDirect: %w", err)
	}
	purchase.ID = purchaseID

	var existing int
	err = tx.GetContext(ctx, &existing,
		"SELECT COUNT(*) FROM tickets WHERE purchase_id = $1", purchaseID)
	if err != nil {
		return nil, nil, fmt.Errorf("allocationStore.AllocateDirect count tickets: %w", err)
	}

	prefix := domain.TicketPrefix(purchase.RaffleID)
	if need := ticketShortfall(existing, purchase.Qty); need > 0 {
		if _, err := insertTickets(ctx, tx, purchase.RaffleID, purchaseID, prefix, nextSeq, need, purchase.PurchasedAt); err != nil {
			return nil, nil, fmt.Errorf("allocationStore.AllocateDirect: %w", err)
		}
		nextSeq += int64(need)
		if err := saveCounter(ctx, tx, purchase.RaffleID, nextSeq); err != nil {
			return nil, nil, fmt.Errorf("allocationStore.AllocateDirect: %w", err)
		}
	}

	var codes []string
	err = tx.SelectContext(ctx, &codes,
		"SELECT code FROM tickets WHERE purchase_id = $1 ORDER BY seq", purchaseID)
	if err != nil {
		return nil, nil, fmt.Errorf("allocationStore.AllocateDirect codes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("allocationStore.AllocateDirect commit: %w", err)
	}
	return purchase, codes, nil
}

// Reset deletes all winners, tickets and purchases for a raffle and rewinds
// its counter to 1. Winners reference tickets, so they must go first.
func (s *allocationStore) Reset(ctx context.Context, raffleID uuid.UUID) (*port.ResetResult, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("allocationStore.Reset begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := lockCounter(ctx, tx, raffleID); err != nil {
		return nil, fmt.Errorf("allocationStore.Reset: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM winners WHERE raffle_id = $1", raffleID); err != nil {
		return nil, fmt.Errorf("allocationStore.Reset winners: %w", err)
	}

	result := &port.ResetResult{}
	res, err := tx.ExecContext(ctx, "DELETE FROM tickets WHERE raffle_id = $1", raffleID)
	if err != nil {
		return nil, fmt.Errorf("allocationStore.Reset tickets: %w", err)
	}
	result.DeletedTickets, _ = res.RowsAffected()

	res, err = tx.ExecContext(ctx, "DELETE FROM purchases WHERE raffle_id = $1", raffleID)
	if err != nil {
		return nil, fmt.Errorf("allocationStore.Reset purchases: %w", err)
	}
	result.DeletedPurchases, _ = res.RowsAffected()

	if err := saveCounter(ctx, tx, raffleID, 1); err != nil {
		return nil, fmt.Errorf("allocationStore.Reset: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("allocationStore.Reset commit: %w", err)
	}
	return result, nil
}
