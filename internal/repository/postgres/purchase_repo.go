package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
	"github.com/Boldmaa4421/raffle-app/internal/port"
)

type purchaseRepo struct {
	db *sqlx.DB
}

// NewPurchaseRepo creates a new PostgreSQL-backed PurchaseRepository.
func NewPurchaseRepo(db *sqlx.DB) port.PurchaseRepository {
	return &purchaseRepo{db: db}
}

func (r *purchaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error) {
	var purchase domain.Purchase
	err := r.db.GetContext(ctx, &purchase, "SELECT * FROM purchases WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("purchaseRepo.GetByID: %w", err)
	}
	return &purchase, nil
}

func (r *purchaseRepo) TicketCodes(ctx context.Context, purchaseID uuid.UUID) ([]string, error) {
	var codes []string
	err := r.db.SelectContext(ctx, &codes,
		"SELECT code FROM tickets WHERE purchase_id = $1 ORDER BY seq", purchaseID)
	if err != nil {
		return nil, fmt.Errorf("purchaseRepo.TicketCodes: %w", err)
	}
	return codes, nil
}

func (r *purchaseRepo) ListByPhone(ctx context.Context, raffleID uuid.UUID, phoneE164 string) ([]domain.PurchaseWithCodes, error) {
	query := `SELECT p.id, p.raffle_id, r.title AS raffle_title, r.ticket_price,
			p.purchased_at, p.qty, p.paid_amount
		FROM purchases p
		JOIN raffles r ON r.id = p.raffle_id
		WHERE p.raffle_id = $1 AND p.phone_e164 = $2
		ORDER BY p.purchased_at DESC`

	rows, err := r.db.QueryxContext(ctx, query, raffleID, phoneE164)
	if err != nil {
		return nil, fmt.Errorf("purchaseRepo.ListByPhone: %w", err)
	}
	defer rows.Close()

	var out []domain.PurchaseWithCodes
	for rows.Next() {
		var p domain.PurchaseWithCodes
		if err := rows.Scan(&p.ID, &p.RaffleID, &p.RaffleTitle, &p.TicketPrice,
			&p.PurchasedAt, &p.Qty, &p.PaidAmount); err != nil {
			return nil, fmt.Errorf("purchaseRepo.ListByPhone scan: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("purchaseRepo.ListByPhone rows: %w", err)
	}

	for i := range out {
		codes, err := r.TicketCodes(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Codes = codes
	}
	return out, nil
}

func (r *purchaseRepo) MarkSmsSent(ctx context.Context, purchaseID uuid.UUID) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`UPDATE purchases SET sms_status = $1, sms_error = '', sms_sent_at = $2, updated_at = $2 WHERE id = $3`,
		domain.SmsStatusSent, now, purchaseID)
	if err != nil {
		return fmt.Errorf("purchaseRepo.MarkSmsSent: %w", err)
	}
	return nil
}

func (r *purchaseRepo) MarkSmsFailed(ctx context.Context, purchaseID uuid.UUID, reason string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE purchases SET sms_status = $1, sms_error = $2, updated_at = $3 WHERE id = $4`,
		domain.SmsStatusFailed, reason, time.Now().UTC(), purchaseID)
	if err != nil {
		return fmt.Errorf("purchaseRepo.MarkSmsFailed: %w", err)
	}
	return nil
}
