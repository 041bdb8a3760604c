package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
	"github.com/Boldmaa4421/raffle-app/internal/port"
)

type ticketRepo struct {
	db *sqlx.DB
}

// NewTicketRepo creates a new PostgreSQL-backed TicketRepository.
func NewTicketRepo(db *sqlx.DB) port.TicketRepository {
	return &ticketRepo{db: db}
}

func (r *ticketRepo) GetByCode(ctx context.Context, raffleID uuid.UUID, code string) (*domain.Ticket, error) {
	var ticket domain.Ticket
	err := r.db.GetContext(ctx, &ticket,
		"SELECT * FROM tickets WHERE raffle_id = $1 AND code = $2", raffleID, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("ticketRepo.GetByCode: %w", err)
	}
	return &ticket, nil
}

func (r *ticketRepo) ListByRaffle(ctx context.Context, raffleID uuid.UUID) ([]domain.TicketExportRow, error) {
	query := `SELECT t.code, p.phone_e164, p.phone_raw, p.purchased_at,
			t.created_at, p.paid_amount, p.qty
		FROM tickets t
		JOIN purchases p ON p.id = t.purchase_id
		WHERE t.raffle_id = $1
		ORDER BY t.seq`

	var rows []domain.TicketExportRow
	if err := r.db.SelectContext(ctx, &rows, query, raffleID); err != nil {
		return nil, fmt.Errorf("ticketRepo.ListByRaffle: %w", err)
	}
	return rows, nil
}
