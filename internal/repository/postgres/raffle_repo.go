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

type raffleRepo struct {
	db *sqlx.DB
}

// NewRaffleRepo creates a new PostgreSQL-backed RaffleRepository.
func NewRaffleRepo(db *sqlx.DB) port.RaffleRepository {
	return &raffleRepo{db: db}
}

func (r *raffleRepo) Create(ctx context.Context, raffle *domain.Raffle) error {
	raffle.ID = uuid.New()
	now := time.Now().UTC()
	raffle.CreatedAt = now
	raffle.UpdatedAt = now

	query := `INSERT INTO raffles
		(id, title, ticket_price, total_tickets, pay_bank_label, pay_account, fb_url, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		raffle.ID, raffle.Title, raffle.TicketPrice, raffle.TotalTickets,
		raffle.PayBankLabel, raffle.PayAccount, raffle.FbURL, raffle.ImageURL,
		raffle.CreatedAt, raffle.UpdatedAt)
	if err != nil {
		return fmt.Errorf("raffleRepo.Create: %w", err)
	}
	return nil
}

func (r *raffleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Raffle, error) {
	var raffle domain.Raffle
	err := r.db.GetContext(ctx, &raffle, "SELECT * FROM raffles WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRaffleNotFound
		}
		return nil, fmt.Errorf("raffleRepo.GetByID: %w", err)
	}
	return &raffle, nil
}

func (r *raffleRepo) List(ctx context.Context) ([]domain.RaffleWithCount, error) {
	query := `SELECT r.*, COALESCE(t.cnt, 0) AS ticket_count
		FROM raffles r
		LEFT JOIN (SELECT raffle_id, COUNT(*) AS cnt FROM tickets GROUP BY raffle_id) t
			ON t.raffle_id = r.id
		ORDER BY r.created_at DESC`

	var raffles []domain.RaffleWithCount
	if err := r.db.SelectContext(ctx, &raffles, query); err != nil {
		return nil, fmt.Errorf("raffleRepo.List: %w", err)
	}
	return raffles, nil
}

func (r *raffleRepo) Update(ctx context.Context, raffle *domain.Raffle) error {
	raffle.UpdatedAt = time.Now().UTC()
	query := `UPDATE raffles SET
		title = $1, ticket_price = $2, total_tickets = $3, pay_bank_label = $4,
		pay_account = $5, fb_url = $6, image_url = $7, updated_at = $8
		WHERE id = $9`

	result, err := r.db.ExecContext(ctx, query,
		raffle.Title, raffle.TicketPrice, raffle.TotalTickets, raffle.PayBankLabel,
		raffle.PayAccount, raffle.FbURL, raffle.ImageURL, raffle.UpdatedAt, raffle.ID)
	if err != nil {
		return fmt.Errorf("raffleRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRaffleNotFound
	}
	return nil
}

// Delete removes a raffle together with its winners, tickets, purchases and
// counter in one transaction.
func (r *raffleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("raffleRepo.Delete begin: %w", err)
	}
	defer tx.Rollback()

	for _, q := range []string{
		"DELETE FROM winners WHERE raffle_id = $1",
		"DELETE FROM tickets WHERE raffle_id = $1",
		"DELETE FROM purchases WHERE raffle_id = $1",
		"DELETE FROM raffle_counters WHERE raffle_id = $1",
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return fmt.Errorf("raffleRepo.Delete: %w", err)
		}
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM raffles WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("raffleRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRaffleNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("raffleRepo.Delete commit: %w", err)
	}
	return nil
}

func (r *raffleRepo) Stats(ctx context.Context, id uuid.UUID) (*domain.RaffleStats, error) {
	query := `SELECT
			$1::uuid AS raffle_id,
			COALESCE((SELECT COUNT(*) FROM tickets WHERE raffle_id = $1), 0) AS tickets_sold,
			COALESCE((SELECT COUNT(*) FROM purchases WHERE raffle_id = $1), 0) AS purchase_count,
			COALESCE((SELECT SUM(paid_amount) FROM purchases WHERE raffle_id = $1), 0) AS revenue,
			COALESCE((SELECT SUM(overpay_diff) FROM purchases WHERE raffle_id = $1), 0) AS overpaid_total`

	var stats domain.RaffleStats
	if err := r.db.GetContext(ctx, &stats, query, id); err != nil {
		return nil, fmt.Errorf("raffleRepo.Stats: %w", err)
	}
	return &stats, nil
}
