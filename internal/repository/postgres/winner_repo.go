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

type winnerRepo struct {
	db *sqlx.DB
}

// NewWinnerRepo creates a new PostgreSQL-backed WinnerRepository.
func NewWinnerRepo(db *sqlx.DB) port.WinnerRepository {
	return &winnerRepo{db: db}
}

// Upsert replaces the winner record for (raffle, ticket). A raffle keeps one
// winner row per winning ticket; re-announcing the same ticket updates the
// display fields in place.
func (r *winnerRepo) Upsert(ctx context.Context, winner *domain.Winner) error {
	if winner.ID == uuid.Nil {
		winner.ID = uuid.New()
	}
	now := time.Now().UTC()
	winner.CreatedAt = now
	winner.UpdatedAt = now

	query := `INSERT INTO winners
		(id, raffle_id, ticket_id, display_name, bio, image_url, facebook_live_url, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (raffle_id, ticket_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			bio = EXCLUDED.bio,
			image_url = EXCLUDED.image_url,
			facebook_live_url = EXCLUDED.facebook_live_url,
			published_at = EXCLUDED.published_at,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		winner.ID, winner.RaffleID, winner.TicketID, winner.DisplayName,
		winner.Bio, winner.ImageURL, winner.FacebookLiveURL, winner.PublishedAt,
		winner.CreatedAt, winner.UpdatedAt)
	if err != nil {
		return fmt.Errorf("winnerRepo.Upsert: %w", err)
	}
	return nil
}

func (r *winnerRepo) GetByRaffle(ctx context.Context, raffleID uuid.UUID) ([]domain.Winner, error) {
	var winners []domain.Winner
	err := r.db.SelectContext(ctx, &winners,
		"SELECT * FROM winners WHERE raffle_id = $1 ORDER BY created_at DESC", raffleID)
	if err != nil {
		return nil, fmt.Errorf("winnerRepo.GetByRaffle: %w", err)
	}
	return winners, nil
}
