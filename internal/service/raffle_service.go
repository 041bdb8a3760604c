package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
	"github.com/Boldmaa4421/raffle-app/internal/port"
)

// RaffleInput is the DTO for raffle create and update requests.
type RaffleInput struct {
	Title        string  `json:"title" binding:"required"`
	TicketPrice  int64   `json:"ticket_price" binding:"required,gt=0"`
	TotalTickets *int64  `json:"total_tickets"`
	PayBankLabel *string `json:"pay_bank_label"`
	PayAccount   *string `json:"pay_account"`
	FbURL        *string `json:"fb_url"`
	ImageURL     *string `json:"image_url"`
}

// WinnerInput is the DTO for announcing a winner by ticket code.
type WinnerInput struct {
	Code            string  `json:"code" binding:"required"`
	DisplayName     *string `json:"display_name"`
	Bio             *string `json:"bio"`
	ImageURL        *string `json:"image_url"`
	FacebookLiveURL *string `json:"facebook_live_url"`
	Publish         bool    `json:"publish"`
}

// RaffleService manages raffle campaigns and their winners.
type RaffleService interface {
	Create(ctx context.Context, input RaffleInput) (*domain.Raffle, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Raffle, error)
	List(ctx context.Context) ([]domain.RaffleWithCount, error)
	Update(ctx context.Context, id uuid.UUID, input RaffleInput) (*domain.Raffle, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reset(ctx context.Context, id uuid.UUID) (*port.ResetResult, error)
	Stats(ctx context.Context, id uuid.UUID) (*domain.RaffleStats, error)
	AnnounceWinner(ctx context.Context, raffleID uuid.UUID, input WinnerInput) (*domain.Winner, error)
	Winners(ctx context.Context, raffleID uuid.UUID) ([]domain.Winner, error)
	ExportRows(ctx context.Context, raffleID uuid.UUID) ([]domain.TicketExportRow, error)
}

type raffleService struct {
	raffleRepo port.RaffleRepository
	ticketRepo port.TicketRepository
	winnerRepo port.WinnerRepository
	store      port.AllocationStore
}

// NewRaffleService creates a new RaffleService implementation.
func NewRaffleService(
	raffleRepo port.RaffleRepository,
	ticketRepo port.TicketRepository,
	winnerRepo port.WinnerRepository,
	store port.AllocationStore,
) RaffleService {
	return &raffleService{
		raffleRepo: raffleRepo,
		ticketRepo: ticketRepo,
		winnerRepo: winnerRepo,
		store:      store,
	}
}

func (s *raffleService) Create(ctx context.Context, input RaffleInput) (*domain.Raffle, error) {
	raffle := &domain.Raffle{
		Title:        input.Title,
		TicketPrice:  input.TicketPrice,
		TotalTickets: input.TotalTickets,
		PayBankLabel: input.PayBankLabel,
		PayAccount:   input.PayAccount,
		FbURL:        input.FbURL,
		ImageURL:     input.ImageURL,
	}
	if err := s.raffleRepo.Create(ctx, raffle); err != nil {
		return nil, fmt.Errorf("raffleService.Create: %w", err)
	}
	return raffle, nil
}

func (s *raffleService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Raffle, error) {
	return s.raffleRepo.GetByID(ctx, id)
}

func (s *raffleService) List(ctx context.Context) ([]domain.RaffleWithCount, error) {
	return s.raffleRepo.List(ctx)
}

func (s *raffleService) Update(ctx context.Context, id uuid.UUID, input RaffleInput) (*domain.Raffle, error) {
	raffle, err := s.raffleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	raffle.Title = input.Title
	raffle.TicketPrice = input.TicketPrice
	raffle.TotalTickets = input.TotalTickets
	raffle.PayBankLabel = input.PayBankLabel
	raffle.PayAccount = input.PayAccount
	raffle.FbURL = input.FbURL
	raffle.ImageURL = input.ImageURL

	if err := s.raffleRepo.Update(ctx, raffle); err != nil {
		return nil, err
	}
	return raffle, nil
}

func (s *raffleService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.raffleRepo.Delete(ctx, id)
}

// Reset clears all purchases, tickets and winners of a raffle and rewinds
// its code sequence. Meant for discarding a test import before going live.
func (s *raffleService) Reset(ctx context.Context, id uuid.UUID) (*port.ResetResult, error) {
	if _, err := s.raffleRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.store.Reset(ctx, id)
}

func (s *raffleService) Stats(ctx context.Context, id uuid.UUID) (*domain.RaffleStats, error) {
	if _, err := s.raffleRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.raffleRepo.Stats(ctx, id)
}

// AnnounceWinner records the winner identified by a ticket code. Announcing
// the same code again updates the display fields.
func (s *raffleService) AnnounceWinner(ctx context.Context, raffleID uuid.UUID, input WinnerInput) (*domain.Winner, error) {
	ticket, err := s.ticketRepo.GetByCode(ctx, raffleID, input.Code)
	if err != nil {
		return nil, err
	}

	winner := &domain.Winner{
		RaffleID:        raffleID,
		TicketID:        ticket.ID,
		DisplayName:     input.DisplayName,
		Bio:             input.Bio,
		ImageURL:        input.ImageURL,
		FacebookLiveURL: input.FacebookLiveURL,
	}
	if input.Publish {
		now := time.Now().UTC()
		winner.PublishedAt = &now
	}

	if err := s.winnerRepo.Upsert(ctx, winner); err != nil {
		return nil, fmt.Errorf("raffleService.AnnounceWinner: %w", err)
	}
	return winner, nil
}

func (s *raffleService) Winners(ctx context.Context, raffleID uuid.UUID) ([]domain.Winner, error) {
	return s.winnerRepo.GetByRaffle(ctx, raffleID)
}

func (s *raffleService) ExportRows(ctx context.Context, raffleID uuid.UUID) ([]domain.TicketExportRow, error) {
	if _, err := s.raffleRepo.GetByID(ctx, raffleID); err != nil {
		return nil, err
	}
	return s.ticketRepo.ListByRaffle(ctx, raffleID)
}
