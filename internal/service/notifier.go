package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
	"github.com/Boldmaa4421/raffle-app/internal/port"
)

// Notifier sends ticket confirmation SMS for freshly allocated purchases.
// Dispatch runs after the allocation transaction has committed and never
// fails the import: delivery problems are recorded on the purchase row.
type Notifier interface {
	Dispatch(ctx context.Context, raffle *domain.Raffle, purchaseIDs []uuid.UUID)
}

type notifier struct {
	purchaseRepo port.PurchaseRepository
	sender       port.SmsSender
	concurrency  int
}

// NewNotifier creates a Notifier with the given send concurrency.
func NewNotifier(purchaseRepo port.PurchaseRepository, sender port.SmsSender, concurrency int) Notifier {
	if concurrency < 1 {
		concurrency = 1
	}
	return &notifier{
		purchaseRepo: purchaseRepo,
		sender:       sender,
		concurrency:  concurrency,
	}
}

// Dispatch sends one SMS per purchase with bounded concurrency and blocks
// until every send has been attempted and recorded.
func (n *notifier) Dispatch(ctx context.Context, raffle *domain.Raffle, purchaseIDs []uuid.UUID) {
	sem := make(chan struct{}, n.concurrency)
	var wg sync.WaitGroup

	for _, id := range purchaseIDs {
		purchaseID := id

		sem <- struct{}{} // acquire
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }() // release
			n.notifyOne(ctx, raffle, purchaseID)
		}()
	}
	wg.Wait()
}

func (n *notifier) notifyOne(ctx context.Context, raffle *domain.Raffle, purchaseID uuid.UUID) {
	purchase, err := n.purchaseRepo.GetByID(ctx, purchaseID)
	if err != nil {
		log.Printf("notifier: load purchase %s: %v", purchaseID, err)
		return
	}
	if purchase.SmsStatus == domain.SmsStatusSent {
		return
	}
	if purchase.PhoneE164 == "" {
		return
	}

	codes, err := n.purchaseRepo.TicketCodes(ctx, purchaseID)
	if err != nil {
		log.Printf("notifier: load codes for %s: %v", purchaseID, err)
		return
	}
	if len(codes) == 0 {
		return
	}

	text := SmsText(raffle.Title, codes)
	result := n.sender.Send(ctx, purchase.PhoneE164, text)
	if result.OK {
		if err := n.purchaseRepo.MarkSmsSent(ctx, purchaseID); err != nil {
			log.Printf("notifier: mark sent %s: %v", purchaseID, err)
		}
		return
	}

	reason := result.Error
	if result.StatusCode != 0 {
		reason = fmt.Sprintf("[%d] %s", result.StatusCode, result.Error)
	}
	log.Printf("notifier: send failed for %s: %s", purchaseID, reason)
	if err := n.purchaseRepo.MarkSmsFailed(ctx, purchaseID, reason); err != nil {
		log.Printf("notifier: mark failed %s: %v", purchaseID, err)
	}
}

// SmsText builds the confirmation message. Unicode SMS segments are about 70
// characters each, so the text stays short.
func SmsText(raffleTitle string, codes []string) string {
	return fmt.Sprintf("%s\n\nТаны сугалааны код:\n%s\n\nАмжилт хүсье!",
		raffleTitle, strings.Join(codes, ", "))
}
