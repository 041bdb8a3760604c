package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Raffle represents a single raffle campaign with a fixed ticket price.
type Raffle struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	TicketPrice  int64     `db:"ticket_price" json:"ticket_price"`
	TotalTickets *int64    `db:"total_tickets" json:"total_tickets"`
	PayBankLabel *string   `db:"pay_bank_label" json:"pay_bank_label"`
	PayAccount   *string   `db:"pay_account" json:"pay_account"`
	FbURL        *string   `db:"fb_url" json:"fb_url"`
	ImageURL     *string   `db:"image_url" json:"image_url"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// RaffleWithCount is a raffle joined with its sold ticket count.
type RaffleWithCount struct {
	Raffle
	TicketCount int64 `db:"ticket_count" json:"ticket_count"`
}

// Purchase represents one reconciled purchase group persisted from an import
// (or a manual sale). UniqueKey makes reimports of the same source rows
// idempotent: the same key updates the row instead of duplicating it.
type Purchase struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	RaffleID       uuid.UUID  `db:"raffle_id" json:"raffle_id"`
	PhoneRaw       string     `db:"phone_raw" json:"phone_raw"`
	PhoneE164      string     `db:"phone_e164" json:"phone_e164"`
	Qty            int        `db:"qty" json:"qty"`
	ExpectedAmount int64      `db:"expected_amount" json:"expected_amount"`
	PaidAmount     int64      `db:"paid_amount" json:"paid_amount"`
	OverpayDiff    int64      `db:"overpay_diff" json:"overpay_diff"`
	UniqueKey      string     `db:"unique_key" json:"-"`
	SmsStatus      SmsStatus  `db:"sms_status" json:"sms_status"`
	SmsError       string     `db:"sms_error" json:"sms_error,omitempty"`
	SmsSentAt      *time.Time `db:"sms_sent_at" json:"sms_sent_at"`
	PurchasedAt    time.Time  `db:"purchased_at" json:"purchased_at"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// Ticket is one sold ticket unit. Code is unique across the system:
// raffle prefix plus a zero-padded sequence number.
type Ticket struct {
	ID          uuid.UUID `db:"id" json:"id"`
	RaffleID    uuid.UUID `db:"raffle_id" json:"raffle_id"`
	PurchaseID  uuid.UUID `db:"purchase_id" json:"purchase_id"`
	Seq         int64     `db:"seq" json:"seq"`
	Code        string    `db:"code" json:"code"`
	PurchasedAt time.Time `db:"purchased_at" json:"purchased_at"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// RaffleCounter holds the per-raffle monotonic ticket sequence. NextSeq is
// only ever read and advanced inside the allocation transaction, and only
// reset by an administrative reset that also clears the raffle's tickets.
type RaffleCounter struct {
	RaffleID  uuid.UUID `db:"raffle_id" json:"raffle_id"`
	NextSeq   int64     `db:"next_seq" json:"next_seq"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Winner is the single published winner of a raffle.
type Winner struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	RaffleID        uuid.UUID  `db:"raffle_id" json:"raffle_id"`
	TicketID        uuid.UUID  `db:"ticket_id" json:"ticket_id"`
	DisplayName     *string    `db:"display_name" json:"display_name"`
	Bio             *string    `db:"bio" json:"bio"`
	ImageURL        *string    `db:"image_url" json:"image_url"`
	FacebookLiveURL *string    `db:"facebook_live_url" json:"facebook_live_url"`
	PublishedAt     *time.Time `db:"published_at" json:"published_at"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// RaffleStats aggregates sales figures for one raffle.
type RaffleStats struct {
	RaffleID      uuid.UUID `db:"raffle_id" json:"raffle_id"`
	TicketsSold   int64     `db:"tickets_sold" json:"tickets_sold"`
	PurchaseCount int64     `db:"purchase_count" json:"purchase_count"`
	Revenue       int64     `db:"revenue" json:"revenue"`
	OverpaidTotal int64     `db:"overpaid_total" json:"overpaid_total"`
}

// RawRow is one unparsed spreadsheet row as received from the admin UI or
// decoded from an uploaded workbook. Cells keep whatever type the source
// produced: strings, numbers (spreadsheet serial dates) or nothing.
type RawRow struct {
	PurchasedAt interface{} `json:"purchasedAt"`
	Amount      interface{} `json:"amount"`
	Phone       interface{} `json:"phone"`
}

// PurchaseGroup is a reconciled group of 1..N source rows: one anchor row
// carrying the phone number plus any continuation rows folded into it.
type PurchaseGroup struct {
	StartRow       int       `json:"start_row"`
	PurchasedAt    time.Time `json:"purchased_at"`
	PhoneRaw       string    `json:"phone_raw"`
	PhoneE164      string    `json:"phone_e164"`
	PaidAmount     int64     `json:"paid_amount"`
	Qty            int       `json:"qty"`
	ExpectedAmount int64     `json:"expected_amount"`
	OverpayDiff    int64     `json:"overpay_diff"`
}

// SkipRecord describes one source row that was not imported, for the
// operator-facing report. Never persisted.
type SkipRecord struct {
	Row         int    `json:"row"`
	Reason      string `json:"reason"`
	Phone       string `json:"phone"`
	Amount      string `json:"amount"`
	PurchasedAt string `json:"purchased_at"`
}

// OverpayRecord describes a purchase group whose paid amount exceeded the
// cost of the whole ticket units it bought.
type OverpayRecord struct {
	Row            int    `json:"row"`
	PhoneE164      string `json:"phone_e164"`
	PaidAmount     int64  `json:"paid_amount"`
	ExpectedAmount int64  `json:"expected_amount"`
	OverpayDiff    int64  `json:"overpay_diff"`
}

// ImportSummary is the response for one import request.
type ImportSummary struct {
	RaffleID          uuid.UUID       `json:"raffle_id"`
	SourceFile        string          `json:"source_file"`
	TicketPrice       int64           `json:"ticket_price"`
	ParsedGroups      int             `json:"parsed_groups"`
	InsertedPurchases int             `json:"inserted_purchases"`
	InsertedTickets   int             `json:"inserted_tickets"`
	SkippedTickets    int             `json:"skipped_tickets"`
	OverpaidCount     int             `json:"overpaid_count"`
	SkippedCount      int             `json:"skipped_count"`
	FailedBatches     int             `json:"failed_batches"`
	SkippedPreview    []SkipRecord    `json:"skipped_preview"`
	OverpaidPreview   []OverpayRecord `json:"overpaid_preview"`
}

// PurchaseWithCodes is a purchase joined with its ticket codes and raffle
// summary, as returned by the public phone lookup.
type PurchaseWithCodes struct {
	ID          uuid.UUID `json:"id"`
	RaffleID    uuid.UUID `json:"raffle_id"`
	RaffleTitle string    `json:"raffle_title"`
	TicketPrice int64     `json:"ticket_price"`
	PurchasedAt time.Time `json:"purchased_at"`
	Qty         int       `json:"qty"`
	PaidAmount  int64     `json:"paid_amount"`
	Codes       []string  `json:"codes"`
}

// TicketExportRow is one line of the per-raffle CSV export.
type TicketExportRow struct {
	Code            string    `db:"code"`
	PhoneE164       string    `db:"phone_e164"`
	PhoneRaw        string    `db:"phone_raw"`
	PurchasedAt     time.Time `db:"purchased_at"`
	TicketCreatedAt time.Time `db:"created_at"`
	PaidAmount      int64     `db:"paid_amount"`
	Qty             int       `db:"qty"`
}

// TicketPrefix derives the stable human-facing code prefix for a raffle:
// the first four hex characters of its id, uppercased.
func TicketPrefix(raffleID uuid.UUID) string {
	hex := strings.ReplaceAll(raffleID.String(), "-", "")
	return strings.ToUpper(hex[:4])
}

// TicketCode formats a sequence number as a human-facing ticket code.
func TicketCode(prefix string, seq int64) string {
	return fmt.Sprintf("%s-%06d", prefix, seq)
}
