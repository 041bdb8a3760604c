package importer

import (
	"time"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
)

// ScanResult is the outcome of one sequential pass over the source rows.
type ScanResult struct {
	Groups []domain.PurchaseGroup
	Skips  []domain.SkipRecord
}

// Scanner walks spreadsheet rows in order and folds them into purchase
// groups. Scanning is strictly sequential and order-dependent: a row with an
// empty phone cell continues the group opened by the nearest anchor row
// above it, so reordering rows changes the result.
type Scanner struct {
	rules Rules
}

// NewScanner creates a Scanner with the given reconciliation rules.
func NewScanner(rules Rules) *Scanner {
	return &Scanner{rules: rules}
}

// Scan processes all rows in one pass. The scanner is a two-state machine:
// either no group is open, or exactly one is. Each transition replaces the
// open group with a fresh value instead of mutating it in place. Row numbers
// in skip records are 1-based spreadsheet rows counted past the header.
func (s *Scanner) Scan(rows []domain.RawRow) ScanResult {
	var result ScanResult

	var lastDate time.Time
	haveDate := false

	open := false
	openIdx := -1

	for i, row := range rows {
		rowNum := i + 2 // row 1 is the header

		phoneText := NormalizeCell(row.Phone)
		amountText := NormalizeCell(row.Amount)
		dateText := NormalizeCell(row.PurchasedAt)
		if phoneText == "" && amountText == "" && dateText == "" {
			continue
		}

		// Date inheritance: the convention is "date written once,
		// subsequent rows same day".
		if d, ok := ResolveDate(row.PurchasedAt); ok {
			lastDate = d
			haveDate = true
		}
		if !haveDate {
			result.Skips = append(result.Skips, skipRecord(rowNum, RejectNoDate, row))
			open = false
			continue
		}

		paid := CoerceAmount(row.Amount)
		parsed := ExtractPhone(row.Phone)

		switch {
		case parsed.OK:
			// Anchor row: starts a new group, closing any open one.
			rec, reason := s.rules.Reconcile(paid)
			if reason != "" {
				result.Skips = append(result.Skips, skipRecord(rowNum, reason, row))
				open = false
				continue
			}
			result.Groups = append(result.Groups, domain.PurchaseGroup{
				StartRow:       rowNum,
				PurchasedAt:    lastDate,
				PhoneRaw:       parsed.Raw,
				PhoneE164:      parsed.E164,
				PaidAmount:     paid,
				Qty:            rec.Qty,
				ExpectedAmount: rec.Expected,
				OverpayDiff:    rec.OverpayDiff,
			})
			open = true
			openIdx = len(result.Groups) - 1

		case parsed.Reason == RejectEmpty:
			// Continuation row: folds its amount into the open group.
			if !open {
				result.Skips = append(result.Skips, skipRecord(rowNum, RejectNoAnchor, row))
				continue
			}
			prev := result.Groups[openIdx]
			rec, reason := s.rules.Reconcile(prev.PaidAmount + paid)
			if reason != "" {
				// The prior valid state of the group is preserved; only
				// this row is skipped and the group stays open.
				result.Skips = append(result.Skips, skipRecord(rowNum, reason, row))
				continue
			}
			next := prev
			next.PaidAmount = prev.PaidAmount + paid
			next.Qty = rec.Qty
			next.ExpectedAmount = rec.Expected
			next.OverpayDiff = rec.OverpayDiff
			result.Groups[openIdx] = next

		default:
			// A non-empty phone cell that parses to nothing cannot be a
			// silent continuation: it terminates the open group.
			result.Skips = append(result.Skips, skipRecord(rowNum, parsed.Reason, row))
			open = false
		}
	}

	return result
}

func skipRecord(rowNum int, reason string, row domain.RawRow) domain.SkipRecord {
	return domain.SkipRecord{
		Row:         rowNum,
		Reason:      reason,
		Phone:       NormalizeCell(row.Phone),
		Amount:      NormalizeCell(row.Amount),
		PurchasedAt: NormalizeCell(row.PurchasedAt),
	}
}
