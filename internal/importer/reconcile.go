package importer

// Skip reasons produced by reconciliation.
const (
	RejectEmptyAmount     = "empty amount"
	RejectImplausibleSum  = "amount implausibly large"
	RejectUnderpaid       = "underpaid"
	RejectQuantityBounds  = "quantity out of bounds"
	RejectNoDate          = "date not found"
	RejectNoAnchor        = "continuation without anchor"
)

// Rules holds the per-import reconciliation parameters. UnitPrice comes from
// the raffle; the bounds guard against rows that are clearly not ticket
// purchases.
type Rules struct {
	UnitPrice     int64
	MaxQty        int
	MaxMultiplier int64
}

// Reconciliation is the accepted outcome for a paid amount: whole ticket
// units plus the retained overpay difference.
type Reconciliation struct {
	Qty         int
	Expected    int64
	OverpayDiff int64
}

// Reconcile applies the payment rules to a cumulative paid amount. It
// returns the reconciliation, or a skip reason when the amount cannot buy a
// valid number of tickets. Overpayment within bounds is accepted and the
// difference recorded, never rejected; no partial tickets are ever issued.
func (r Rules) Reconcile(paid int64) (Reconciliation, string) {
	if paid <= 0 {
		return Reconciliation{}, RejectEmptyAmount
	}
	if paid >= r.UnitPrice*(r.MaxMultiplier+1) {
		return Reconciliation{}, RejectImplausibleSum
	}
	if paid < r.UnitPrice {
		return Reconciliation{}, RejectUnderpaid
	}

	qty := paid / r.UnitPrice
	if qty <= 0 || qty > int64(r.MaxQty) {
		return Reconciliation{}, RejectQuantityBounds
	}

	expected := qty * r.UnitPrice
	return Reconciliation{
		Qty:         int(qty),
		Expected:    expected,
		OverpayDiff: paid - expected,
	}, ""
}
