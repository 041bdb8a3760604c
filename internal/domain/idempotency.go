package domain

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PurchaseKey builds the deterministic idempotency key for a purchase group.
// Importing the same source rows again produces the same key, so the upsert
// updates the existing purchase instead of duplicating it. The source label
// diversifies keys across distinct uploads of different files.
func PurchaseKey(raffleID uuid.UUID, sourceFile string, startRow int, phoneE164 string, purchasedAt time.Time, paidAmount int64) string {
	payload := fmt.Sprintf("%s:%s:%d:%s:%d:%d",
		raffleID, sourceFile, startRow, phoneE164, purchasedAt.Unix(), paidAmount)
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}
