package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTicketPrefix(t *testing.T) {
	id := uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000")
	assert.Equal(t, "A1B2", TicketPrefix(id))
}

func TestTicketCode(t *testing.T) {
	assert.Equal(t, "A1B2-000001", TicketCode("A1B2", 1))
	assert.Equal(t, "A1B2-000042", TicketCode("A1B2", 42))
	assert.Equal(t, "A1B2-1000000", TicketCode("A1B2", 1000000))
}

func TestPurchaseKey_Deterministic(t *testing.T) {
	raffleID := uuid.New()
	at := time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC)

	k1 := PurchaseKey(raffleID, "jan.xlsx", 2, "+97699019096", at, 15000)
	k2 := PurchaseKey(raffleID, "jan.xlsx", 2, "+97699019096", at, 15000)
	assert.Equal(t, k1, k2)
	assert.Len(t, k1, 40) // sha1 hex

	// Any component change produces a different key.
	assert.NotEqual(t, k1, PurchaseKey(raffleID, "feb.xlsx", 2, "+97699019096", at, 15000))
	assert.NotEqual(t, k1, PurchaseKey(raffleID, "jan.xlsx", 3, "+97699019096", at, 15000))
	assert.NotEqual(t, k1, PurchaseKey(raffleID, "jan.xlsx", 2, "+97688112233", at, 15000))
	assert.NotEqual(t, k1, PurchaseKey(raffleID, "jan.xlsx", 2, "+97699019096", at.Add(time.Second), 15000))
	assert.NotEqual(t, k1, PurchaseKey(raffleID, "jan.xlsx", 2, "+97699019096", at, 17000))
}
