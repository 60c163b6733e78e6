package database

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet represents an address keyed balance on the ledger. A wallet is
// created once and only the engine mutates its balance after that.
type Wallet struct {
	Address       string          `json:"address"`
	PublicKeyHash string          `json:"public_key_hash"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
}
