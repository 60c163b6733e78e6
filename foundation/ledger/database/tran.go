package database

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/shopspring/decimal"
)

// Set of states a transaction moves through. A transaction is created
// pending and transitions to confirmed exactly once, when the block
// sealing it is mined.
const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

// Status represents the lifecycle state of a transaction.
type Status string

// timeStampFormat is the canonical textual form of a timestamp for
// hashing. Always UTC, millisecond precision.
const timeStampFormat = "2006-01-02T15:04:05.000Z"

// =============================================================================

// Tx represents a value transfer between two wallets. BlockNumber stays
// zero until the transaction is confirmed; block numbers start at one so
// the zero value is unambiguous.
type Tx struct {
	Hash        string          `json:"hash"`
	FromID      string          `json:"from"`
	ToID        string          `json:"to"`
	Value       decimal.Decimal `json:"amount"`
	Fee         decimal.Decimal `json:"fee"`
	TimeStamp   time.Time       `json:"timestamp"`
	Status      Status          `json:"status"`
	BlockNumber uint64          `json:"block_number,omitempty"`
}

// NewTx constructs a pending transaction and derives its content hash.
// The timestamp is captured once and participates in the hash, so the
// hash can be reproduced byte for byte from the stored fields.
func NewTx(from string, to string, value decimal.Decimal, fee decimal.Decimal, now time.Time) Tx {
	tx := Tx{
		FromID:    from,
		ToID:      to,
		Value:     value,
		Fee:       fee,
		TimeStamp: now.UTC(),
		Status:    StatusPending,
	}
	tx.Hash = TxHash(tx.FromID, tx.ToID, tx.Value, tx.TimeStamp)

	return tx
}

// TxHash computes the content hash for a transaction over the canonical
// string forms of from, to, amount and timestamp, concatenated in that
// order and SHA-256 hex encoded.
func TxHash(from string, to string, value decimal.Decimal, timeStamp time.Time) string {
	data := from + to + value.String() + timeStamp.UTC().Format(timeStampFormat)
	hash := sha256.Sum256([]byte(data))

	return hex.EncodeToString(hash[:])
}
