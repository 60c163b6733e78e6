// Package database defines the ledger data model and the persistence
// contract the engine depends on. Wallets, transactions and blocks are
// stored behind the Storage interface so the backing store stays an
// external collaborator.
package database

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned by Storage implementations when the requested
// record does not exist.
var ErrNotFound = errors.New("not found")

// ErrInsufficientFunds is returned by AdjustBalance when applying the
// delta would take the wallet balance below zero.
var ErrInsufficientFunds = errors.New("insufficient funds")

// =============================================================================

// Storage interface represents the behavior required to be implemented by
// any package providing persistence for the ledger. AdjustBalance must be
// an atomic read-modify-write scoped to one wallet so concurrent writers
// can never debit against a stale balance.
type Storage interface {
	GetWallet(ctx context.Context, address string) (Wallet, error)
	PutWallet(ctx context.Context, wallet Wallet) error
	AdjustBalance(ctx context.Context, address string, delta decimal.Decimal) error
	PutTran(ctx context.Context, tx Tx) error
	UpdateTranStatus(ctx context.Context, hash string, status Status, blockNumber uint64) error
	GetChainTip(ctx context.Context) (Block, error)
	PutBlock(ctx context.Context, block Block) error
	TransByAddress(ctx context.Context, address string) ([]Tx, error)
	TranByHash(ctx context.Context, hash string) (Tx, error)
	Close() error
}
