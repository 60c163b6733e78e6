package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/mycoinlabs/mycoin/foundation/ledger/database"
	"github.com/shopspring/decimal"
)

// recentTranLimit caps how many transactions are returned alongside a
// balance.
const recentTranLimit = 10

// Balance represents the balance of a wallet with its recent activity,
// newest first.
type Balance struct {
	Address      string
	Balance      decimal.Decimal
	Transactions []database.Tx
}

// QueryBalance returns the balance for the specified address with its
// most recent transactions.
func (s *State) QueryBalance(ctx context.Context, address string) (Balance, error) {
	wallet, err := s.storage.GetWallet(ctx, address)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return Balance{}, ErrWalletNotFound
		}
		return Balance{}, fmt.Errorf("loading wallet %s: %w", address, err)
	}

	trans, err := s.storage.TransByAddress(ctx, address)
	if err != nil {
		return Balance{}, fmt.Errorf("loading transactions for %s: %w", address, err)
	}
	if len(trans) > recentTranLimit {
		trans = trans[:recentTranLimit]
	}

	balance := Balance{
		Address:      wallet.Address,
		Balance:      wallet.Balance,
		Transactions: trans,
	}

	return balance, nil
}

// QueryTransactions returns every transaction the address sent or
// received, ordered by timestamp descending.
func (s *State) QueryTransactions(ctx context.Context, address string) ([]database.Tx, error) {
	trans, err := s.storage.TransByAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("loading transactions for %s: %w", address, err)
	}

	return trans, nil
}

// QueryTranByHash returns the transaction stored under the specified
// hash.
func (s *State) QueryTranByHash(ctx context.Context, hash string) (database.Tx, error) {
	tx, err := s.storage.TranByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return database.Tx{}, ErrTranNotFound
		}
		return database.Tx{}, fmt.Errorf("loading transaction %s: %w", hash, err)
	}

	return tx, nil
}
