package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mycoinlabs/mycoin/foundation/ledger/database"
	"github.com/mycoinlabs/mycoin/foundation/ledger/keys"
	"github.com/shopspring/decimal"
)

// Receipt is returned from SendTransaction once the transfer has been
// sealed into a block and committed.
type Receipt struct {
	TranHash    string
	BlockHash   string
	BlockNumber uint64
}

// SendTransaction runs one end to end transfer: validate funds, persist
// the pending transaction, mine a block sealing it, link the block to the
// chain and commit the balance movements. The whole sequence runs under
// the single writer lock, which covers the required serialization of the
// read tip, mine, append sequence. Validation failures abort before
// anything is written.
func (s *State) SendTransaction(ctx context.Context, from string, to string, amount decimal.Decimal, secret string) (Receipt, error) {
	if !amount.IsPositive() {
		return Receipt{}, ErrInvalidAmount
	}

	// The secret is the sole spending authorization. It must derive the
	// sending address.
	if keys.DeriveAddress(secret) != from {
		return Receipt{}, ErrNotAuthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Validating.
	sender, err := s.storage.GetWallet(ctx, from)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return Receipt{}, ErrWalletNotFound
		}
		return Receipt{}, fmt.Errorf("loading sender wallet %s: %w", from, err)
	}

	if _, err := s.storage.GetWallet(ctx, to); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return Receipt{}, ErrRecipientNotFound
		}
		return Receipt{}, fmt.Errorf("loading recipient wallet %s: %w", to, err)
	}

	total := amount.Add(s.genesis.TransactionFee)
	if sender.Balance.LessThan(total) {
		return Receipt{}, ErrInsufficientBalance
	}

	// Building: persist the pending transaction before mining so a crash
	// after this point still leaves an auditable record.
	tx := database.NewTx(from, to, amount, s.genesis.TransactionFee, time.Now())
	if err := s.storage.PutTran(ctx, tx); err != nil {
		return Receipt{}, fmt.Errorf("persisting pending transaction: %w", err)
	}

	s.evHandler("state: SendTransaction: pending: tx[%s] from[%s] to[%s] amount[%s]", tx.Hash, from, to, amount)

	// Mining: seal the transaction into the next block. An empty chain
	// means this will be block one linked to the zero hash.
	prevBlockHash := database.ZeroHash
	blockNumber := uint64(1)

	tip, err := s.storage.GetChainTip(ctx)
	switch {
	case err == nil:
		prevBlockHash = tip.Hash
		blockNumber = tip.Number + 1
	case errors.Is(err, database.ErrNotFound):
	default:
		return Receipt{}, fmt.Errorf("reading chain tip: %w", err)
	}

	hash, nonce, err := database.POW(ctx, prevBlockHash, []database.Tx{tx}, s.genesis.Difficulty, s.evHandler)
	if err != nil {
		return Receipt{}, fmt.Errorf("mining block %d: %w", blockNumber, err)
	}

	// Linking.
	block := database.Block{
		Number:        blockNumber,
		Hash:          hash,
		PrevBlockHash: prevBlockHash,
		TransHashes:   []string{tx.Hash},
		TimeStamp:     time.Now().UTC(),
		Nonce:         nonce,
		Difficulty:    s.genesis.Difficulty,
	}
	if err := s.storage.PutBlock(ctx, block); err != nil {
		return Receipt{}, fmt.Errorf("linking block %d: %w", blockNumber, err)
	}

	// Committing: debit the sender first. The storage re-checks funds
	// atomically, so even a deployment with writers outside this lock
	// cannot overdraw the account.
	if err := s.storage.AdjustBalance(ctx, from, total.Neg()); err != nil {
		if errors.Is(err, database.ErrInsufficientFunds) {
			return Receipt{}, ErrInsufficientBalance
		}
		return Receipt{}, fmt.Errorf("debiting sender %s: %w", from, err)
	}

	if err := s.storage.AdjustBalance(ctx, to, amount); err != nil {
		return Receipt{}, fmt.Errorf("crediting recipient %s: %w", to, err)
	}

	if err := s.storage.UpdateTranStatus(ctx, tx.Hash, database.StatusConfirmed, blockNumber); err != nil {
		return Receipt{}, fmt.Errorf("confirming transaction %s: %w", tx.Hash, err)
	}

	s.evHandler("state: SendTransaction: confirmed: tx[%s] blk[%d] hash[%s]", tx.Hash, blockNumber, hash)

	receipt := Receipt{
		TranHash:    tx.Hash,
		BlockHash:   hash,
		BlockNumber: blockNumber,
	}

	return receipt, nil
}
