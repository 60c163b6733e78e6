// Package memory implements the ledger storage contract in memory. It is
// the reference Storage implementation used by the engine service and by
// tests; production deployments swap in a document store behind the same
// interface.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mycoinlabs/mycoin/foundation/ledger/database"
	"github.com/shopspring/decimal"
)

// Memory represents the storage implementation for maintaining the ledger
// in memory. This implements the database.Storage interface.
type Memory struct {
	mu      sync.RWMutex
	wallets map[string]database.Wallet
	trans   map[string]database.Tx
	order   []string // Transaction hashes in insertion order.
	blocks  []database.Block
}

// New constructs a Memory value for use.
func New() (*Memory, error) {
	m := Memory{
		wallets: make(map[string]database.Wallet),
		trans:   make(map[string]database.Tx),
	}

	return &m, nil
}

// Close in this implementation has nothing to do since everything
// is in memory.
func (m *Memory) Close() error {
	return nil
}

// GetWallet returns the wallet stored under the specified address.
func (m *Memory) GetWallet(ctx context.Context, address string) (database.Wallet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	wallet, exists := m.wallets[address]
	if !exists {
		return database.Wallet{}, database.ErrNotFound
	}

	return wallet, nil
}

// PutWallet stores a new wallet. Wallets are insert only; overwriting an
// existing address is a caller bug.
func (m *Memory) PutWallet(ctx context.Context, wallet database.Wallet) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.wallets[wallet.Address]; exists {
		return fmt.Errorf("wallet %s already exists", wallet.Address)
	}

	m.wallets[wallet.Address] = wallet

	return nil
}

// AdjustBalance applies the delta to the wallet balance as one atomic
// read-modify-write. A delta that would take the balance below zero is
// rejected without changing the wallet.
func (m *Memory) AdjustBalance(ctx context.Context, address string, delta decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	wallet, exists := m.wallets[address]
	if !exists {
		return database.ErrNotFound
	}

	balance := wallet.Balance.Add(delta)
	if balance.IsNegative() {
		return database.ErrInsufficientFunds
	}

	wallet.Balance = balance
	m.wallets[address] = wallet

	return nil
}

// PutTran stores a transaction under its hash.
func (m *Memory) PutTran(ctx context.Context, tx database.Tx) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.trans[tx.Hash]; !exists {
		m.order = append(m.order, tx.Hash)
	}
	m.trans[tx.Hash] = tx

	return nil
}

// UpdateTranStatus moves a stored transaction to the specified status and
// records the number of the block that sealed it.
func (m *Memory) UpdateTranStatus(ctx context.Context, hash string, status database.Status, blockNumber uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx, exists := m.trans[hash]
	if !exists {
		return database.ErrNotFound
	}

	tx.Status = status
	tx.BlockNumber = blockNumber
	m.trans[hash] = tx

	return nil
}

// GetChainTip returns the highest numbered block currently stored.
func (m *Memory) GetChainTip(ctx context.Context) (database.Block, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.blocks) == 0 {
		return database.Block{}, database.ErrNotFound
	}

	return m.blocks[len(m.blocks)-1], nil
}

// PutBlock appends a block to the chain. Blocks must arrive in order with
// no gaps, starting at block number one.
func (m *Memory) PutBlock(ctx context.Context, block database.Block) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if block.Number != uint64(len(m.blocks))+1 {
		return fmt.Errorf("block %d is out of order, expecting %d", block.Number, len(m.blocks)+1)
	}

	m.blocks = append(m.blocks, block)

	return nil
}

// TransByAddress returns every transaction the address sent or received,
// ordered by timestamp descending.
func (m *Memory) TransByAddress(ctx context.Context, address string) ([]database.Tx, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var trans []database.Tx
	for i := len(m.order) - 1; i >= 0; i-- {
		tx := m.trans[m.order[i]]
		if tx.FromID == address || tx.ToID == address {
			trans = append(trans, tx)
		}
	}

	// Newest insertions already lead; the stable sort only reorders
	// entries whose timestamps actually differ.
	sort.SliceStable(trans, func(i, j int) bool {
		return trans[i].TimeStamp.After(trans[j].TimeStamp)
	})

	return trans, nil
}

// TranByHash returns the transaction stored under the specified hash.
func (m *Memory) TranByHash(ctx context.Context, hash string) (database.Tx, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tx, exists := m.trans[hash]
	if !exists {
		return database.Tx{}, database.ErrNotFound
	}

	return tx, nil
}

// Blocks returns a copy of the chain in block number order. This is not
// part of the Storage contract; tests use it to check linkage.
func (m *Memory) Blocks() []database.Block {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blocks := make([]database.Block, len(m.blocks))
	copy(blocks, m.blocks)

	return blocks
}
