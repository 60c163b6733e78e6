// Package state is the core API for the ledger engine and implements all
// the business rules and processing for wallets, transfers and blocks.
package state

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mycoinlabs/mycoin/foundation/ledger/database"
	"github.com/mycoinlabs/mycoin/foundation/ledger/genesis"
)

// EventHandler defines a function that is called when events occur in the
// processing of transfers and blocks.
type EventHandler func(v string, args ...any)

// =============================================================================

// Config represents the configuration required to start the engine.
type Config struct {
	Genesis   genesis.Genesis
	Storage   database.Storage
	EvHandler EventHandler
}

// State manages the ledger engine.
type State struct {
	genesis   genesis.Genesis
	storage   database.Storage
	evHandler EventHandler

	// mu serializes the transfer write path. One writer at a time owns
	// the read tip, mine, append sequence so two transfers can never
	// claim the same block number or debit against a stale balance.
	mu sync.Mutex
}

// New constructs the engine state for transfer processing.
func New(cfg Config) (*State, error) {
	if cfg.Storage == nil {
		return nil, errors.New("storage is required")
	}
	if cfg.Genesis.Difficulty < 1 {
		return nil, fmt.Errorf("difficulty must be at least 1, got %d", cfg.Genesis.Difficulty)
	}
	if cfg.Genesis.TransactionFee.IsNegative() {
		return nil, fmt.Errorf("transaction fee cannot be negative, got %s", cfg.Genesis.TransactionFee)
	}

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	state := State{
		genesis:   cfg.Genesis,
		storage:   cfg.Storage,
		evHandler: ev,
	}

	return &state, nil
}

// Shutdown cleanly brings the engine down.
func (s *State) Shutdown() error {
	return s.storage.Close()
}

// Genesis returns a copy of the chain parameters.
func (s *State) Genesis() genesis.Genesis {
	return s.genesis
}
