package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mycoinlabs/mycoin/foundation/ledger/database"
	"github.com/mycoinlabs/mycoin/foundation/ledger/keys"
)

// CreatedWallet is returned from CreateWallet with the credentials the
// caller must keep. The secret is the only way to spend from the wallet
// and is never stored.
type CreatedWallet struct {
	Address string
	Secret  string
}

// CreateWallet derives a new wallet from the provided secret and persists
// it with the genesis opening balance. If no secret is provided a fresh
// random one is generated first.
func (s *State) CreateWallet(ctx context.Context, secret string) (CreatedWallet, error) {
	if secret == "" {
		var err error
		if secret, err = keys.GenerateSecret(); err != nil {
			return CreatedWallet{}, fmt.Errorf("generating secret: %w", err)
		}
	}

	wallet := database.Wallet{
		Address:       keys.DeriveAddress(secret),
		PublicKeyHash: keys.PublicKeyHash(secret),
		Balance:       s.genesis.OpeningBalance,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.storage.PutWallet(ctx, wallet); err != nil {
		return CreatedWallet{}, fmt.Errorf("persisting wallet: %w", err)
	}

	s.evHandler("state: CreateWallet: address[%s]", wallet.Address)

	return CreatedWallet{Address: wallet.Address, Secret: secret}, nil
}

// AccessWallet resolves the wallet controlled by the specified secret.
// The address is recomputed from the secret on every call; nothing maps
// secrets to addresses in storage.
func (s *State) AccessWallet(ctx context.Context, secret string) (string, error) {
	address := keys.DeriveAddress(secret)

	if _, err := s.storage.GetWallet(ctx, address); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return "", ErrWalletNotFound
		}
		return "", fmt.Errorf("looking up wallet %s: %w", address, err)
	}

	return address, nil
}
