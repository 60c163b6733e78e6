// Package walletgrp maintains the group of wallet endpoints.
package walletgrp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mycoinlabs/mycoin/business/web/errs"
	"github.com/mycoinlabs/mycoin/foundation/ledger/state"
	"github.com/mycoinlabs/mycoin/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of wallet endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
}

// Create derives a new wallet and funds it with the opening balance. The
// request body is optional; when no secret is provided a random one is
// generated and returned to the caller exactly once.
func (h Handlers) Create(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var req createRequest
	if r.ContentLength > 0 {
		if err := web.Decode(r, &req); err != nil {
			return fmt.Errorf("unable to decode payload: %w", err)
		}
	}

	created, err := h.State.CreateWallet(ctx, req.Secret)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	h.Log.Infow("wallet created", "traceid", v.TraceID, "address", created.Address)

	resp := createdWallet{
		Address: created.Address,
		Secret:  created.Secret,
	}

	return web.Respond(ctx, w, resp, http.StatusCreated)
}

// Access resolves the wallet controlled by the provided secret. The
// address is derived from the secret, never looked up by it.
func (h Handlers) Access(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req accessRequest
	if err := web.Decode(r, &req); err != nil {
		return fmt.Errorf("unable to decode payload: %w", err)
	}

	address, err := h.State.AccessWallet(ctx, req.Secret)
	if err != nil {
		if errors.Is(err, state.ErrWalletNotFound) {
			return errs.NewTrusted(err, http.StatusNotFound)
		}
		return fmt.Errorf("accessing wallet: %w", err)
	}

	resp := accessedWallet{
		Address: address,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Balance returns the balance for the specified address along with its
// most recent transactions tagged by direction.
func (h Handlers) Balance(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	address := web.Param(r, "address")

	bal, err := h.State.QueryBalance(ctx, address)
	if err != nil {
		if errors.Is(err, state.ErrWalletNotFound) {
			return errs.NewTrusted(err, http.StatusNotFound)
		}
		return fmt.Errorf("querying balance: %w", err)
	}

	return web.Respond(ctx, w, toBalance(bal), http.StatusOK)
}
