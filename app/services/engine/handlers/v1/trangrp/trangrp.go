// Package trangrp maintains the group of transaction endpoints.
package trangrp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mycoinlabs/mycoin/business/web/errs"
	"github.com/mycoinlabs/mycoin/foundation/events"
	"github.com/mycoinlabs/mycoin/foundation/ledger/state"
	"github.com/mycoinlabs/mycoin/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of transaction endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
	WS    websocket.Upgrader
	Evts  *events.Events
}

// Genesis returns the genesis information.
func (h Handlers) Genesis(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	gen := h.State.Genesis()
	return web.Respond(ctx, w, gen, http.StatusOK)
}

// Send executes a full transfer: validation, mining and commit. The
// response carries the receipt for the sealed block.
func (h Handlers) Send(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var req sendRequest
	if err := web.Decode(r, &req); err != nil {
		return fmt.Errorf("unable to decode payload: %w", err)
	}

	h.Log.Infow("send tran", "traceid", v.TraceID, "from", req.From, "to", req.To, "amount", req.Amount)

	receipt, err := h.State.SendTransaction(ctx, req.From, req.To, req.Amount, req.Secret)
	if err != nil {
		switch {
		case errors.Is(err, state.ErrInvalidAmount), errors.Is(err, state.ErrInsufficientBalance):
			return errs.NewTrusted(err, http.StatusBadRequest)
		case errors.Is(err, state.ErrWalletNotFound), errors.Is(err, state.ErrRecipientNotFound):
			return errs.NewTrusted(err, http.StatusNotFound)
		case errors.Is(err, state.ErrNotAuthorized):
			return errs.NewTrusted(err, http.StatusUnauthorized)
		}
		return fmt.Errorf("sending transaction: %w", err)
	}

	resp := sendReceipt{
		TranHash:    receipt.TranHash,
		BlockHash:   receipt.BlockHash,
		BlockNumber: receipt.BlockNumber,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// List returns every transaction the address sent or received, newest
// first.
func (h Handlers) List(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	address := web.Param(r, "address")

	trans, err := h.State.QueryTransactions(ctx, address)
	if err != nil {
		return fmt.Errorf("querying transactions: %w", err)
	}

	return web.Respond(ctx, w, toTrans(trans), http.StatusOK)
}

// ByHash returns the transaction stored under the specified hash.
func (h Handlers) ByHash(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	hash := web.Param(r, "hash")

	tx, err := h.State.QueryTranByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, state.ErrTranNotFound) {
			return errs.NewTrusted(err, http.StatusNotFound)
		}
		return fmt.Errorf("querying transaction: %w", err)
	}

	return web.Respond(ctx, w, toTran(tx), http.StatusOK)
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}
