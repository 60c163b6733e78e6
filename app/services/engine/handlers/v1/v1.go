// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/mycoinlabs/mycoin/app/services/engine/handlers/v1/trangrp"
	"github.com/mycoinlabs/mycoin/app/services/engine/handlers/v1/walletgrp"
	"github.com/mycoinlabs/mycoin/foundation/events"
	"github.com/mycoinlabs/mycoin/foundation/ledger/state"
	"github.com/mycoinlabs/mycoin/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log   *zap.SugaredLogger
	State *state.State
	Evts  *events.Events
}

// Routes binds all the version 1 routes.
func Routes(app *web.App, cfg Config) {
	wgh := walletgrp.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
	}

	app.Handle(http.MethodPost, version, "/wallet/create", wgh.Create)
	app.Handle(http.MethodPost, version, "/wallet/access", wgh.Access)
	app.Handle(http.MethodGet, version, "/wallet/balance/:address", wgh.Balance)

	tgh := trangrp.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
		Evts:  cfg.Evts,
	}

	app.Handle(http.MethodGet, version, "/genesis", tgh.Genesis)
	app.Handle(http.MethodPost, version, "/tx/send", tgh.Send)
	app.Handle(http.MethodGet, version, "/tx/list/:address", tgh.List)
	app.Handle(http.MethodGet, version, "/tx/hash/:hash", tgh.ByHash)
	app.Handle(http.MethodGet, version, "/events", tgh.Events)
}
