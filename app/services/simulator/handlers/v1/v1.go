// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/availsim/dassim/app/services/simulator/handlers/v1/simgrp"
	"github.com/availsim/dassim/business/core/sweep"
	"github.com/availsim/dassim/foundation/events"
	"github.com/availsim/dassim/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log  *zap.SugaredLogger
	Orc  *sweep.Orchestrator
	Evts *events.Events
}

// Routes binds all the version 1 routes.
func Routes(app *web.App, cfg Config) {
	sim := simgrp.Handlers{
		Log:  cfg.Log,
		Orc:  cfg.Orc,
		Evts: cfg.Evts,
	}

	app.Handle(http.MethodGet, version, "/sweep/status", sim.Status)
	app.Handle(http.MethodGet, version, "/events", sim.Events)
	app.Handle(http.MethodPost, version, "/experiment/run", sim.RunExperiment)
}
