// Package simgrp maintains the group of handlers for simulation access.
package simgrp

import (
	"context"
	"net/http"
	"time"

	"github.com/availsim/dassim/business/core/sweep"
	v1 "github.com/availsim/dassim/business/web/v1"
	"github.com/availsim/dassim/foundation/das/experiment"
	"github.com/availsim/dassim/foundation/das/sample"
	"github.com/availsim/dassim/foundation/events"
	"github.com/availsim/dassim/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of simulation endpoints.
type Handlers struct {
	Log  *zap.SugaredLogger
	Orc  *sweep.Orchestrator
	WS   websocket.Upgrader
	Evts *events.Events
}

// Events handles a web socket to provide trial progress events to a client.
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

// Status returns how far along the configured sweep is.
func (h Handlers) Status(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	completed, total := h.Orc.Progress()

	status := sweepStatus{
		Completed: completed,
		Total:     total,
		Done:      total > 0 && completed == total,
	}

	return web.Respond(ctx, w, status, http.StatusOK)
}

// RunExperiment executes a single ad hoc configuration and returns its
// summary. Heavy sweeps belong to the configured run; this endpoint exists
// for quick what-if checks.
func (h Handlers) RunExperiment(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var ne newExperiment
	if err := web.Decode(r, &ne); err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	st, err := sample.Retrieve(ne.Strategy, ne.BoxWidth, ne.BoxHeight)
	if err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	cfg, err := experiment.New(ne.N, ne.Dims, ne.Clients, ne.PercentCensored, ne.Samples, st)
	if err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	trials := ne.Trials
	if trials <= 0 {
		trials = 100
	}

	h.Log.Infow("adhoc experiment", "traceid", v.TraceID, "n", cfg.N, "dims", cfg.Dims, "trials", trials)

	runner, err := experiment.NewRunner(cfg, experiment.RunnerConfig{
		MasterSeed: ne.Seed,
		EvHandler:  h.Evts.Send,
	})
	if err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	sum := runner.Run(trials)
	return web.Respond(ctx, w, sum, http.StatusOK)
}
