// Package handlers manages the different versions of the API.
package handlers

import (
	"net/http"
	"os"

	v1 "github.com/availsim/dassim/app/services/simulator/handlers/v1"
	"github.com/availsim/dassim/business/core/sweep"
	"github.com/availsim/dassim/business/web/v1/mid"
	"github.com/availsim/dassim/foundation/events"
	"github.com/availsim/dassim/foundation/web"
	"go.uber.org/zap"
)

// MuxConfig contains all the mandatory systems required by handlers.
type MuxConfig struct {
	Shutdown chan os.Signal
	Log      *zap.SugaredLogger
	Orc      *sweep.Orchestrator
	Evts     *events.Events
}

// APIMux constructs a http.Handler with all application routes defined.
func APIMux(cfg MuxConfig) http.Handler {

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(
		cfg.Shutdown,
		mid.Logger(cfg.Log),
		mid.Errors(cfg.Log),
		mid.Cors("*"),
		mid.Panics(),
	)

	// Load the v1 routes.
	v1.Routes(app, v1.Config{
		Log:  cfg.Log,
		Orc:  cfg.Orc,
		Evts: cfg.Evts,
	})

	return app
}
