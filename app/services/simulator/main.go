// This program runs data availability sampling sweeps and serves their
// progress while they execute.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/availsim/dassim/app/services/simulator/handlers"
	"github.com/availsim/dassim/business/core/sweep"
	"github.com/availsim/dassim/foundation/das/experiment"
	"github.com/availsim/dassim/foundation/events"
	"github.com/availsim/dassim/foundation/logger"
	"github.com/availsim/dassim/foundation/report"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {

	// Construct the application logger.
	log, err := logger.New("SIMULATOR")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Web struct {
			ReadTimeout     time.Duration `conf:"default:5s"`
			WriteTimeout    time.Duration `conf:"default:10s"`
			IdleTimeout     time.Duration `conf:"default:120s"`
			ShutdownTimeout time.Duration `conf:"default:20s"`
			APIHost         string        `conf:"default:0.0.0.0:8080"`
		}
		Sweep struct {
			Preset        string `conf:"default:small-grids,help:small-grids block-sampling or none"`
			N             int    `conf:"default:256"`
			TargetSamples int    `conf:"default:1024"`
			Trials        int    `conf:"default:500"`
			Workers       int    `conf:"default:0,help:0 means one worker per CPU"`
			MasterSeed    uint64 `conf:"default:1"`
			Output        string `conf:"default:samples.csv"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "data availability sampling simulator",
		},
	}

	// Parse will set the defaults and then look for any overriding values
	// in environment variables and command line flags.
	const prefix = "SIMULATOR"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// =========================================================================
	// App Starting

	log.Infow("starting service", "version", build)
	defer log.Infow("shutdown complete")

	// Display the current configuration to the logs.
	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "config", out)

	// =========================================================================
	// Sweep Support

	configs, err := buildSweep(cfg.Sweep.Preset, cfg.Sweep.N, cfg.Sweep.TargetSamples)
	if err != nil {
		return fmt.Errorf("building sweep: %w", err)
	}
	log.Infow("startup", "status", "sweep constructed", "preset", cfg.Sweep.Preset, "configs", len(configs))

	// The core packages accept a function of this signature to allow the
	// application to observe trial progress. These raw messages are sent to
	// any websocket client that is connected into the system.
	evts := events.New()
	defer evts.Shutdown()

	orc := sweep.NewOrchestrator(configs, sweep.OrchestratorConfig{
		Trials:     cfg.Sweep.Trials,
		Workers:    cfg.Sweep.Workers,
		MasterSeed: cfg.Sweep.MasterSeed,
		EvHandler:  evts.Send,
	})

	// =========================================================================
	// Service Start/Stop Support

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	defer sweepCancel()

	sweepErrors := make(chan error, 1)
	go func() {
		rows, err := orc.Run(sweepCtx)
		if err != nil {
			sweepErrors <- fmt.Errorf("running sweep: %w", err)
			return
		}

		if len(rows) > 0 {
			if err := writeReport(cfg.Sweep.Output, rows); err != nil {
				sweepErrors <- fmt.Errorf("writing report: %w", err)
				return
			}
			log.Infow("sweep complete", "rows", len(rows), "output", cfg.Sweep.Output)
		}
	}()

	// =========================================================================
	// Start API Service

	log.Infow("startup", "status", "initializing API support")

	mux := handlers.APIMux(handlers.MuxConfig{
		Shutdown: shutdown,
		Log:      log,
		Orc:      orc,
		Evts:     evts,
	})

	api := http.Server{
		Addr:         cfg.Web.APIHost,
		Handler:      mux,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Infow("startup", "status", "api router started", "host", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case err := <-sweepErrors:
		return err

	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		// Stop handing out new trial work before taking down the API.
		sweepCancel()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// buildSweep expands the configured preset into experiment configurations.
func buildSweep(preset string, n int, targetSamples int) ([]experiment.Config, error) {
	switch preset {
	case "small-grids":
		return sweep.SmallGrids().Build()

	case "block-sampling":
		var clients []int
		for c := 10; c <= 300; c += 20 {
			clients = append(clients, c)
		}
		return sweep.BlockSampling(n, targetSamples, clients)

	case "none":
		return nil, nil
	}

	return nil, fmt.Errorf("preset %q does not exist", preset)
}

// writeReport serializes the sweep rows to a CSV file.
func writeReport(path string, rows []report.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := report.NewWriter(f)
	if err != nil {
		return err
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Flush()
}
