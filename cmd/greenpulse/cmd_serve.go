package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bhoomi2310/GreenPulse/internal/config"
	"github.com/bhoomi2310/GreenPulse/internal/handlers"
	"github.com/bhoomi2310/GreenPulse/internal/logger"
	"github.com/bhoomi2310/GreenPulse/internal/repository"
	"github.com/bhoomi2310/GreenPulse/internal/repository/db"
	"github.com/bhoomi2310/GreenPulse/internal/server"
	"github.com/bhoomi2310/GreenPulse/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	Long:  `Start the GreenPulse server: load or train the health classifier, then serve the dashboard API and the live WebSocket feed.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgDir)
	if err != nil {
		return err
	}
	log := logger.Get(cfg.Log.Level)

	// The artifact store is optional: a broken model DB means in-memory
	// training, never a dead dashboard.
	var store repository.ArtifactStore
	database, err := db.InitDB(cfg.Model.Path)
	if err != nil {
		log.Warnw("model store unavailable; continuing without persistence", "path", cfg.Model.Path, "err", err)
	} else {
		defer func() { _ = database.Close() }()
		store = repository.NewRepository(database).Artifacts
	}

	services, err := service.NewService(serviceOptions(cfg, store))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if services.Predictor.Load(ctx) {
		log.Infow("model artifact loaded", "path", cfg.Model.Path)
	} else {
		log.Infow("no usable model artifact; training",
			"samples", cfg.Model.TrainingSamples, "seed", cfg.Model.Seed)
		if err := services.Predictor.Train(ctx, cfg.Model.TrainingSamples, cfg.Model.Seed); err != nil {
			// The tree is fitted before persistence, so predictions still
			// work; only the artifact write can have failed here.
			log.Warnw("training finished with errors", "err", err)
		}
	}

	apiHandler := handlers.NewHandler(services, log)

	srv := &server.Server{}
	go func() {
		if err := srv.Run(cfg.Server.Port, apiHandler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
	log.Infow("dashboard listening", "port", cfg.Server.Port, "locations", len(cfg.Locations))

	waitForShutdown(srv, log)
	return nil
}

// serviceOptions maps file configuration onto service wiring.
func serviceOptions(cfg *config.Config, store repository.ArtifactStore) service.Options {
	return service.Options{
		Locations: cfg.Locations,
		Seed:      cfg.Simulation.Seed,
		Events: service.EventProfile{
			WateringPerDay:    cfg.Simulation.WateringPerDay,
			MaintenancePerDay: cfg.Simulation.MaintenancePerDay,
			WateringHalfLife:  cfg.Simulation.WateringHalfLife,
			MaintenanceWindow: cfg.Simulation.MaintenanceWindow,
		},
		Rules: service.Ruleset{
			LowMoisture: cfg.Rules.LowMoisture,
			HighLight:   cfg.Rules.HighLight,
			HumidityMin: cfg.Rules.HumidityMin,
			HumidityMax: cfg.Rules.HumidityMax,
		},
		Store: store,
	}
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
