package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newsner/newsner/config"
	"github.com/newsner/newsner/pkg/auth"
	"github.com/newsner/newsner/pkg/inference"
	"github.com/newsner/newsner/pkg/models"
	"github.com/newsner/newsner/pkg/nlp"
	"github.com/newsner/newsner/pkg/server"
	"github.com/newsner/newsner/pkg/telemetry"
)

const shutdownTimeout = 10 * time.Second

// run is the entrypoint for the newsner server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring newsner: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting newsner server version %s", config.VersionString)

	config.SetLogLevel(cfg)

	ctx := context.Background()
	shutdownTracing, err := telemetry.Setup(ctx, &cfg.Tracing)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %s", err)
	}

	appState, err := NewAppState(ctx, cfg)
	if err != nil {
		logMissingModels(cfg, err)
		os.Exit(1)
	}

	srv, err := server.Create(appState)
	if err != nil {
		log.Fatal(err)
	}

	setupSignalHandler(srv, shutdownTracing)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// NewAppState resolves both pipelines on the NLP server and wires them into
// the recognizer shared by every request.
func NewAppState(ctx context.Context, cfg *config.Config) (*models.AppState, error) {
	pipelines, err := loadPipelines(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &models.AppState{
		Recognizer: inference.New(pipelines[0], pipelines[1]),
		Config:     cfg,
	}, nil
}

func loadPipelines(ctx context.Context, cfg *config.Config) ([]models.Pipeline, error) {
	client := nlp.NewClient(&cfg.NLP, nil)
	return nlp.Load(ctx, client, nlp.LoadOptions{
		Names:      []string{cfg.NLP.SmallModel, cfg.NLP.LargeModel},
		MinVersion: cfg.NLP.MinModelVersion,
		Retries:    cfg.NLP.StartupAttempts,
	})
}

// logMissingModels explains how to install the pipelines the NLP server is missing.
func logMissingModels(cfg *config.Config, err error) {
	log.Errorf("Could not load NLP pipelines from %s: %s", cfg.NLP.ServerURL, err)
	if !errors.Is(err, models.ErrModelsNotFound) {
		return
	}
	log.Error("Install the required spaCy models on the NLP server:")
	for _, name := range []string{cfg.NLP.SmallModel, cfg.NLP.LargeModel} {
		log.Errorf("  python -m spacy download %s", name)
	}
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	switch {
	case showVersion:
		fmt.Println(config.VersionString)
		os.Exit(0)
	case dumpConfig:
		out, err := config.DumpYAML(cfg)
		if err != nil {
			log.Fatalf("Failed to dump config: %s", err)
		}
		fmt.Print(string(out))
		os.Exit(0)
	case generateKey:
		token, err := auth.GenerateJWT(cfg)
		if err != nil {
			log.Fatalf("Failed to generate token: %s", err)
		}
		fmt.Println(token)
		os.Exit(0)
	}
}

// setupSignalHandler shuts the server down and flushes pending spans on termination
func setupSignalHandler(srv *http.Server, shutdownTracing telemetry.ShutdownFunc) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		log.Info("Shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("Error shutting down server: %v", err)
		}
		if err := shutdownTracing(ctx); err != nil {
			log.Errorf("Error flushing traces: %v", err)
		}
	}()
}
