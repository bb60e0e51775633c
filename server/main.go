package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/krelinga/folder-workflows/internal"
	"github.com/krelinga/folder-workflows/internal/fwlog"
	"github.com/krelinga/folder-workflows/internal/fwmetrics"
)

func main() {
	if err := mainImpl(); err != nil {
		log.Fatal(err)
	}
}

func mainImpl() error {
	if err := internal.LoadDotEnv(); err != nil {
		return err
	}
	config := internal.NewServerConfigFromEnv()

	logger, err := fwlog.New(config.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Create Temporal client
	temporalClient, err := client.Dial(client.Options{
		HostPort: config.Temporal.HostPort(),
		Logger:   fwlog.Temporal(logger),
	})
	if err != nil {
		return fmt.Errorf("failed to create Temporal client: %w", err)
	}
	defer temporalClient.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := fwmetrics.New(registry)

	// Create server with data root
	srv, err := NewServer(temporalClient, config.DataRoot, metrics, registry)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Start HTTP server
	addr := fmt.Sprintf(":%d", config.Port)
	logger.Info("Starting server", zap.String("addr", addr), zap.String("data_root", config.DataRoot))
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
