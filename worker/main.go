package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"

	"github.com/krelinga/folder-workflows/internal"
	"github.com/krelinga/folder-workflows/internal/fwactivity"
	"github.com/krelinga/folder-workflows/internal/fwlog"
	"github.com/krelinga/folder-workflows/internal/fwmetrics"
	"github.com/krelinga/folder-workflows/internal/workflows/fwbatch"
	"github.com/krelinga/folder-workflows/internal/workflows/fwperiodic"
)

func main() {
	if err := mainImpl(); err != nil {
		log.Fatal(err)
	}
}

func mainImpl() error {
	// Load configuration from environment
	if err := internal.LoadDotEnv(); err != nil {
		return err
	}
	config := internal.NewWorkerConfigFromEnv()

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

	w := newWorker(temporalClient, &fwactivity.Deps{
		Logger:   logger,
		Observer: metrics,
	})

	// Serve metrics
	metricsAddr := fmt.Sprintf(":%d", config.MetricsPort)
	go func() {
		err := http.ListenAndServe(metricsAddr, fwmetrics.Handler(registry))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server stopped", zap.Error(err))
		}
	}()

	// Start worker
	logger.Info("Starting worker on task queue: "+internal.TaskQueue, zap.String("metrics_addr", metricsAddr))
	if err := w.Run(worker.InterruptCh()); err != nil {
		return fmt.Errorf("failed to start worker: %w", err)
	}

	return nil
}

// newWorker registers every workflow and activity on the task queue.
func newWorker(c client.Client, deps *fwactivity.Deps) worker.Worker {
	w := worker.New(c, internal.TaskQueue, worker.Options{})

	// Register workflows
	w.RegisterWorkflow(fwbatch.Workflow)
	w.RegisterWorkflow(fwperiodic.Workflow)

	// Register activities
	w.RegisterActivity(deps)

	return w
}
