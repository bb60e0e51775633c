package folderworkflows

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"golang.org/x/mod/modfile"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap/zaptest"

	"github.com/krelinga/folder-workflows/internal"
	"github.com/krelinga/folder-workflows/internal/fwactivity"
	"github.com/krelinga/folder-workflows/internal/fwfolder"
	"github.com/krelinga/folder-workflows/internal/fwlog"
	"github.com/krelinga/folder-workflows/internal/workflows/fwbatch"
	"github.com/krelinga/folder-workflows/internal/workflows/fwperiodic"
)

func readModfile(t *testing.T) *modfile.File {
	data, err := os.ReadFile("go.mod")
	if err != nil {
		t.Fatalf("failed to read go.mod: %v", err)
	}

	modFile, err := modfile.Parse("go.mod", data, nil)
	if err != nil {
		t.Fatalf("failed to parse go.mod: %v", err)
	}

	return modFile
}

func temporalSDKVersion(t *testing.T) string {
	modFile := readModfile(t)

	for _, req := range modFile.Require {
		if req.Mod.Path == "go.temporal.io/sdk" {
			return req.Mod.Version
		}
	}

	t.Fatal("go.temporal.io/sdk not found in go.mod")
	return ""
}

func TestEnd2End(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}
	t.Logf("Using temporal sdk version: %s", temporalSDKVersion(t))

	dataRoot := filepath.Join(t.TempDir(), "data")

	ctx := context.Background()
	temporalClient := setup(t, ctx)

	// Run a worker in-process so activities touch the local data root.
	deps := &fwactivity.Deps{Logger: zaptest.NewLogger(t)}
	w := worker.New(temporalClient, internal.TaskQueue, worker.Options{})
	w.RegisterWorkflow(fwbatch.Workflow)
	w.RegisterWorkflow(fwperiodic.Workflow)
	w.RegisterActivity(deps)
	if err := w.Start(); err != nil {
		t.Fatalf("failed to start worker: %v", err)
	}
	t.Cleanup(w.Stop)

	// Batch workflows.
	batches := []fwbatch.Params{
		{Kind: fwbatch.KindRange, Start: 2020, End: 2023},
		{
			Kind:       fwbatch.KindList,
			Names:      []string{"Final Deliverables"},
			Transforms: fwfolder.Transforms{Lowercase: true, ReplaceSpaces: true, AddDate: true},
			Date:       time.Date(2025, time.January, 24, 0, 0, 0, 0, time.UTC),
		},
		{Kind: fwbatch.KindPrefixed, Names: []string{"csv", "excel", "json"}, Prefix: "data-"},
	}
	for _, params := range batches {
		params.DataRoot = dataRoot
		run, err := temporalClient.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
			ID:        fmt.Sprintf("%s-%s", params.Kind, uuid.NewString()),
			TaskQueue: internal.TaskQueue,
		}, fwbatch.Workflow, params)
		if err != nil {
			t.Fatalf("failed to start %s workflow: %v", params.Kind, err)
		}
		var result fwbatch.Result
		if err := run.Get(ctx, &result); err != nil {
			t.Fatalf("%s workflow failed: %v", params.Kind, err)
		}
		t.Logf("%s workflow created %v", params.Kind, result.Folders)
	}

	// Periodic workflow.
	workflowID := uuid.NewString()
	run, err := temporalClient.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: internal.TaskQueue,
	}, fwperiodic.Workflow, fwperiodic.Params{DataRoot: dataRoot, IntervalSeconds: 1, MaxCount: 3})
	if err != nil {
		t.Fatalf("failed to start periodic workflow: %v", err)
	}
	var state fwperiodic.State
	if err := run.Get(ctx, &state); err != nil {
		t.Fatalf("periodic workflow failed: %v", err)
	}
	if !state.Done || len(state.Created) != 3 {
		t.Fatalf("unexpected periodic state: %+v", state)
	}

	// Query still works on the closed workflow.
	resp, err := temporalClient.QueryWorkflow(ctx, workflowID, "", fwperiodic.QueryGetState)
	if err != nil {
		t.Fatalf("failed to query periodic workflow: %v", err)
	}
	if err := resp.Get(&state); err != nil {
		t.Fatalf("failed to decode periodic state: %v", err)
	}

	entries, err := os.ReadDir(dataRoot)
	if err != nil {
		t.Fatalf("failed to read data root: %v", err)
	}
	var got []string
	for _, entry := range entries {
		got = append(got, entry.Name())
	}
	sort.Strings(got)
	want := []string{
		"2020", "2021", "2022", "2023",
		"data-csv", "data-excel", "data-json",
		"final_deliverables_20250124",
		"folder_0", "folder_1", "folder_2",
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected folders:\n got: %v\nwant: %v", got, want)
	}
}

// dumpContainerLogs reads and logs the last 20 lines of output from a container
func dumpContainerLogs(t *testing.T, ctx context.Context, container testcontainers.Container, name string) {
	logs, err := container.Logs(ctx)
	if err != nil {
		t.Logf("failed to get %s container logs: %v", name, err)
		return
	}
	defer logs.Close()

	logBytes, err := io.ReadAll(logs)
	if err != nil {
		t.Logf("failed to read %s container logs: %v", name, err)
		return
	}

	// Split logs by newlines and get the last 20 lines
	lines := strings.Split(strings.TrimSpace(string(logBytes)), "\n")
	startIdx := 0
	if len(lines) > 20 {
		startIdx = len(lines) - 20
	}
	lastLines := strings.Join(lines[startIdx:], "\n")

	t.Logf("=== %s container logs (last 20 lines) ===\n%s", name, lastLines)
}

// setup starts postgres and a Temporal server and returns a client connected
// to it.
func setup(t *testing.T, ctx context.Context) client.Client {
	net, err := network.New(ctx)
	if err != nil {
		t.Fatalf("failed to create network: %v", err)
	}
	t.Cleanup(func() { _ = net.Remove(ctx) })
	networkName := net.Name

	const dbUser = "postgres"
	const dbPassword = "postgres"
	postgresReq := testcontainers.ContainerRequest{
		Image:        "postgres:16",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     dbUser,
			"POSTGRES_PASSWORD": dbPassword,
		},
		Networks:       []string{networkName},
		NetworkAliases: map[string][]string{networkName: {"workflowspostgres"}},
		WaitingFor:     wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: postgresReq,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	testcontainers.CleanupContainer(t, postgresContainer)
	t.Cleanup(func() {
		dumpContainerLogs(t, ctx, postgresContainer, "postgres")
	})

	// Start Temporal server with auto-setup (bootstraps postgres schema)
	temporalReq := testcontainers.ContainerRequest{
		Image: "temporalio/auto-setup:latest",
		Env: map[string]string{
			"DB":             "postgres12",
			"DB_PORT":        "5432",
			"POSTGRES_USER":  dbUser,
			"POSTGRES_PWD":   dbPassword,
			"POSTGRES_SEEDS": "workflowspostgres",
		},
		ExposedPorts:   []string{"7233/tcp"},
		Networks:       []string{networkName},
		NetworkAliases: map[string][]string{networkName: {"temporal"}},
		WaitingFor:     wait.ForLog("Temporal server started.").WithStartupTimeout(2 * time.Minute),
	}
	temporalContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: temporalReq,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start temporal container: %v", err)
	}
	testcontainers.CleanupContainer(t, temporalContainer)
	t.Cleanup(func() {
		dumpContainerLogs(t, ctx, temporalContainer, "temporal")
	})

	host, err := temporalContainer.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get temporal container host: %v", err)
	}
	port, err := temporalContainer.MappedPort(ctx, "7233")
	if err != nil {
		t.Fatalf("failed to get temporal container port: %v", err)
	}

	temporalClient, err := client.Dial(client.Options{
		HostPort: fmt.Sprintf("%s:%s", host, port.Port()),
		Logger:   fwlog.Temporal(zaptest.NewLogger(t)),
	})
	if err != nil {
		t.Fatalf("failed to create Temporal client: %v", err)
	}
	t.Cleanup(temporalClient.Close)

	return temporalClient
}
