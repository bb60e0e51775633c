package fwperiodic

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/krelinga/folder-workflows/internal/fwactivity"
)

func newEnv() *testsuite.TestWorkflowEnvironment {
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	env.RegisterActivity(&fwactivity.Deps{})
	return env
}

func listDirs(t *testing.T, root string) []string {
	t.Helper()
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

func TestWorkflow(t *testing.T) {
	env := newEnv()
	root := t.TempDir()

	var timers []time.Duration
	env.SetOnTimerScheduledListener(func(timerID string, duration time.Duration) {
		timers = append(timers, duration)
	})

	env.ExecuteWorkflow(Workflow, Params{DataRoot: root, IntervalSeconds: 5, MaxCount: 3})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var state State
	require.NoError(t, env.GetWorkflowResult(&state))
	require.True(t, state.Done)
	require.Equal(t, []string{"folder_0", "folder_1", "folder_2"}, state.Created)
	require.Equal(t, []time.Duration{5 * time.Second, 5 * time.Second}, timers)
	require.Equal(t, state.Created, listDirs(t, root))
}

func TestWorkflowZeroCount(t *testing.T) {
	env := newEnv()
	root := t.TempDir()

	env.ExecuteWorkflow(Workflow, Params{DataRoot: root, IntervalSeconds: 5, MaxCount: 0})
	require.NoError(t, env.GetWorkflowError())

	var state State
	require.NoError(t, env.GetWorkflowResult(&state))
	require.True(t, state.Done)
	require.Empty(t, state.Created)
	require.Empty(t, listDirs(t, root))
}

func TestWorkflowQueryWhileRunning(t *testing.T) {
	env := newEnv()
	root := t.TempDir()

	var midState State
	var queryErr error
	env.RegisterDelayedCallback(func() {
		val, err := env.QueryWorkflow(QueryGetState)
		if err != nil {
			queryErr = err
			return
		}
		queryErr = val.Get(&midState)
	}, 15*time.Second)

	env.ExecuteWorkflow(Workflow, Params{DataRoot: root, IntervalSeconds: 10, MaxCount: 4})
	require.NoError(t, env.GetWorkflowError())
	require.NoError(t, queryErr)
	require.False(t, midState.Done)
	require.Equal(t, []string{"folder_0", "folder_1"}, midState.Created)
}

func TestWorkflowCancel(t *testing.T) {
	env := newEnv()
	root := t.TempDir()

	env.RegisterDelayedCallback(env.CancelWorkflow, 15*time.Second)
	env.ExecuteWorkflow(Workflow, Params{DataRoot: root, IntervalSeconds: 10, MaxCount: 4})

	require.True(t, env.IsWorkflowCompleted())
	require.True(t, temporal.IsCanceledError(env.GetWorkflowError()))
	require.Equal(t, []string{"folder_0", "folder_1"}, listDirs(t, root))
}

func TestWorkflowCreateFailure(t *testing.T) {
	env := newEnv()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "folder_1"), nil, 0644))

	env.ExecuteWorkflow(Workflow, Params{DataRoot: root, IntervalSeconds: 1, MaxCount: 3})
	err := env.GetWorkflowError()
	require.Error(t, err)
	require.True(t, fwactivity.IsErrorType(err, fwactivity.ErrTypeCreateFolder))
	require.Equal(t, []string{"folder_0", "folder_1"}, listDirs(t, root))
}

func TestParamsInterval(t *testing.T) {
	require.Equal(t, time.Duration(0), Params{IntervalSeconds: -3}.Interval())
	require.Equal(t, 1500*time.Millisecond, Params{IntervalSeconds: 1.5}.Interval())
}
