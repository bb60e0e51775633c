package fwactivity

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"
)

func newEnv(t *testing.T, deps *Deps) *testsuite.TestActivityEnvironment {
	t.Helper()
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestActivityEnvironment()
	env.RegisterActivity(deps)
	return env
}

func requireAppErrorType(t *testing.T, err error, errType string) {
	t.Helper()
	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr), "expected application error, got %v", err)
	require.Equal(t, errType, appErr.Type())
}

func TestMkDir(t *testing.T) {
	deps := &Deps{}
	env := newEnv(t, deps)
	root := t.TempDir()

	_, err := env.ExecuteActivity(deps.MkDir, MkDirParams{DataRoot: root, Name: "folder_0"})
	require.NoError(t, err)
	require.DirExists(t, filepath.Join(root, "folder_0"))

	// Second call is a no-op.
	_, err = env.ExecuteActivity(deps.MkDir, MkDirParams{DataRoot: root, Name: "folder_0"})
	require.NoError(t, err)
}

func TestMkDirErrors(t *testing.T) {
	deps := &Deps{}
	env := newEnv(t, deps)
	root := t.TempDir()

	_, err := env.ExecuteActivity(deps.MkDir, MkDirParams{DataRoot: root, Name: "../b"})
	requireAppErrorType(t, err, ErrTypeInvalidName)
	require.True(t, IsBadRequest(err))

	_, err = env.ExecuteActivity(deps.MkDir, MkDirParams{Name: "x"})
	requireAppErrorType(t, err, ErrTypeInvalidRequest)
	require.True(t, IsBadRequest(err))

	require.NoError(t, os.WriteFile(filepath.Join(root, "taken"), nil, 0644))
	_, err = env.ExecuteActivity(deps.MkDir, MkDirParams{DataRoot: root, Name: "taken"})
	requireAppErrorType(t, err, ErrTypeCreateFolder)
	require.Contains(t, err.Error(), filepath.Join(root, "taken"))
	require.False(t, IsBadRequest(err))
}

func TestMkDirNested(t *testing.T) {
	deps := &Deps{}
	env := newEnv(t, deps)
	root := t.TempDir()

	_, err := env.ExecuteActivity(deps.MkDir, MkDirParams{DataRoot: root, Name: "projects/2025"})
	require.NoError(t, err)
	require.DirExists(t, filepath.Join(root, "projects", "2025"))
}

func TestCreateRange(t *testing.T) {
	deps := &Deps{}
	env := newEnv(t, deps)
	root := t.TempDir()

	val, err := env.ExecuteActivity(deps.CreateRange, CreateRangeParams{DataRoot: root, Start: 2020, End: 2022})
	require.NoError(t, err)
	var result CreateFoldersResult
	require.NoError(t, val.Get(&result))
	require.Equal(t, []string{"2020", "2021", "2022"}, result.Folders)
	for _, name := range result.Folders {
		require.DirExists(t, filepath.Join(root, name))
	}

	_, err = env.ExecuteActivity(deps.CreateRange, CreateRangeParams{DataRoot: root, Start: 0, End: math.MaxInt})
	requireAppErrorType(t, err, ErrTypeInvalidRequest)
}

type countingObserver struct {
	created, failed int
}

func (c *countingObserver) FolderCreated(op, path string)          { c.created++ }
func (c *countingObserver) FolderFailed(op, path string, err error) { c.failed++ }

func TestHeartbeatObserver(t *testing.T) {
	next := &countingObserver{}
	var beats []string
	o := &heartbeatObserver{
		next: next,
		record: func(details ...interface{}) {
			beats = append(beats, details[0].(string))
		},
	}
	o.FolderCreated("range", "/data/2020")
	o.FolderFailed("range", "/data/2021", errors.New("exists"))
	require.Equal(t, []string{"/data/2020", "/data/2021"}, beats)
	require.Equal(t, 1, next.created)
	require.Equal(t, 1, next.failed)

	// A nil next observer is allowed.
	o = &heartbeatObserver{record: func(...interface{}) {}}
	o.FolderCreated("range", "/data/2022")
}

func TestActivitiesReportToObserver(t *testing.T) {
	obs := &countingObserver{}
	deps := &Deps{Observer: obs}
	env := newEnv(t, deps)
	root := t.TempDir()

	_, err := env.ExecuteActivity(deps.CreatePrefixed, CreatePrefixedParams{
		DataRoot: root,
		Names:    []string{"csv", "json"},
		Prefix:   "data-",
	})
	require.NoError(t, err)
	require.Equal(t, 2, obs.created)
}

func TestCreateFromList(t *testing.T) {
	date := time.Date(2025, time.January, 24, 0, 0, 0, 0, time.UTC)
	deps := &Deps{Now: func() time.Time { return date }}
	env := newEnv(t, deps)
	root := t.TempDir()

	params := CreateFromListParams{
		DataRoot: root,
		Names:    []string{"data-csv", "Final Deliverables"},
	}
	params.Transforms.Lowercase = true
	params.Transforms.ReplaceSpaces = true
	params.Transforms.AddDate = true

	val, err := env.ExecuteActivity(deps.CreateFromList, params)
	require.NoError(t, err)
	var result CreateFoldersResult
	require.NoError(t, val.Get(&result))
	require.Equal(t, []string{"data-csv_20250124", "final_deliverables_20250124"}, result.Folders)

	// An explicit date wins over the clock.
	params.Names = []string{"Asia"}
	params.Date = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	val, err = env.ExecuteActivity(deps.CreateFromList, params)
	require.NoError(t, err)
	require.NoError(t, val.Get(&result))
	require.Equal(t, []string{"asia_20241231"}, result.Folders)
}

func TestCreatePrefixed(t *testing.T) {
	deps := &Deps{}
	env := newEnv(t, deps)
	root := t.TempDir()

	val, err := env.ExecuteActivity(deps.CreatePrefixed, CreatePrefixedParams{
		DataRoot: root,
		Names:    []string{"csv", "excel", "json"},
		Prefix:   "data-",
	})
	require.NoError(t, err)
	var result CreateFoldersResult
	require.NoError(t, val.Get(&result))
	require.Equal(t, []string{"data-csv", "data-excel", "data-json"}, result.Folders)
}
