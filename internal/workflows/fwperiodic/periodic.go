package fwperiodic

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/krelinga/folder-workflows/internal/fwactivity"
	"github.com/krelinga/folder-workflows/internal/fwfolder"
)

type Params struct {
	DataRoot        string  `json:"data_root"`
	IntervalSeconds float64 `json:"interval_seconds"`
	MaxCount        int     `json:"max_count"`
}

// Interval converts IntervalSeconds to a duration, clamping negatives to zero.
func (p Params) Interval() time.Duration {
	if p.IntervalSeconds <= 0 {
		return 0
	}
	return time.Duration(p.IntervalSeconds * float64(time.Second))
}

type State struct {
	Created []string `json:"created"`
	Done    bool     `json:"done"`
}

const QueryGetState = "GetState"

// Workflow creates folder_0 .. folder_{MaxCount-1} in order, sleeping for
// the interval between two creations. It does not sleep after the last one.
func Workflow(ctx workflow.Context, params Params) (State, error) {
	// Set up state and an associated query handler.
	state := State{Created: []string{}}
	stateQuery := func() (State, error) {
		return state, nil
	}
	if err := workflow.SetQueryHandler(ctx, QueryGetState, stateQuery); err != nil {
		return state, fmt.Errorf("failed to set query handler: %w", err)
	}

	mkDirOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	mkDirCtx := workflow.WithActivityOptions(ctx, mkDirOptions)
	interval := params.Interval()
	logger := workflow.GetLogger(ctx)

	var deps *fwactivity.Deps
	for i := 0; i < params.MaxCount; i++ {
		if i > 0 && interval > 0 {
			if err := workflow.Sleep(ctx, interval); err != nil {
				return state, err
			}
		}

		name := fwfolder.PeriodicName(i)
		mkDirParams := fwactivity.MkDirParams{
			DataRoot:  params.DataRoot,
			Name:      name,
			Operation: fwfolder.OpPeriodic,
		}
		if err := workflow.ExecuteActivity(mkDirCtx, deps.MkDir, mkDirParams).Get(mkDirCtx, nil); err != nil {
			return state, fmt.Errorf("failed to create %s: %w", name, err)
		}
		state.Created = append(state.Created, name)
		logger.Info("Created periodic folder", "name", name, "remaining", params.MaxCount-i-1)
	}

	state.Done = true
	return state, nil
}
