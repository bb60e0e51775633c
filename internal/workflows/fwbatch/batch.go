package fwbatch

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/krelinga/folder-workflows/internal/fwactivity"
	"github.com/krelinga/folder-workflows/internal/fwfolder"
)

type Kind string

const (
	KindRange    Kind = "range"
	KindList     Kind = "list"
	KindPrefixed Kind = "prefixed"
)

type Params struct {
	Kind     Kind   `json:"kind"`
	DataRoot string `json:"data_root"`

	// KindRange
	Start int `json:"start,omitempty"`
	End   int `json:"end,omitempty"`

	// KindList and KindPrefixed
	Names      []string            `json:"names,omitempty"`
	Transforms fwfolder.Transforms `json:"transforms"`
	Date       time.Time           `json:"date,omitempty"`
	Prefix     string              `json:"prefix,omitempty"`
}

type Result struct {
	Folders []string `json:"folders"`
}

// Workflow creates the folders described by params with a single activity
// attempt. Filesystem failures are not retried.
func Workflow(ctx workflow.Context, params Params) (Result, error) {
	options := workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Minute,
		HeartbeatTimeout:    30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var deps *fwactivity.Deps
	var future workflow.Future
	switch params.Kind {
	case KindRange:
		future = workflow.ExecuteActivity(ctx, deps.CreateRange, fwactivity.CreateRangeParams{
			DataRoot: params.DataRoot,
			Start:    params.Start,
			End:      params.End,
		})
	case KindList:
		future = workflow.ExecuteActivity(ctx, deps.CreateFromList, fwactivity.CreateFromListParams{
			DataRoot:   params.DataRoot,
			Names:      params.Names,
			Transforms: params.Transforms,
			Date:       params.Date,
		})
	case KindPrefixed:
		future = workflow.ExecuteActivity(ctx, deps.CreatePrefixed, fwactivity.CreatePrefixedParams{
			DataRoot: params.DataRoot,
			Names:    params.Names,
			Prefix:   params.Prefix,
		})
	default:
		msg := fmt.Sprintf("unknown request kind %q", params.Kind)
		return Result{}, temporal.NewNonRetryableApplicationError(msg, fwactivity.ErrTypeInvalidRequest, nil)
	}

	var activityResult fwactivity.CreateFoldersResult
	if err := future.Get(ctx, &activityResult); err != nil {
		return Result{}, fmt.Errorf("failed to create %s folders: %w", params.Kind, err)
	}

	workflow.GetLogger(ctx).Info("Folders created", "kind", params.Kind, "count", len(activityResult.Folders))
	return Result{Folders: activityResult.Folders}, nil
}
