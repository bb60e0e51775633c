package fwactivity

import (
	"context"
	"time"

	"go.temporal.io/sdk/activity"

	"github.com/krelinga/folder-workflows/internal/fwfolder"
)

type CreateFromListParams struct {
	DataRoot   string              `json:"data_root"`
	Names      []string            `json:"names"`
	Transforms fwfolder.Transforms `json:"transforms"`
	// Date replaces today's date for the AddDate suffix when non-zero.
	Date time.Time `json:"date,omitempty"`
}

func (d *Deps) CreateFromList(ctx context.Context, params CreateFromListParams) (*CreateFoldersResult, error) {
	var now func() time.Time
	if !params.Date.IsZero() {
		now = func() time.Time { return params.Date }
	}
	p, err := d.open(ctx, params.DataRoot, now)
	if err != nil {
		return nil, err
	}

	folders, err := p.CreateFromList(ctx, params.Names, params.Transforms)
	if err != nil {
		return nil, applicationError(err)
	}

	activity.GetLogger(ctx).Info("Created list folders", "names", params.Names, "count", len(folders))
	return &CreateFoldersResult{Folders: folders}, nil
}
