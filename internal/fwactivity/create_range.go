package fwactivity

import (
	"context"

	"go.temporal.io/sdk/activity"
)

type CreateRangeParams struct {
	DataRoot string `json:"data_root"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

func (d *Deps) CreateRange(ctx context.Context, params CreateRangeParams) (*CreateFoldersResult, error) {
	p, err := d.open(ctx, params.DataRoot, nil)
	if err != nil {
		return nil, err
	}

	folders, err := p.CreateRange(ctx, params.Start, params.End)
	if err != nil {
		return nil, applicationError(err)
	}

	activity.GetLogger(ctx).Info("Created range folders",
		"start", params.Start, "end", params.End, "count", len(folders))
	return &CreateFoldersResult{Folders: folders}, nil
}
