package fwactivity

import (
	"context"

	"go.temporal.io/sdk/activity"

	"github.com/krelinga/folder-workflows/internal/fwfolder"
)

type MkDirParams struct {
	DataRoot  string `json:"data_root"`
	Name      string `json:"name"`
	Operation string `json:"operation,omitempty"`
}

// MkDir creates a single folder, and any missing parents, under the data root.
func (d *Deps) MkDir(ctx context.Context, params MkDirParams) error {
	p, err := d.open(ctx, params.DataRoot, nil)
	if err != nil {
		return err
	}

	op := params.Operation
	if op == "" {
		op = fwfolder.OpMkDir
	}
	if err := p.MkDir(op, params.Name); err != nil {
		return applicationError(err)
	}

	activity.GetLogger(ctx).Info("Created folder", "path", p.Path(params.Name))
	return nil
}
