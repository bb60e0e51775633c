package fwactivity

import (
	"context"

	"go.temporal.io/sdk/activity"
)

type CreatePrefixedParams struct {
	DataRoot string   `json:"data_root"`
	Names    []string `json:"names"`
	Prefix   string   `json:"prefix"`
}

func (d *Deps) CreatePrefixed(ctx context.Context, params CreatePrefixedParams) (*CreateFoldersResult, error) {
	p, err := d.open(ctx, params.DataRoot, nil)
	if err != nil {
		return nil, err
	}

	folders, err := p.CreatePrefixed(ctx, params.Names, params.Prefix)
	if err != nil {
		return nil, applicationError(err)
	}

	activity.GetLogger(ctx).Info("Created prefixed folders", "prefix", params.Prefix, "count", len(folders))
	return &CreateFoldersResult{Folders: folders}, nil
}
