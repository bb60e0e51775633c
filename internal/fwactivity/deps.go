package fwactivity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/krelinga/folder-workflows/internal/fwfolder"
)

// Application error types reported by the activities in this package.
const (
	ErrTypeCreateFolder   = "CreateFolderError"
	ErrTypeInvalidName    = "InvalidNameError"
	ErrTypeInvalidRequest = "InvalidRequestError"
)

// Deps holds the collaborators shared by every activity. The zero value is
// usable.
type Deps struct {
	Logger   *zap.Logger
	Observer fwfolder.Observer
	// Now overrides the clock used for date suffixes.
	Now func() time.Time
}

// CreateFoldersResult lists the folder names an activity created, in order.
type CreateFoldersResult struct {
	Folders []string `json:"folders"`
}

// open returns a provisioner for dataRoot that heartbeats the activity in
// ctx for every folder it attempts.
func (d *Deps) open(ctx context.Context, dataRoot string, now func() time.Time) (*fwfolder.Provisioner, error) {
	if dataRoot == "" {
		return nil, temporal.NewNonRetryableApplicationError("data_root cannot be empty", ErrTypeInvalidRequest, nil)
	}
	opts := []fwfolder.Option{
		fwfolder.WithObserver(&heartbeatObserver{
			next: d.Observer,
			record: func(details ...interface{}) {
				activity.RecordHeartbeat(ctx, details...)
			},
		}),
	}
	if d.Logger != nil {
		opts = append(opts, fwfolder.WithLogger(d.Logger))
	}
	if now == nil {
		now = d.Now
	}
	if now != nil {
		opts = append(opts, fwfolder.WithClock(now))
	}
	p, err := fwfolder.Open(dataRoot, opts...)
	if err != nil {
		return nil, applicationError(err)
	}
	return p, nil
}

// applicationError converts provisioner failures into non-retryable
// application errors so workflows and API callers can tell them apart.
func applicationError(err error) error {
	switch {
	case errors.Is(err, fwfolder.ErrInvalidName):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidName, err)
	case errors.Is(err, fwfolder.ErrInvalidRange):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidRequest, err)
	case errors.Is(err, fwfolder.ErrCreateFolder):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeCreateFolder, err)
	default:
		return fmt.Errorf("unexpected error: %w", err)
	}
}

// IsErrorType reports whether any application error in err's chain has the
// given type. Workflow failures wrap activity failures, so the outermost
// application error is usually not the interesting one.
func IsErrorType(err error, errType string) bool {
	for err != nil {
		var appErr *temporal.ApplicationError
		if !errors.As(err, &appErr) {
			return false
		}
		if appErr.Type() == errType {
			return true
		}
		err = appErr.Unwrap()
	}
	return false
}

// IsBadRequest reports whether err was caused by the caller's input rather
// than by the filesystem.
func IsBadRequest(err error) bool {
	return IsErrorType(err, ErrTypeInvalidName) || IsErrorType(err, ErrTypeInvalidRequest)
}
