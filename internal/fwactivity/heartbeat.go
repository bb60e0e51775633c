package fwactivity

import "github.com/krelinga/folder-workflows/internal/fwfolder"

// heartbeatObserver records an activity heartbeat with the folder path for
// every attempt, then forwards to next.
type heartbeatObserver struct {
	next   fwfolder.Observer
	record func(details ...interface{})
}

func (o *heartbeatObserver) FolderCreated(op, path string) {
	o.record(path)
	if o.next != nil {
		o.next.FolderCreated(op, path)
	}
}

func (o *heartbeatObserver) FolderFailed(op, path string, err error) {
	o.record(path)
	if o.next != nil {
		o.next.FolderFailed(op, path, err)
	}
}
