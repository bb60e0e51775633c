// Package fwfolder creates folders under a data root from simple rules:
// integer ranges, name lists with optional transforms, prefixed names and
// a timed sequence of numbered folders.
//
// Every operation is idempotent. Folders that already exist are reported
// as created and left untouched.
package fwfolder

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

var (
	ErrCreateFolder = errors.New("create folder")
	ErrInvalidName  = errors.New("invalid folder name")
	ErrInvalidRange = errors.New("invalid range")
)

// Operation labels passed to an Observer.
const (
	OpRange    = "range"
	OpList     = "list"
	OpPrefixed = "prefixed"
	OpPeriodic = "periodic"
	OpMkDir    = "mkdir"
)

const DefaultPerm fs.FileMode = 0755

// Observer is notified about every folder the provisioner attempts to create.
type Observer interface {
	FolderCreated(op, path string)
	FolderFailed(op, path string, err error)
}

type nopObserver struct{}

func (nopObserver) FolderCreated(string, string)        {}
func (nopObserver) FolderFailed(string, string, error) {}

type Option func(*Provisioner)

// WithClock sets the time source used for date suffixes.
func WithClock(now func() time.Time) Option {
	return func(p *Provisioner) { p.now = now }
}

func WithLogger(log *zap.Logger) Option {
	return func(p *Provisioner) { p.log = log }
}

func WithObserver(o Observer) Option {
	return func(p *Provisioner) { p.observer = o }
}

func WithPerm(perm fs.FileMode) Option {
	return func(p *Provisioner) { p.perm = perm }
}

// Provisioner creates folders under a single data root.
type Provisioner struct {
	root     string
	perm     fs.FileMode
	now      func() time.Time
	log      *zap.Logger
	observer Observer
}

// Open resolves root to an absolute path, creates it if needed and returns
// a Provisioner bound to it.
func Open(root string, opts ...Option) (*Provisioner, error) {
	if root == "" {
		return nil, fmt.Errorf("data root cannot be empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data root %s: %w", root, err)
	}

	p := &Provisioner{
		root:     abs,
		perm:     DefaultPerm,
		now:      time.Now,
		log:      zap.NewNop(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := os.MkdirAll(abs, p.perm); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCreateFolder, abs, err)
	}
	return p, nil
}

// Root returns the absolute data root.
func (p *Provisioner) Root() string {
	return p.root
}

// Path returns the absolute path a folder name resolves to.
func (p *Provisioner) Path(name string) string {
	return filepath.Join(p.root, name)
}

// CreateRange creates one folder per integer in [start, end]. Nothing is
// created when start > end; ranges larger than MaxRangeSize are rejected
// before anything is created.
func (p *Provisioner) CreateRange(ctx context.Context, start, end int) ([]string, error) {
	n, err := RangeSize(start, end)
	if err != nil || n == 0 {
		return nil, err
	}
	created := make([]string, 0, n)
	for i := start; ; i++ {
		if err := ctx.Err(); err != nil {
			return created, err
		}
		name := RangeName(i)
		if err := p.MkDir(OpRange, name); err != nil {
			return created, err
		}
		created = append(created, name)
		// i++ would wrap past math.MaxInt.
		if i == end {
			break
		}
	}
	p.log.Debug("create range finished",
		zap.Int("start", start), zap.Int("end", end), zap.Int("folders", len(created)))
	return created, nil
}

// CreateFromList creates one folder per name after applying t. The date
// suffix is read from the clock once per call.
func (p *Provisioner) CreateFromList(ctx context.Context, names []string, t Transforms) ([]string, error) {
	today := p.now()
	transformed := make([]string, len(names))
	for i, name := range names {
		transformed[i] = TransformName(name, t, today)
	}
	created, err := p.createAll(ctx, OpList, transformed)
	p.log.Debug("create from list finished",
		zap.Strings("names", names),
		zap.Bool("lowercase", t.Lowercase),
		zap.Bool("replace_spaces", t.ReplaceSpaces),
		zap.Bool("add_date", t.AddDate),
		zap.Int("folders", len(created)))
	return created, err
}

// CreatePrefixed creates prefix+name for each name.
func (p *Provisioner) CreatePrefixed(ctx context.Context, names []string, prefix string) ([]string, error) {
	created, err := p.createAll(ctx, OpPrefixed, PrefixedNames(names, prefix))
	p.log.Debug("create prefixed finished",
		zap.String("prefix", prefix), zap.Int("folders", len(created)))
	return created, err
}

// CreatePeriodic creates folder_0 .. folder_{maxCount-1} in order, blocking
// for interval between two creations. There is no wait after the last
// folder. A negative interval is treated as zero.
//
// The wait is interrupted when ctx is done; folders created up to that
// point are returned along with the context error.
func (p *Provisioner) CreatePeriodic(ctx context.Context, interval time.Duration, maxCount int) ([]string, error) {
	var created []string
	for i := 0; i < maxCount; i++ {
		if i > 0 {
			if err := sleep(ctx, interval); err != nil {
				return created, err
			}
		}
		if err := ctx.Err(); err != nil {
			return created, err
		}
		name := PeriodicName(i)
		if err := p.MkDir(OpPeriodic, name); err != nil {
			return created, err
		}
		created = append(created, name)
	}
	p.log.Debug("create periodic finished",
		zap.Duration("interval", interval), zap.Int("folders", len(created)))
	return created, nil
}

// MkDir creates a single folder under the root. op is only used for
// logging and observation.
func (p *Provisioner) MkDir(op, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	path := p.Path(name)
	if err := os.MkdirAll(path, p.perm); err != nil {
		p.observer.FolderFailed(op, path, err)
		return fmt.Errorf("%w %s: %w", ErrCreateFolder, path, err)
	}
	p.observer.FolderCreated(op, path)
	p.log.Debug("created folder", zap.String("operation", op), zap.String("path", path))
	return nil
}

// createAll validates every name before creating anything, then creates the
// folders in order. It stops at the first failure.
func (p *Provisioner) createAll(ctx context.Context, op string, names []string) ([]string, error) {
	for _, name := range names {
		if err := ValidateName(name); err != nil {
			return nil, err
		}
	}
	created := make([]string, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return created, err
		}
		if err := p.MkDir(op, name); err != nil {
			return created, err
		}
		created = append(created, name)
	}
	return created, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
