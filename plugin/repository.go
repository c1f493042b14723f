package plugin

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/sciformats/go-sciformats/debug"
	"github.com/sciformats/go-sciformats/ir"
	"github.com/sciformats/go-sciformats/stream"
)

// Repository dispatches files to an ordered list of plugins. Order is
// priority: the first plugin that recognizes a file and builds a reader
// wins.
type Repository struct {
	plugins  []Plugin
	fallback bool
	logger   *slog.Logger
}

type RepositoryOption func(*Repository)

// WithLogger sets the logger; slog.Default() is used otherwise.
func WithLogger(l *slog.Logger) RepositoryOption {
	return func(r *Repository) { r.logger = l }
}

// WithFallback makes GetReader try the next plugin when a plugin that
// recognized the file fails to build a reader. Off by default: the first
// such failure is returned.
func WithFallback(v bool) RepositoryOption {
	return func(r *Repository) { r.fallback = v }
}

func NewRepository(plugins []Plugin, opts ...RepositoryOption) *Repository {
	r := &Repository{plugins: plugins}
	for _, o := range opts {
		o(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Plugins returns the plugins in priority order.
func (r *Repository) Plugins() []Plugin {
	return r.plugins
}

// IsRecognized reports whether any plugin recognizes the file. The stream
// is rewound before each probe; its position afterwards is unspecified.
func (r *Repository) IsRecognized(path string, rs io.ReadSeeker) bool {
	for _, p := range r.plugins {
		if err := stream.Rewind(rs); err != nil {
			r.logger.Debug("rewind failed", "path", path, "plugin", p.Name(), "error", err)
			return false
		}
		if p.IsRecognized(path, rs) {
			return true
		}
	}
	return false
}

// GetReader returns a reader from the first plugin that recognizes the file.
// The stream is rewound to position 0 before each probe and again before
// the recognized plugin parses it.
func (r *Repository) GetReader(path string, rs io.ReadSeeker) (Reader, error) {
	var errs []error
	for _, p := range r.plugins {
		log := r.logger.With("path", path, "plugin", p.Name())
		if err := stream.Rewind(rs); err != nil {
			return nil, fmt.Errorf("%w: rewind %s: %w", ir.ErrIO, path, err)
		}
		if !p.IsRecognized(path, rs) {
			log.Debug("not recognized")
			continue
		}
		if debug.Scan() {
			debug.Logf("scan %s: recognized by %s\n", path, p.Name())
		}
		if err := stream.Rewind(rs); err != nil {
			return nil, fmt.Errorf("%w: rewind %s: %w", ir.ErrIO, path, err)
		}
		reader, err := p.GetReader(path, rs)
		if err == nil {
			log.Debug("reader created")
			return reader, nil
		}
		if !r.fallback {
			return nil, fmt.Errorf("%s reader for %s: %w", p.Name(), path, err)
		}
		log.Warn("recognized file but reader failed, trying next plugin", "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
	}
	if len(errs) != 0 {
		return nil, fmt.Errorf("%w for path %s: %w", ErrNoReader, path, errors.Join(errs...))
	}
	return nil, fmt.Errorf("%w for path: %s", ErrNoReader, path)
}
