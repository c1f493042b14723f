package sciformats

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sciformats/go-sciformats/andi"
	"github.com/sciformats/go-sciformats/export"
	"github.com/sciformats/go-sciformats/ir"
	"github.com/sciformats/go-sciformats/jdx"
	"github.com/sciformats/go-sciformats/plugin"
)

var builtins = map[string]func() plugin.Plugin{
	jdx.Name:    func() plugin.Plugin { return jdx.NewPlugin() },
	andi.Name:   func() plugin.Plugin { return andi.NewPlugin() },
	export.Name: func() plugin.Plugin { return export.NewPlugin() },
}

// DefaultPlugins returns the names of all built-in plugins in their default
// priority order.
func DefaultPlugins() []string {
	return []string{jdx.Name, andi.Name, export.Name}
}

// NewRepository builds a repository from cfg. A nil cfg means
// DefaultConfig(). A nil logger is replaced by a JSON logger on stderr at
// cfg's level.
func NewRepository(cfg *Config, logger *slog.Logger) (*plugin.Repository, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		level, _ := cfg.level()
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
	names := cfg.Plugins
	if len(names) == 0 {
		names = DefaultPlugins()
	}
	plugins := make([]plugin.Plugin, len(names))
	for i, name := range names {
		plugins[i] = builtins[name]()
	}
	return plugin.NewRepository(plugins,
		plugin.WithLogger(logger),
		plugin.WithFallback(cfg.Fallback)), nil
}

// File is a Reader over an open file. Bulk data may be read lazily, so the
// file stays open until Close.
type File struct {
	plugin.Reader
	f *os.File
}

var _ io.Closer = (*File)(nil)

func (f *File) Close() error {
	return f.f.Close()
}

// Open opens path and hands it to repo.
func Open(repo *plugin.Repository, path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrIO, err)
	}
	r, err := repo.GetReader(path, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &File{Reader: r, f: f}, nil
}
