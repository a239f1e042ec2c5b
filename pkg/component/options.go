package component

import (
	"log/slog"

	"github.com/vango-dev/mdc/pkg/widget"
)

// Option configures a Root.
type Option func(*config)

type config struct {
	name    string
	toolkit widget.Toolkit
	logger  *slog.Logger
	values  map[any]any
	debug   bool
}

func newConfig(opts []Option) config {
	cfg := config{
		name:   "root",
		values: make(map[any]any),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(discardHandler{})
	}
	return cfg
}

// WithToolkit binds the widget toolkit used by every scope of the root.
func WithToolkit(tk widget.Toolkit) Option {
	return func(c *config) { c.toolkit = tk }
}

// WithLogger sets the logger returned by Scope.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithValue makes v available to every scope through Scope.Value(key).
func WithValue(key, v any) Option {
	return func(c *config) { c.values[key] = v }
}

// WithDebug enables development checks such as hook count validation.
func WithDebug(on bool) Option {
	return func(c *config) { c.debug = on }
}

// WithName sets the first segment of scope paths. Defaults to "root".
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}
