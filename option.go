package allowdirs

import (
	"io"
	"log/slog"
)

// Option configures a Resolver via the functional options pattern.
type Option func(*resolverOptions)

// resolverOptions holds all configurable fields set via Option functions.
type resolverOptions struct {
	logger       *slog.Logger
	compatPrefix bool
}

// applyDefaults fills in zero-value fields.
func (o *resolverOptions) applyDefaults() {
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// WithLogger sets the logger used for config loading and authorization
// decisions. Without it the resolver is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(o *resolverOptions) {
		o.logger = logger
	}
}

// WithCompatPrefixMatch restores the original bare lexical prefix
// comparison, under which an allowed directory /a/b also matches
// /a/bc/file. The default inserts a path-separator boundary and rejects
// such sibling paths. Use only when exact parity with prior behavior
// is required.
func WithCompatPrefixMatch() Option {
	return func(o *resolverOptions) {
		o.compatPrefix = true
	}
}
