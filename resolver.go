package allowdirs

import (
	"log/slog"
	"sync"

	"github.com/armatrix/opencode-allowdirs/internal/allowfile"
)

// Config file layout, re-exported for user-facing messages.
const (
	configDirName  = allowfile.ConfigDir
	configFileName = allowfile.ConfigName
)

// Resolver owns the merged allowlist for one hosting process. The set is
// loaded lazily on first use and then treated as immutable: there is no
// refresh or mutation API, so only out-of-band config edits followed by a
// process restart change behavior.
//
// A Resolver is safe for concurrent use. The load is published write-once;
// everything after publication is read-only.
type Resolver struct {
	startDir     string
	boundaryDir  string
	logger       *slog.Logger
	compatPrefix bool

	once    sync.Once
	sources []string
	merged  *allowfile.Merged
}

// NewResolver creates a resolver that searches for config files from
// startDir up to boundaryDir, plus the fixed global locations. No file
// I/O happens until the first authorization check or listing.
func NewResolver(startDir, boundaryDir string, opts ...Option) *Resolver {
	var o resolverOptions
	for _, opt := range opts {
		opt(&o)
	}
	o.applyDefaults()

	return &Resolver{
		startDir:     startDir,
		boundaryDir:  boundaryDir,
		logger:       o.logger,
		compatPrefix: o.compatPrefix,
	}
}

// load discovers and merges config files exactly once per Resolver.
func (r *Resolver) load() *allowfile.Merged {
	r.once.Do(func() {
		r.sources = allowfile.FindConfigFiles(r.startDir, r.boundaryDir)
		r.merged = allowfile.Load(r.logger, r.sources)
	})
	return r.merged
}

// AllowedDirectories returns the merged allowed directory prefixes in
// discovery order. The returned slice is a copy.
func (r *Resolver) AllowedDirectories() []string {
	m := r.load()
	out := make([]string, len(m.Directories))
	copy(out, m.Directories)
	return out
}

// AllowedPatterns returns the merged allowed path globs in discovery
// order. The returned slice is a copy.
func (r *Resolver) AllowedPatterns() []string {
	m := r.load()
	out := make([]string, len(m.Patterns))
	copy(out, m.Patterns)
	return out
}

// ConfigFiles returns the config file paths that contributed to the merged
// set, in discovery order. The returned slice is a copy.
func (r *Resolver) ConfigFiles() []string {
	r.load()
	out := make([]string, len(r.sources))
	copy(out, r.sources)
	return out
}
