package allowfile

import (
	"log/slog"
	"os"
)

// Merged is the de-duplicated union of every discovered config source.
type Merged struct {
	// Directories holds the allowed directory prefixes in discovery order.
	Directories []string

	// Patterns holds the allowed path globs in discovery order.
	Patterns []string
}

// Load reads and merges the given config files. A file that cannot be read
// or parsed is logged and skipped; it never aborts the remaining files.
// Merging is a pure union with exact-string de-duplication: sources are
// equally additive and order only affects logging.
func Load(logger *slog.Logger, paths []string) *Merged {
	if len(paths) == 0 {
		logger.Info("no allowlist config files found")
		return &Merged{}
	}

	m := &Merged{}
	seenDirs := make(map[string]bool)
	seenPatterns := make(map[string]bool)

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("failed to read allowlist config", "path", path, "error", err)
			continue
		}
		f, err := Parse(data)
		if err != nil {
			logger.Error("failed to parse allowlist config", "path", path, "error", err)
			continue
		}
		if len(f.AllowedDirectories) > 0 || len(f.AllowedPatterns) > 0 {
			logger.Info("loaded allowlist config",
				"path", path,
				"directories", len(f.AllowedDirectories),
				"patterns", len(f.AllowedPatterns))
		}
		for _, dir := range f.AllowedDirectories {
			if !seenDirs[dir] {
				seenDirs[dir] = true
				m.Directories = append(m.Directories, dir)
			}
		}
		for _, pattern := range f.AllowedPatterns {
			if !seenPatterns[pattern] {
				seenPatterns[pattern] = true
				m.Patterns = append(m.Patterns, pattern)
			}
		}
	}

	logger.Info("merged allowlist",
		"directories", len(m.Directories),
		"patterns", len(m.Patterns),
		"sources", len(paths))
	return m
}
