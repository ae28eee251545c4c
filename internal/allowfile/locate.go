package allowfile

import "path/filepath"

// FindConfigFiles returns every allowlist config file that exists on disk,
// in discovery order: the fixed global locations first, then an ancestor
// walk from startDir up to and including boundaryDir.
//
// The walk stops after boundaryDir even if config files exist above it.
// When boundaryDir is not an ancestor of startDir the walk terminates at
// the filesystem root instead. An empty result is normal.
func FindConfigFiles(startDir, boundaryDir string) []string {
	var found []string

	for _, candidate := range GlobalCandidates() {
		if fileExists(candidate) {
			found = append(found, candidate)
		}
	}

	if startDir == "" {
		return found
	}

	dir := startDir
	for {
		candidate := filepath.Join(dir, ConfigDir, ConfigName)
		if fileExists(candidate) {
			found = append(found, candidate)
		}
		if dir == boundaryDir {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return found
}
