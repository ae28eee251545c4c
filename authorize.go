package allowdirs

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IsAllowed reports whether the requested path falls under any allowed
// directory, or matches any allowed pattern. Both sides are lexically
// normalized against the process working directory (".." and "." segments
// resolved, no symlink following). The first match wins; an empty
// allowlist allows nothing.
func (r *Resolver) IsAllowed(path string) bool {
	if path == "" {
		return false
	}
	req, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	m := r.load()
	for _, dir := range m.Directories {
		allowed, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		if r.containsPath(allowed, req) {
			return true
		}
	}
	for _, pattern := range m.Patterns {
		if ok, _ := doublestar.Match(pattern, filepath.ToSlash(req)); ok {
			return true
		}
	}
	return false
}

// containsPath decides directory containment. The default requires the
// request to equal the allowed directory or extend it across a separator,
// so /a/b does not capture /a/bc. Compat mode keeps the historical bare
// prefix comparison, sibling false positives included.
func (r *Resolver) containsPath(allowed, req string) bool {
	if r.compatPrefix {
		return strings.HasPrefix(req, allowed)
	}
	if req == allowed {
		return true
	}
	sep := string(filepath.Separator)
	if !strings.HasSuffix(allowed, sep) {
		allowed += sep
	}
	return strings.HasPrefix(req, allowed)
}

// MatchingDirectory returns the first allowed directory containing the
// requested path, for diagnostic output. The boolean is false when the
// path is only matched by a pattern or not matched at all.
func (r *Resolver) MatchingDirectory(path string) (string, bool) {
	req, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	for _, dir := range r.load().Directories {
		allowed, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		if r.containsPath(allowed, req) {
			return dir, true
		}
	}
	return "", false
}
