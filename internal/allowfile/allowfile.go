// Package allowfile locates and merges opencode allowlist config files.
package allowfile

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ConfigName is the file name probed at every candidate location.
const ConfigName = "opencode-allowlist.json"

// ConfigDir is the per-directory config subdirectory used by the ancestor walk.
const ConfigDir = ".opencode"

// File is a parsed allowlist config file.
type File struct {
	// AllowedDirectories lists absolute directory prefixes to auto-approve.
	AllowedDirectories []string

	// AllowedPatterns lists optional doublestar globs matched against the
	// full requested path when no directory prefix matches.
	AllowedPatterns []string
}

// rawFile defers field decoding so that a wrong-typed field degrades to
// empty instead of failing the whole file. Unknown fields are ignored.
type rawFile struct {
	AllowedDirectories json.RawMessage `json:"allowedDirectories"`
	AllowedPatterns    json.RawMessage `json:"allowedPatterns"`
}

// Parse decodes a config file. The document itself must be valid JSON;
// a recognized field that is present but not an array of strings
// contributes nothing without invalidating the rest of the file.
func Parse(data []byte) (*File, error) {
	var raw rawFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return &File{
		AllowedDirectories: stringSlice(raw.AllowedDirectories),
		AllowedPatterns:    stringSlice(raw.AllowedPatterns),
	}, nil
}

func stringSlice(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var s []string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return s
}

// homeDir resolves the user's home directory from the environment.
// When it cannot be resolved, a literal "~" keeps the global candidate
// paths well-formed; they simply never exist on disk.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "~"
	}
	return home
}

// GlobalCandidates returns the two fixed global config locations, in
// precedence order of discovery.
func GlobalCandidates() []string {
	home := homeDir()
	return []string{
		filepath.Join(home, ".config", "opencode", ConfigName),
		filepath.Join(home, ".local", "share", "opencode", "config", ConfigName),
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
