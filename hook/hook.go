// Package hook defines the host-facing permission hook types.
//
// The shapes mirror the opencode permission protocol: the host delivers a
// [Request] for each pending permission, and a plugin may answer with a
// [Result] carrying an "allow" status. A nil result expresses no opinion
// and leaves the request to the host's default prompt flow.
package hook

import "context"

// TypeExternalDirectory is the request type for file-system access outside
// the current worktree. It is the only type this plugin acts on.
const TypeExternalDirectory = "external_directory"

// StatusAllow is the result status that auto-approves a request. There is
// deliberately no deny status: the plugin either approves or stays silent.
const StatusAllow = "allow"

// Metadata keys carrying the target path. ParentDir is preferred; FilePath
// is the fallback for requests scoped to a single file.
const (
	MetadataParentDir = "parentDir"
	MetadataFilePath  = "filePath"
)

// Request is a pending permission request delivered by the host.
type Request struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	SessionID string         `json:"sessionID,omitempty"`
	Title     string         `json:"title,omitempty"`
	Pattern   []string       `json:"pattern,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Result is a plugin's answer to a permission request. The zero value
// means "no action".
type Result struct {
	Status string `json:"status,omitempty"`
}

// Func is the signature for permission hook callbacks.
type Func func(ctx context.Context, req *Request) (*Result, error)

// TargetPath extracts the requested path from the request metadata,
// preferring the parent-directory field over the file-path field.
// It returns false when neither field holds a non-empty string.
func (r *Request) TargetPath() (string, bool) {
	for _, key := range []string{MetadataParentDir, MetadataFilePath} {
		if v, ok := r.Metadata[key].(string); ok && v != "" {
			return v, true
		}
	}
	return "", false
}
