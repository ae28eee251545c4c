package allowdirs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/armatrix/opencode-allowdirs/internal/schema"
)

// Tool is an informational tool the host can expose to the agent. All
// tools here are read-only: the plugin deliberately offers no way to
// modify the allowlist at runtime.
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]any
	Run         func(ctx context.Context, input json.RawMessage) (string, error)
}

// configExample is shown when no directories are configured.
const configExample = `{
  "allowedDirectories": [
    "/absolute/path/to/directory"
  ]
}`

// Tools returns the plugin's informational tools for host registration.
func (p *Plugin) Tools() []Tool {
	return []Tool{p.listDirectoriesTool(), p.checkPathTool()}
}

type listDirectoriesInput struct{}

func (p *Plugin) listDirectoriesTool() Tool {
	return Tool{
		Name:        "allowed_directories",
		Description: "List the directories for which external file access is auto-approved. Read-only.",
		InputSchema: schema.Generate[listDirectoriesInput](),
		Run: func(ctx context.Context, input json.RawMessage) (string, error) {
			return p.listDirectories(), nil
		},
	}
}

func (p *Plugin) listDirectories() string {
	dirs := p.resolver.AllowedDirectories()
	patterns := p.resolver.AllowedPatterns()
	if len(dirs) == 0 && len(patterns) == 0 {
		return fmt.Sprintf(
			"No allowed directories are configured.\n\n"+
				"Create a config file at <dir>/%s/%s (searched from the working "+
				"directory up to the worktree root), or at one of the global "+
				"locations under ~/.config/opencode or ~/.local/share/opencode, "+
				"with content like:\n\n%s\n\n"+
				"Config changes require a restart to take effect.",
			configDirName, configFileName, configExample)
	}

	var b strings.Builder
	b.WriteString("Allowed directories:\n")
	for _, dir := range dirs {
		fmt.Fprintf(&b, "  - %s\n", dir)
	}
	if len(patterns) > 0 {
		b.WriteString("Allowed patterns:\n")
		for _, pattern := range patterns {
			fmt.Fprintf(&b, "  - %s\n", pattern)
		}
	}
	return b.String()
}

type checkPathInput struct {
	Path string `json:"path" jsonschema:"title=Path,description=Absolute or working-directory-relative path to test"`
}

func (p *Plugin) checkPathTool() Tool {
	return Tool{
		Name:        "check_path",
		Description: "Report whether a path would be auto-approved for external access, and which allowed directory covers it. Read-only.",
		InputSchema: schema.Generate[checkPathInput](),
		Run: func(ctx context.Context, input json.RawMessage) (string, error) {
			var in checkPathInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", fmt.Errorf("invalid input: %w", err)
			}
			if in.Path == "" {
				return "", fmt.Errorf("path is required")
			}
			if dir, ok := p.resolver.MatchingDirectory(in.Path); ok {
				return fmt.Sprintf("%s is auto-approved (allowed directory: %s)", in.Path, dir), nil
			}
			if p.resolver.IsAllowed(in.Path) {
				return fmt.Sprintf("%s is auto-approved (pattern match)", in.Path), nil
			}
			return fmt.Sprintf("%s is not auto-approved; the host will prompt for access", in.Path), nil
		},
	}
}
