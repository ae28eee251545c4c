// Package allowdirs implements an opencode plugin that auto-approves
// external-directory permission requests for pre-approved paths.
//
// Directories are declared in opencode-allowlist.json files, discovered at
// two fixed global locations and via an ancestor walk from the working
// directory up to the worktree root. The merged set is loaded once per
// process; editing a config file requires a restart to take effect, and no
// mutation API exists.
//
// # Quick Start
//
//	r := allowdirs.NewResolver(cwd, worktree, allowdirs.WithLogger(logger))
//	p := allowdirs.NewPlugin(r)
//	result, _ := p.HandlePermission(ctx, &hook.Request{
//	    Type:     hook.TypeExternalDirectory,
//	    Metadata: map[string]any{hook.MetadataParentDir: "/w/projects/app"},
//	})
//	// result.Status == hook.StatusAllow when /w/projects/app is allowed;
//	// result is nil otherwise and the host's normal prompt flow applies.
//
// # Sub-packages
//
//   - [hook] provides the host-facing permission hook types.
//
// The plugin never denies a request: absence of a match is a non-decision
// and the host falls back to asking the user.
package allowdirs
