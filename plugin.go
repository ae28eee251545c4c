package allowdirs

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/armatrix/opencode-allowdirs/hook"
)

// Plugin adapts the host permission hook onto the resolver. It holds no
// state of its own beyond the resolver it wraps.
type Plugin struct {
	resolver *Resolver
}

// NewPlugin wraps a resolver for host registration.
func NewPlugin(r *Resolver) *Plugin {
	return &Plugin{resolver: r}
}

// Resolver returns the underlying resolver.
func (p *Plugin) Resolver() *Resolver {
	return p.resolver
}

// Decide is the core decision boundary: request kind plus target path in,
// decision out. Anything other than an external-directory request with a
// known target defers. Host request shapes are adapted outside this
// function.
func (p *Plugin) Decide(kind, target string) Decision {
	if kind != hook.TypeExternalDirectory || target == "" {
		return Defer
	}
	if p.resolver.IsAllowed(target) {
		return Allow
	}
	return Defer
}

// HandlePermission implements the host permission hook. It answers
// external-directory requests whose target falls under an allowed
// directory with an allow status, and returns nil for everything else so
// the host's default prompt flow applies. It never returns an error:
// every failure mode degrades to "no opinion".
func (p *Plugin) HandlePermission(_ context.Context, req *hook.Request) (*hook.Result, error) {
	if req == nil || req.Type != hook.TypeExternalDirectory {
		return nil, nil
	}

	target, ok := req.TargetPath()
	if !ok {
		p.resolver.logger.Debug("permission request carries no target path",
			"request", p.requestID(req))
		return nil, nil
	}

	if p.Decide(req.Type, target) != Allow {
		return nil, nil
	}

	p.resolver.logger.Info("auto-approving external directory access",
		"request", p.requestID(req), "path", target)
	return &hook.Result{Status: hook.StatusAllow}, nil
}

// requestID returns the host-assigned request ID, or a generated ULID so
// log lines stay correlatable when the host omits one.
func (p *Plugin) requestID(req *hook.Request) string {
	if req.ID != "" {
		return req.ID
	}
	return ulid.Make().String()
}
