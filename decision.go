package allowdirs

// Decision represents the outcome of an authorization check.
type Decision int

const (
	Defer Decision = iota // No opinion; host default prompt flow applies
	Allow                 // Auto-approve the request
)

// String returns the host-protocol spelling of the decision.
func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "defer"
}
