package allowdirs

import "errors"

// ErrNotAllowed reports that a checked path falls outside every allowed
// directory and pattern. The permission hook never returns it; it exists
// for callers (such as the CLI) that need a distinct failure value.
var ErrNotAllowed = errors.New("allowdirs: path not allowed")
