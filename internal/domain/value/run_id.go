package value

import "github.com/rs/xid"

// RunID tags every log line and the report of a single invocation.
type RunID struct{ xid.ID }

func NewRunID() RunID {
	return RunID{ID: xid.New()}
}
