package value

import "time"

// Window is the updated-at range a report covers. A nil Until is open-ended.
type Window struct {
	Since time.Time
	Until *time.Time
}

func (w Window) Valid() bool {
	return w.Until == nil || w.Until.After(w.Since)
}

// Contains reports whether t is not past Until. Since is applied server side.
func (w Window) Contains(t time.Time) bool {
	return w.Until == nil || !t.After(*w.Until)
}
