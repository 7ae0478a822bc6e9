package out

import "time"

// ClockPort injects the current instant so the time-window evaluation stays
// deterministic under test.
type ClockPort interface {
	Now() time.Time
}
