package port

import "time"

// Clock returns the current wall-clock time.
type Clock func() time.Time
