package ports

import "time"

// Clock abstracts the source of time used by the engine for expiry checks,
// so that tests can run against a fixed or manually advanced clock.
type Clock interface {
	Now() time.Time
}
