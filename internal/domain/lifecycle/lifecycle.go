// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of infrastructure components.
const DefaultTimeout = 30 * time.Second
