// Package lifecycle holds shared start/stop timing for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers, pools and background workers.
const DefaultTimeout = 10 * time.Second
