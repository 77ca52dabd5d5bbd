// Package lifecycle holds shared timeouts for application start and stop.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as server shutdown and
// connection teardown.
const DefaultTimeout = 30 * time.Second
