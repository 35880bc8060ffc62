// SPDX-License-Identifier: MPL-2.0

package instant

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// Warner receives warning-level notifications. The only writer is the
// ambiguity guess path in Construct, which names the assumed UTC offset.
// *log.Logger from github.com/charmbracelet/log satisfies it.
type Warner interface {
	Warnf(format string, args ...any)
}

var (
	warnerMu      sync.RWMutex
	defaultWarner Warner = log.NewWithOptions(os.Stderr, log.Options{Prefix: "tzkit"})
)

// SetWarner replaces the process-wide warning collaborator. Call during
// program initialization, before concurrent use of Construct; per-call
// injection is available via WithWarner.
func SetWarner(w Warner) {
	warnerMu.Lock()
	defer warnerMu.Unlock()
	defaultWarner = w
}

// currentWarner returns the process-wide warning collaborator.
func currentWarner() Warner {
	warnerMu.RLock()
	defer warnerMu.RUnlock()
	return defaultWarner
}
