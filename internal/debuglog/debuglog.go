// Package debuglog provides an opt-in trace log for debugging file edits.
package debuglog

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "LINEINFILE_LOG_FILE"

var mu sync.Mutex

// Logf appends a formatted line to the file named by LINEINFILE_LOG_FILE.
// When the variable is unset or the path cannot be opened, Logf does
// nothing; callers never fail because tracing failed.
func Logf(format string, args ...any) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return
	}

	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}

	// One open/write/close per call, serialized so lines from concurrent
	// goroutines don't interleave.
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.WriteString(msg)
}
