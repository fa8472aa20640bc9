// Package logger provides verbose diagnostics for resp2seed.
// When verbose mode is enabled via the --verbose flag, every assembled or
// dropped group is reported on stderr so a user can see where a RESP file
// stopped matching its templates.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug reports per-group detail.
func Debug(format string, args ...any) {
	logf("DEBUG", format, args...)
}

// Info reports conversion progress.
func Info(format string, args ...any) {
	logf("INFO", format, args...)
}

// Warn reports a dropped group or line.
func Warn(format string, args ...any) {
	logf("WARN", format, args...)
}

// Section prints a header separating phases of a command.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// logf holds the write lock so concurrent writers never interleave.
func logf(level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}
