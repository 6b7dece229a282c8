package termdev

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// HostAdapter puts the controlling terminal into raw mode for the
// duration of a debug-console session (cmd/simmonitor) and restores it on
// Stop. Grounded on the teacher's terminal_host.go; here it feeds a
// command reader rather than a simulated TERM_IN register, since the
// terminal device itself is out of spec scope.
type HostAdapter struct {
	fd      int
	old     *term.State
	stopped sync.Once
}

// NewHostAdapter returns an adapter bound to stdin's file descriptor.
func NewHostAdapter() *HostAdapter {
	return &HostAdapter{fd: int(os.Stdin.Fd())}
}

// Start switches the terminal to raw mode. It is a no-op (returns nil) if
// stdin is not a terminal, so cmd/simmonitor keeps working when piped.
func (h *HostAdapter) Start() error {
	if !term.IsTerminal(h.fd) {
		return nil
	}
	old, err := term.MakeRaw(h.fd)
	if err != nil {
		return fmt.Errorf("termdev: failed to set raw mode: %w", err)
	}
	h.old = old
	return nil
}

// Stop restores the terminal's prior state, if Start changed it.
func (h *HostAdapter) Stop() {
	h.stopped.Do(func() {
		if h.old != nil {
			_ = term.Restore(h.fd, h.old)
		}
	})
}
