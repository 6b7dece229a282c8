// Package simtrap implements the simulator's two fatal-error taxonomies
// (spec.md §7): user asserts, raised when the guest kernel misuses the
// simulator API, and system asserts, raised when a host-level operation
// the simulator depends on fails. Both are unambiguously terminal: they
// log through simlog and then panic, rather than returning an error the
// dispatcher might accidentally continue past (see the Open Question
// decision in DESIGN.md about the original's unconditional re-invocation
// after a trap report).
package simtrap

import (
	"fmt"

	"github.com/usloss-go/simkernel/internal/simlog"
)

// Kind distinguishes a guest bug from a broken host/simulator.
type Kind int

const (
	// UserTrap: the guest kernel did something illegal (usr_assert /
	// rpt_sim_trap in the original — an unset interrupt vector, an
	// illegal device class in the event queue, an unknown disk op code).
	UserTrap Kind = iota
	// SystemTrap: a host syscall failed or an internal invariant was
	// violated (sys_assert in the original — fstat/lseek/read/write
	// failures, a bogus façade result code).
	SystemTrap
)

func (k Kind) String() string {
	if k == SystemTrap {
		return "system trap"
	}
	return "user trap"
}

// TrapError is the panic value raised by UsrAssert/SysAssert. It
// implements error so a host embedding the simulator can recover() at an
// entry-point boundary and inspect Kind before deciding how to shut down.
type TrapError struct {
	Kind    Kind
	Message string
}

func (e *TrapError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// UsrAssert reports a guest-kernel bug: logs the message via log and
// panics with a TrapError{Kind: UserTrap}. Terminal, by design.
func UsrAssert(log simlog.Logger, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Fatalf("user trap: %s", msg)
	panic(&TrapError{Kind: UserTrap, Message: msg})
}

// SysAssert reports a broken host/simulator invariant: logs the message
// via log and panics with a TrapError{Kind: SystemTrap}. Terminal, by
// design.
func SysAssert(log simlog.Logger, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Fatalf("system trap: %s", msg)
	panic(&TrapError{Kind: SystemTrap, Message: msg})
}
