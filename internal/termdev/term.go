// Package termdev holds the terminal device stand-in and its host-side
// raw-mode adapter.
//
// spec.md §1 names the terminal device as an external collaborator
// plugging into the dispatcher via the same contract as disk, and
// explicitly scopes its I/O behavior out. Device here is therefore a
// stub: always DEV_INVALID, present only so InterruptVector has a real
// slot to leave unset/trap on. HostAdapter is unrelated ambient tooling
// (grounded on the teacher's terminal_host.go) used by cmd/simmonitor for
// raw keystroke input; it is never wired into the dispatch path.
package termdev

import (
	"github.com/usloss-go/simkernel/internal/devstatus"
)

// Device is the terminal device stand-in. It always reports DEV_INVALID,
// matching "no unit is actually implemented" rather than claiming a
// working unit 0.
type Device struct{}

func (Device) GetStatus(int) (devstatus.Status, devstatus.Result) {
	return devstatus.Ready, devstatus.Invalid
}

func (Device) Request(int, any) devstatus.Result {
	return devstatus.Invalid
}
