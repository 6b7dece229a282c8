// Package clockdev implements the stateless clock device: spec.md §4.4.
// Its "action" is reserved for future periodic bookkeeping and currently
// does nothing.
package clockdev

import "github.com/usloss-go/simkernel/internal/devstatus"

// Device is the clock device. It has no state; the zero value is usable.
type Device struct{}

// GetStatus returns DEV_READY for unit 0, DEV_INVALID otherwise.
func (Device) GetStatus(unit int) (devstatus.Status, devstatus.Result) {
	if unit != 0 {
		return devstatus.Ready, devstatus.Invalid
	}
	return devstatus.Ready, devstatus.OK
}

// Request is a no-op: there is nothing the guest can ask of the clock.
func (Device) Request(unit int, _ any) devstatus.Result {
	if unit != 0 {
		return devstatus.Invalid
	}
	return devstatus.OK
}

// Action is invoked once per clock phase by the dispatcher, before the
// guest's CLOCK handler runs. Reserved for future periodic bookkeeping.
func (Device) Action() {}
