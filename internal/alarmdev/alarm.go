// Package alarmdev is the minimal alarm-device stand-in described by
// SPEC_FULL.md §4.6. spec.md names the alarm device as an external
// collaborator plugging into the dispatcher via the same action/status/
// request contract as disk; this package implements just enough of that
// contract (a single unit, one-shot scheduling through the same event
// queue) to exercise the ALARM branch of the dispatcher and the priority
// tie-break across device classes. It does not model countdown/repeat
// semantics.
package alarmdev

import (
	"github.com/usloss-go/simkernel/internal/devclass"
	"github.com/usloss-go/simkernel/internal/devstatus"
)

// Scheduler is the subset of the event queue the alarm device needs.
type Scheduler interface {
	Schedule(device devclass.Class, arg any, delay uint8)
}

// Device is the single-unit alarm stand-in.
type Device struct {
	q Scheduler
}

// New returns an alarm device that schedules its completions through q.
func New(q Scheduler) *Device {
	return &Device{q: q}
}

// GetStatus returns DEV_READY for unit 0, DEV_INVALID otherwise.
func (d *Device) GetStatus(unit int) (devstatus.Status, devstatus.Result) {
	if unit != 0 {
		return devstatus.Ready, devstatus.Invalid
	}
	return devstatus.Ready, devstatus.OK
}

// Request schedules a one-shot ALARM completion arg device-phase pulses in
// the future, where arg is an int delay in [1, 254]. Unit must be 0.
func (d *Device) Request(unit int, arg any) devstatus.Result {
	if unit != 0 {
		return devstatus.Invalid
	}
	delay, ok := arg.(int)
	if !ok || delay <= 0 || delay >= 255 {
		return devstatus.Invalid
	}
	d.q.Schedule(devclass.Alarm, unit, uint8(delay))
	return devstatus.OK
}

// Action is invoked at completion time and simply returns the unit so the
// dispatcher delivers an ALARM interrupt to the guest.
func (d *Device) Action(arg any) int {
	return arg.(int)
}
