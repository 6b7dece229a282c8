// Package facade implements the uniform device façade: spec.md §4.5,
// two entry points (Input/Output) that route to the right device and
// enforce the kernel-mode precondition the original expresses via
// check_kernel_mode.
package facade

import (
	"github.com/usloss-go/simkernel/internal/alarmdev"
	"github.com/usloss-go/simkernel/internal/clockdev"
	"github.com/usloss-go/simkernel/internal/devclass"
	"github.com/usloss-go/simkernel/internal/devstatus"
	"github.com/usloss-go/simkernel/internal/disk"
	"github.com/usloss-go/simkernel/internal/hostmode"
	"github.com/usloss-go/simkernel/internal/simlog"
	"github.com/usloss-go/simkernel/internal/simtrap"
	"github.com/usloss-go/simkernel/internal/termdev"
)

// Facade is the guest-visible device API surface: spec.md §6.
type Facade struct {
	mode  *hostmode.Flag
	clock *clockdev.Device
	alarm *alarmdev.Device
	disk  *disk.Device
	term  *termdev.Device
	log   simlog.Logger
}

// New constructs a Facade routing to the given devices.
func New(mode *hostmode.Flag, clock *clockdev.Device, alarm *alarmdev.Device, d *disk.Device, term *termdev.Device, log simlog.Logger) *Facade {
	if log == nil {
		log = simlog.Discard()
	}
	return &Facade{mode: mode, clock: clock, alarm: alarm, disk: d, term: term, log: log}
}

func (f *Facade) checkKernelMode(who string) {
	if !f.mode.InKernelMode() {
		simtrap.UsrAssert(f.log, "%s: called from user mode", who)
	}
}

// Input performs the inp() operation: per-device status, because the
// device may mutate its status as a side effect of being read (disk's
// read-to-clear). An unrecognized device class fails devclass.Valid and
// returns DEV_INVALID without touching any device, matching the
// original's default-untouched behavior (SUPPLEMENTED FEATURES #4 in
// SPEC_FULL.md).
func (f *Facade) Input(dev devclass.Class, unit int) (devstatus.Status, devstatus.Result) {
	f.checkKernelMode("DeviceInput")

	if !dev.Valid() {
		return devstatus.Ready, devstatus.Invalid
	}

	var status devstatus.Status
	var result devstatus.Result
	switch dev {
	case devclass.Clock:
		status, result = f.clock.GetStatus(unit)
	case devclass.Alarm:
		status, result = f.alarm.GetStatus(unit)
	case devclass.Disk:
		status, result = f.disk.GetStatus(unit)
	case devclass.Term:
		status, result = f.term.GetStatus(unit)
	}

	if result != devstatus.OK && result != devstatus.Invalid {
		simtrap.SysAssert(f.log, "bogus result in device_input")
	}
	return status, result
}

// Output performs the outp() operation, translated into a device
// request. Unlike Input, an unrecognized device class here is a system
// trap, not a quiet DEV_INVALID — reproducing the original's behavior
// exactly (SUPPLEMENTED FEATURES #4 in SPEC_FULL.md): a class outside
// the closed devclass.Class enum can only be reached by a raw cast in a
// white-box test, but when it happens it is treated as a broken
// invariant, not a guest error.
func (f *Facade) Output(dev devclass.Class, unit int, arg any) devstatus.Result {
	f.checkKernelMode("DeviceOutput")

	if !dev.Valid() {
		simtrap.SysAssert(f.log, "bogus result in device_output")
	}

	var result devstatus.Result
	switch dev {
	case devclass.Clock:
		result = f.clock.Request(unit, arg)
	case devclass.Alarm:
		result = f.alarm.Request(unit, arg)
	case devclass.Disk:
		req, ok := arg.(disk.Request)
		if !ok {
			simtrap.UsrAssert(f.log, "DeviceOutput: DISK request arg has wrong type %T", arg)
		}
		result = f.disk.Request(unit, req)
	case devclass.Term:
		result = f.term.Request(unit, arg)
	}

	if result != devstatus.OK && result != devstatus.Invalid && result != devstatus.Busy {
		simtrap.SysAssert(f.log, "bogus result in device_output")
	}
	return result
}
