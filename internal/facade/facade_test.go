package facade

import (
	"testing"

	"github.com/usloss-go/simkernel/internal/alarmdev"
	"github.com/usloss-go/simkernel/internal/clockdev"
	"github.com/usloss-go/simkernel/internal/devclass"
	"github.com/usloss-go/simkernel/internal/devstatus"
	"github.com/usloss-go/simkernel/internal/disk"
	"github.com/usloss-go/simkernel/internal/evqueue"
	"github.com/usloss-go/simkernel/internal/hostmode"
	"github.com/usloss-go/simkernel/internal/simlog"
	"github.com/usloss-go/simkernel/internal/simtrap"
	"github.com/usloss-go/simkernel/internal/termdev"
)

func newTestFacade(t *testing.T) *Facade {
	t.Helper()
	mode := &hostmode.Flag{}
	mode.EnterKernelMode()
	q := evqueue.New()
	d := disk.New(q, simlog.Discard())
	if err := d.Init(t.TempDir()); err != nil {
		t.Fatalf("disk.Init: %v", err)
	}
	t.Cleanup(d.Close)
	return New(mode, &clockdev.Device{}, alarmdev.New(q), d, &termdev.Device{}, simlog.Discard())
}

// TestInputUnrecognizedClassIsInvalid covers SUPPLEMENTED FEATURES #4:
// Input leaves an unrecognized device class as DEV_INVALID without
// touching any device or trapping.
func TestInputUnrecognizedClassIsInvalid(t *testing.T) {
	f := newTestFacade(t)
	const bogus devclass.Class = 200
	status, result := f.Input(bogus, 0)
	if result != devstatus.Invalid {
		t.Fatalf("Input(bogus) result = %v, want DEV_INVALID", result)
	}
	if status != devstatus.Ready {
		t.Fatalf("Input(bogus) status = %v, want READY", status)
	}
}

// TestOutputUnrecognizedClassTraps covers SUPPLEMENTED FEATURES #4: an
// unrecognized device class in Output is a broken invariant, not a guest
// input error, and raises a system trap.
func TestOutputUnrecognizedClassTraps(t *testing.T) {
	f := newTestFacade(t)
	const bogus devclass.Class = 200

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic for an unrecognized device class")
		}
		trap, ok := r.(*simtrap.TrapError)
		if !ok || trap.Kind != simtrap.SystemTrap {
			t.Fatalf("panic value = %#v, want SystemTrap *TrapError", r)
		}
	}()
	f.Output(bogus, 0, nil)
}
