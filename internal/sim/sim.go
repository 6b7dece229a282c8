// Package sim assembles the event queue, interrupt vector, device
// façade, and per-device-class devices into one Simulator value: the
// "Global singletons" of spec.md §9, expressed as an explicitly
// constructed and passed value instead of package-level globals, per the
// Design Notes' instruction not to use ambient global state.
//
// Grounded on the teacher's component_reset.go (one place owns every
// hardware component and can reset them together) and machine_bus.go
// (a constructor returning one aggregate value that the rest of the
// program holds a reference to, rather than reaching into package
// globals).
package sim

import (
	"github.com/usloss-go/simkernel/internal/alarmdev"
	"github.com/usloss-go/simkernel/internal/clockdev"
	"github.com/usloss-go/simkernel/internal/disk"
	"github.com/usloss-go/simkernel/internal/evqueue"
	"github.com/usloss-go/simkernel/internal/facade"
	"github.com/usloss-go/simkernel/internal/hostmode"
	"github.com/usloss-go/simkernel/internal/intvec"
	"github.com/usloss-go/simkernel/internal/simlog"
	"github.com/usloss-go/simkernel/internal/termdev"
)

// Simulator is the process-wide aggregate: the event queue, the
// interrupt vector table, the disk unit table, the clock/alarm/term
// devices, and the dispatcher's own tick-phase and waiting-flag state.
type Simulator struct {
	queue  *evqueue.Queue
	vec    *intvec.Table
	mode   *hostmode.Flag
	clock  *clockdev.Device
	alarm  *alarmdev.Device
	disk   *disk.Device
	term   *termdev.Device
	facade *facade.Facade
	log    simlog.Logger

	tickPhase bool
	waiting   bool
}

// config holds the values Options mutate before New builds a Simulator.
type config struct {
	diskDir string
	log     simlog.Logger
}

// Option configures a Simulator at construction time.
type Option func(*config)

// WithDiskDir sets the directory disk backing files ("disk0", "disk1",
// ...) are opened from. Defaults to ".", the process working directory,
// matching spec.md §6.
func WithDiskDir(dir string) Option {
	return func(c *config) { c.diskDir = dir }
}

// WithLogger overrides the default logger (simlog.New()). Tests
// typically pass simlog.Discard().
func WithLogger(log simlog.Logger) Option {
	return func(c *config) { c.log = log }
}

// New constructs a Simulator: devices_init + disk_init from spec.md §3's
// "Global state lifecycle", run once per process (or once per test).
func New(opts ...Option) (*Simulator, error) {
	cfg := config{diskDir: ".", log: simlog.New()}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Simulator{
		queue:   evqueue.New(),
		vec:     intvec.New(),
		mode:    &hostmode.Flag{},
		clock:   &clockdev.Device{},
		term:    &termdev.Device{},
		log:     cfg.log,
		waiting: true,
	}
	s.alarm = alarmdev.New(s.queue)
	s.disk = disk.New(s.queue, s.log)
	if err := s.disk.Init(cfg.diskDir); err != nil {
		return nil, err
	}
	s.facade = facade.New(s.mode, s.clock, s.alarm, s.disk, s.term, s.log)
	return s, nil
}

// Close releases host resources (disk backing files) held by the
// Simulator.
func (s *Simulator) Close() {
	s.disk.Close()
}

// Facade returns the guest-visible Input/Output surface.
func (s *Simulator) Facade() *facade.Facade { return s.facade }

// Vec returns the interrupt vector table so the guest can install
// handlers before the first Tick().
func (s *Simulator) Vec() *intvec.Table { return s.vec }

// Mode returns the kernel/user-mode flag stood in for the excluded CPU
// simulator (internal/hostmode).
func (s *Simulator) Mode() *hostmode.Flag { return s.mode }

// Waiting reports the guest "waiting" flag's current value. Cleared by
// the dispatcher on every delivered device event, per spec.md §9's
// preserved-but-uncertain "waiting = 0 ... even on terminal input??"
// behavior.
func (s *Simulator) Waiting() bool { return s.waiting }

// SetWaiting lets a host/guest set the waiting flag, e.g. before blocking
// for the next interrupt.
func (s *Simulator) SetWaiting(w bool) { s.waiting = w }

// Queue exposes the event queue for read-only introspection
// (cmd/simmonitor) and for white-box tests that need to enqueue an
// illegal device class directly.
func (s *Simulator) Queue() *evqueue.Queue { return s.queue }

// Reset reinitializes the dispatcher's tick phase, the waiting flag, the
// event queue, and the interrupt vector table — the parts of
// devices_init that are safe to redo after startup. It does not reopen
// disk backing files; call Close and New again for that.
//
// The queue is reset in place rather than replaced: the alarm and disk
// devices captured *evqueue.Queue as a Scheduler at construction time, so
// swapping in a fresh queue here would leave them scheduling into an
// instance the dispatcher no longer reads from.
func (s *Simulator) Reset() {
	s.queue.Reset()
	s.vec.Reset()
	s.tickPhase = false
	s.waiting = true
}
