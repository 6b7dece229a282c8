package sim

import (
	"github.com/usloss-go/simkernel/internal/devclass"
	"github.com/usloss-go/simkernel/internal/simtrap"
)

// Tick is the dispatcher's single operation (spec.md §4.2), called
// exactly once per simulated pulse by the surrounding CPU simulator.
// tickPhase toggles on every call; the first call is always a clock
// phase, matching the original's `static unsigned tick = 0; tick = ~tick`
// idiom (0 toggles to nonzero on the very first call).
func (s *Simulator) Tick() {
	s.tickPhase = !s.tickPhase
	if s.tickPhase {
		s.clockPhase()
		return
	}
	s.devicePhase()
}

func (s *Simulator) clockPhase() {
	s.clock.Action()
	handler := s.vec.Get(devclass.Clock)
	if handler == nil {
		simtrap.UsrAssert(s.log, "IntVec[CLOCK_INT] is NULL")
	}
	handler(devclass.Clock, nil)
	// Clock pulses do not consume queue slots: head is not advanced here.
}

func (s *Simulator) devicePhase() {
	dev, arg := s.queue.PopCurrent()
	if dev == devclass.LowPri {
		return
	}

	unitNum := -1
	switch dev {
	case devclass.Alarm:
		unitNum = s.alarm.Action(arg)
	case devclass.Disk:
		unitNum = s.disk.Action(arg.(int))
	case devclass.Term:
		// No legal call path currently enqueues TERM (termdev.Request
		// always returns DEV_INVALID), but the case is kept so a future
		// terminal implementation only has to change termdev, not the
		// dispatcher, and so the illegal-class default below stays
		// reachable only via an actually-illegal class.
		unitNum = -1
	default:
		// SUPPLEMENTED FEATURES #3 in SPEC_FULL.md: an illegal device
		// class in the queue is a guest bug, reproduced even though no
		// legal path currently enqueues one.
		simtrap.UsrAssert(s.log, "illegal device number %v in event queue, index %d", dev, s.queue.Head())
	}

	if unitNum == -1 {
		return
	}

	// waiting = 0 is reset even on terminal input events; the original
	// flags this as uncertain with a "??" comment. Preserved here.
	s.waiting = false

	handler := s.vec.Get(dev)
	if handler == nil {
		simtrap.UsrAssert(s.log, "IntVec contains NULL handle for interrupt %v", dev)
	}
	handler(dev, unitNum)
}
