// Package evqueue implements the simulator's future-event queue: a
// fixed 256-slot ring indexed by a rotating head, with a priority
// reshuffle on insertion so that colliding events land on the earliest
// tick their priority allows.
//
// Grounded on original_source/usloss/src/devices.c (dev_event_queue,
// schedule_int, dispatch_int): the ring size, the physical-index
// arithmetic, and the swap loop below are a direct Go transliteration of
// that file's logic, not a container/heap or container/ring dressing-up
// of it — a heap would reorder by priority across all ticks, which is not
// what schedule_int does; it only ever compares the slot it is looking at.
package evqueue

import "github.com/usloss-go/simkernel/internal/devclass"

// size is fixed at the domain of uint8. Do not change: the wrap-around
// arithmetic in Schedule and the head advance in PopCurrent both depend on
// it being exactly 256.
const size = 256

// Slot is one ring entry: a device class and its opaque argument. The zero
// value is not a valid empty slot; use devclass.LowPri explicitly (see
// New).
type Slot struct {
	Device devclass.Class
	Arg    any
}

// Queue is the 256-slot ring. The zero value is not usable; construct with
// New.
type Queue struct {
	slots [size]Slot
	head  uint8
}

// New returns an empty queue: every slot holds devclass.LowPri and head is
// 0.
func New() *Queue {
	q := &Queue{}
	q.Reset()
	return q
}

// Reset empties the queue in place: every slot returns to devclass.LowPri
// and head returns to 0. Devices that captured this *Queue as a Scheduler
// at construction time keep scheduling into the same instance, unlike
// discarding the queue and building a fresh one.
func (q *Queue) Reset() {
	for i := range q.slots {
		q.slots[i] = Slot{Device: devclass.LowPri}
	}
	q.head = 0
}

// Schedule enqueues an event delay device-phase pulses in the future, 0 <
// delay < 255. It never fails for legal inputs. Callers must keep queue
// depth at or below 255 live events; behavior beyond that is undefined, as
// in the original.
//
// The priority tie-break algorithm (spec.md §4.1): starting at physical
// index head+delay, walk forward while the occupied slot holds a device of
// equal-or-higher priority (numerically <= the event being placed),
// displacing it; the event being carried is swapped into the first slot
// that is LowPri or strictly lower priority, and the displaced event (if
// any) becomes the new event to place, repeating until a LowPri slot
// absorbs it. This terminates because each swap moves a real event
// strictly forward in ring order, and there are at most 255 real events.
func (q *Queue) Schedule(device devclass.Class, arg any, delay uint8) {
	index := q.head + delay
	for {
		for q.slots[index].Device <= device {
			index++
		}
		displacedDevice := q.slots[index].Device
		displacedArg := q.slots[index].Arg
		q.slots[index].Device = device
		q.slots[index].Arg = arg
		device = displacedDevice
		arg = displacedArg
		if displacedDevice == devclass.LowPri {
			return
		}
	}
}

// PopCurrent advances head by one and returns the event now sitting at the
// new head, resetting that slot to the empty (LowPri, nil) value. Called
// by the dispatcher once per device phase, never during a clock phase.
func (q *Queue) PopCurrent() (devclass.Class, any) {
	q.head++
	dev := q.slots[q.head].Device
	arg := q.slots[q.head].Arg
	q.slots[q.head].Device = devclass.LowPri
	q.slots[q.head].Arg = nil
	return dev, arg
}

// Head returns the queue's current rotating head index, exposed for tests
// and for diagnostics in cmd/simmonitor.
func (q *Queue) Head() uint8 { return q.head }

// PeekAt returns the slot at logical offset k from head without consuming
// it, for introspection only (cmd/simmonitor uses this to print the
// upcoming event table).
func (q *Queue) PeekAt(k uint8) Slot {
	return q.slots[q.head+k]
}
