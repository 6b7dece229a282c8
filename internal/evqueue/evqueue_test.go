package evqueue

import (
	"testing"

	"github.com/usloss-go/simkernel/internal/devclass"
)

// TestScheduleDiskThenAlarmReorders reproduces spec.md §8 scenario 1:
// scheduling DISK then ALARM at the same delay must place the
// higher-priority ALARM on the earlier tick and push DISK out one slot.
func TestScheduleDiskThenAlarmReorders(t *testing.T) {
	q := New()
	q.Schedule(devclass.Disk, "a", 1)
	q.Schedule(devclass.Alarm, "b", 1)

	if got := q.PeekAt(1); got.Device != devclass.Alarm || got.Arg != "b" {
		t.Fatalf("slot 1 = %+v, want (ALARM, b)", got)
	}
	if got := q.PeekAt(2); got.Device != devclass.Disk || got.Arg != "a" {
		t.Fatalf("slot 2 = %+v, want (DISK, a)", got)
	}
}

// TestScheduleSameClassSameDelayIsFIFO reproduces scenario 2: three DISK
// events at the same delay land on consecutive ticks in submission order.
func TestScheduleSameClassSameDelayIsFIFO(t *testing.T) {
	q := New()
	q.Schedule(devclass.Disk, "a", 1)
	q.Schedule(devclass.Disk, "b", 1)
	q.Schedule(devclass.Disk, "c", 1)

	want := []string{"a", "b", "c"}
	for i, w := range want {
		got := q.PeekAt(uint8(i + 1))
		if got.Device != devclass.Disk || got.Arg != w {
			t.Fatalf("slot %d = %+v, want (DISK, %s)", i+1, got, w)
		}
	}
}

// TestPopCurrentAdvancesAndResets exercises scenario 3's final step: after
// popping, the slot is absorbed back to LowPri and head has moved.
func TestPopCurrentAdvancesAndResets(t *testing.T) {
	q := New()
	q.Schedule(devclass.Alarm, "b", 1)
	q.Schedule(devclass.Disk, "a", 1)

	dev, arg := q.PopCurrent()
	if dev != devclass.Alarm || arg != "b" {
		t.Fatalf("PopCurrent = (%v, %v), want (ALARM, b)", dev, arg)
	}
	if q.Head() != 1 {
		t.Fatalf("head = %d, want 1", q.Head())
	}
	if got := q.PeekAt(0); got.Device != devclass.LowPri {
		t.Fatalf("consumed slot = %+v, want LowPri", got)
	}
	// The displaced DISK event should now be at slot 2 (offset 1 from the
	// new head).
	if got := q.PeekAt(1); got.Device != devclass.Disk || got.Arg != "a" {
		t.Fatalf("slot after pop = %+v, want (DISK, a)", got)
	}
}

// TestScheduleWraps verifies the ring wraps across the 256-slot boundary
// using the same swap algorithm, by advancing head near the top of the
// range first.
func TestScheduleWraps(t *testing.T) {
	q := New()
	for i := 0; i < 250; i++ {
		q.PopCurrent()
	}
	q.Schedule(devclass.Disk, 42, 10) // wraps past 255 back to early indices
	if got := q.PeekAt(10); got.Device != devclass.Disk || got.Arg != 42 {
		t.Fatalf("wrapped slot = %+v, want (DISK, 42)", got)
	}
}

// TestScheduleAcrossAllClasses uses the two extreme real classes: a
// higher-priority CLOCK event scheduled for a tick already booked by a
// lower-priority TERM event takes that tick, and the displaced TERM event
// moves forward one slot.
func TestScheduleAcrossAllClasses(t *testing.T) {
	q := New()
	q.Schedule(devclass.Term, "low", 5)
	q.Schedule(devclass.Clock, "high", 5)

	if got := q.PeekAt(5); got.Device != devclass.Clock || got.Arg != "high" {
		t.Fatalf("slot 5 = %+v, want (CLOCK, high)", got)
	}
	if got := q.PeekAt(6); got.Device != devclass.Term || got.Arg != "low" {
		t.Fatalf("slot 6 = %+v, want (TERM, low)", got)
	}
}
