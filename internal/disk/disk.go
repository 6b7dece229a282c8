// Package disk implements the host-file-backed disk device: spec.md §4.3.
//
// Grounded on original_source/usloss/src/dev_disk.c for exact semantics
// (the seek-delay "% 10" quirk, read-to-clear status, synchronous host
// I/O inside Action) and on the teacher's file_io.go for the Go idiom of
// a host-file-backed MMIO-style device (os.OpenFile, explicit
// status/error fields, sanitized naming).
package disk

import (
	"fmt"
	"io"
	"os"

	"github.com/usloss-go/simkernel/internal/devclass"
	"github.com/usloss-go/simkernel/internal/devstatus"
	"github.com/usloss-go/simkernel/internal/simlog"
	"github.com/usloss-go/simkernel/internal/simtrap"
)

// Constants that must match legacy behavior (spec.md §6).
const (
	Units      = 2   // DISK_UNITS
	TrackSize  = 16  // DISK_TRACK_SIZE, sectors per track
	SectorSize = 512 // DISK_SECTOR_SIZE, bytes per sector
)

// Op is a disk operation code.
type Op int

const (
	Seek Op = iota
	Read
	Write
	Tracks
)

// Request is one disk request. Reg1 is the track number for Seek, the
// sector number for Read/Write, and is unused for Tracks. Reg2 is the
// sector-sized buffer for Read/Write. TracksOut receives the track count
// for a Tracks request — the Go equivalent of the original's "reg1 is a
// pointer to an int output," kept as its own typed field per the Design
// Notes in spec.md §9 rather than smuggled through an opaque pointer.
type Request struct {
	Opr       Op
	Reg1      int
	Reg2      []byte
	TracksOut *int
}

// Scheduler is the subset of the event queue the disk device needs.
type Scheduler interface {
	Schedule(device devclass.Class, arg any, delay uint8)
}

type unit struct {
	file       *os.File
	present    bool
	tracks     int
	headTrack  int
	status     devstatus.Status
	pending    Request
}

// Device is the disk device: Units independent unit state machines
// sharing one event scheduler.
type Device struct {
	units [Units]unit
	q     Scheduler
	log   simlog.Logger
}

// New constructs a disk device. Init must be called before use.
func New(q Scheduler, log simlog.Logger) *Device {
	if log == nil {
		log = simlog.Discard()
	}
	return &Device{q: q, log: log}
}

// Init attempts to open "disk0", "disk1", ... inside dir. A unit whose
// file is absent, or whose size is not an exact multiple of
// TrackSize*SectorSize, is left/marked absent; a misshapen (but present)
// file additionally gets a console notice, matching spec.md §4.3 and
// original_source/usloss/src/dev_disk.c's disk_init.
func (d *Device) Init(dir string) error {
	for i := range d.units {
		u := &d.units[i]
		*u = unit{status: devstatus.Ready}

		path := fmt.Sprintf("%s/disk%d", dir, i)
		f, err := os.OpenFile(path, os.O_RDWR, 0)
		if err != nil {
			continue // absent unit, not an error
		}
		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("disk: fstat %s: %w", path, err)
		}
		unitSize := int64(TrackSize * SectorSize)
		if info.Size()%unitSize != 0 {
			d.log.Noticef("disk %s has an incomplete last track", path)
			_ = f.Close()
			continue
		}
		u.file = f
		u.present = true
		u.tracks = int(info.Size() / unitSize)
	}
	return nil
}

// Close releases any open backing files. Safe to call even if Init was
// never called or some units are absent.
func (d *Device) Close() {
	for i := range d.units {
		if d.units[i].file != nil {
			_ = d.units[i].file.Close()
			d.units[i].file = nil
		}
	}
}

func (d *Device) valid(unitNum int) bool {
	return unitNum >= 0 && unitNum < Units && d.units[unitNum].present
}

// GetStatus returns DEV_INVALID for an out-of-range or absent unit,
// otherwise the unit's status. Reading an ERROR status clears it back to
// READY (read-to-clear), a semantically important side effect that must
// survive any further abstraction per spec.md §9.
func (d *Device) GetStatus(unitNum int) (devstatus.Status, devstatus.Result) {
	if !d.valid(unitNum) {
		return devstatus.Ready, devstatus.Invalid
	}
	u := &d.units[unitNum]
	status := u.status
	if status == devstatus.ErrorStatus {
		u.status = devstatus.Ready
	}
	return status, devstatus.OK
}

// Request validates the unit, rejects a concurrent request with DEV_BUSY,
// otherwise marks the unit busy, stores the request, and schedules its
// completion via the event queue. See delay for the seek-delay formula.
func (d *Device) Request(unitNum int, req Request) devstatus.Result {
	if !d.valid(unitNum) {
		return devstatus.Invalid
	}
	u := &d.units[unitNum]
	if u.status == devstatus.BusyStatus {
		return devstatus.Busy
	}
	u.status = devstatus.BusyStatus
	u.pending = req
	d.q.Schedule(devclass.Disk, unitNum, delay(u, req))
	return devstatus.OK
}

// delay computes the completion delay for a request. SEEK delay is a
// deliberate, documented quirk of the original simulator: it is
// proportional not to absolute seek distance but to distance modulo 10
// tracks, then clamped to at most 3 device pulses. All other operations
// complete in exactly 1 pulse. This must be reproduced exactly for test
// parity (spec.md §4.3).
func delay(u *unit, req Request) uint8 {
	if req.Opr != Seek {
		return 1
	}
	dist := u.headTrack - req.Reg1
	if dist < 0 {
		dist = -dist
	}
	d := 1 + dist%10
	if d > 3 {
		d = 3
	}
	return uint8(d)
}

// Action performs the actual host I/O for the unit's pending request,
// synchronously, and returns unitNum so the dispatcher delivers a DISK
// interrupt to the guest. Called by the dispatcher at completion time,
// once the scheduled delay has elapsed.
func (d *Device) Action(unitNum int) int {
	u := &d.units[unitNum]
	req := u.pending
	status := devstatus.Ready

	switch req.Opr {
	case Seek:
		if req.Reg1 < 0 || req.Reg1 >= u.tracks {
			status = devstatus.ErrorStatus
		} else {
			u.headTrack = req.Reg1
		}
	case Read, Write:
		if req.Reg1 >= TrackSize {
			status = devstatus.ErrorStatus
		} else {
			seekLoc := int64(u.headTrack*TrackSize+req.Reg1) * SectorSize
			if _, err := u.file.Seek(seekLoc, io.SeekStart); err != nil {
				simtrap.SysAssert(d.log, "error seeking in disk file: %v", err)
			}
			if req.Opr == Write {
				if _, err := u.file.Write(req.Reg2[:SectorSize]); err != nil {
					simtrap.SysAssert(d.log, "error writing to disk file: %v", err)
				}
			} else {
				if _, err := io.ReadFull(u.file, req.Reg2[:SectorSize]); err != nil {
					simtrap.SysAssert(d.log, "error reading from disk file: %v", err)
				}
			}
		}
	case Tracks:
		*req.TracksOut = u.tracks
	default:
		simtrap.UsrAssert(d.log, "illegal disk request operation %v", req.Opr)
	}

	u.status = status
	return unitNum
}
