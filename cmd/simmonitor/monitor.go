package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/usloss-go/simkernel/internal/devclass"
	"github.com/usloss-go/simkernel/internal/devstatus"
	"github.com/usloss-go/simkernel/internal/disk"
	"github.com/usloss-go/simkernel/internal/sim"
	"github.com/usloss-go/simkernel/internal/termdev"
)

// monitor is the command-loop state, mirroring the shape of the
// teacher's MachineMonitor (one struct holding the thing being
// inspected, dispatched by a single ExecuteCommand-style switch) without
// the video/audio-specific fields that don't apply here.
type monitor struct {
	sim *sim.Simulator
}

func newMonitor(s *sim.Simulator) *monitor {
	s.Vec().Set(devclass.Clock, func(devclass.Class, any) {})
	s.Vec().Set(devclass.Disk, func(devclass.Class, any) {})
	s.Mode().EnterKernelMode()
	return &monitor{sim: s}
}

// Run reads commands from r, one per line, writing results to w, until
// "quit" or EOF.
func (m *monitor) Run(r io.Reader, w io.Writer) error {
	fmt.Fprintln(w, "simmonitor: type 'help' for commands")
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if !m.execute(strings.TrimSpace(scanner.Text()), w) {
			return nil
		}
	}
}

// execute runs one command line and returns false if the loop should
// stop.
func (m *monitor) execute(line string, w io.Writer) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	switch fields[0] {
	case "help", "?":
		m.cmdHelp(w)
	case "tick":
		m.cmdTick(fields, w)
	case "status":
		m.cmdStatus(fields, w)
	case "seek":
		m.cmdSeek(fields, w)
	case "queue":
		m.cmdQueue(w)
	case "interactive":
		m.cmdInteractive(w)
	case "quit", "exit", "q":
		return false
	default:
		fmt.Fprintf(w, "unknown command %q (try 'help')\n", fields[0])
	}
	return true
}

func (m *monitor) cmdHelp(w io.Writer) {
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  tick [n]           advance n pulses (default 1)")
	fmt.Fprintln(w, "  status DISK unit   print a device's current status")
	fmt.Fprintln(w, "  seek unit track    issue a DISK SEEK request")
	fmt.Fprintln(w, "  queue              print the upcoming 8 event-queue slots")
	fmt.Fprintln(w, "  interactive        one tick per keystroke, 'q' to stop (raw mode)")
	fmt.Fprintln(w, "  quit")
}

func (m *monitor) cmdTick(fields []string, w io.Writer) {
	n := 1
	if len(fields) > 1 {
		parsed, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Fprintf(w, "bad tick count %q\n", fields[1])
			return
		}
		n = parsed
	}
	for i := 0; i < n; i++ {
		m.sim.Tick()
	}
	fmt.Fprintf(w, "advanced %d pulse(s)\n", n)
}

func (m *monitor) cmdStatus(fields []string, w io.Writer) {
	if len(fields) != 3 {
		fmt.Fprintln(w, "usage: status DISK|CLOCK|ALARM|TERM unit")
		return
	}
	dev, ok := devclass.Parse(fields[1])
	if !ok {
		fmt.Fprintf(w, "unknown device class %q\n", fields[1])
		return
	}
	unit, err := strconv.Atoi(fields[2])
	if err != nil {
		fmt.Fprintf(w, "bad unit %q\n", fields[2])
		return
	}
	status, result := m.sim.Facade().Input(dev, unit)
	if result != devstatus.OK {
		fmt.Fprintf(w, "%v\n", result)
		return
	}
	fmt.Fprintf(w, "%v\n", status)
}

func (m *monitor) cmdSeek(fields []string, w io.Writer) {
	if len(fields) != 3 {
		fmt.Fprintln(w, "usage: seek unit track")
		return
	}
	unit, err1 := strconv.Atoi(fields[1])
	track, err2 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil {
		fmt.Fprintln(w, "usage: seek unit track (both integers)")
		return
	}
	result := m.sim.Facade().Output(devclass.Disk, unit, disk.Request{Opr: disk.Seek, Reg1: track})
	fmt.Fprintf(w, "%v\n", result)
}

func (m *monitor) cmdQueue(w io.Writer) {
	q := m.sim.Queue()
	fmt.Fprintf(w, "head=%d\n", q.Head())
	for k := uint8(0); k < 8; k++ {
		slot := q.PeekAt(k)
		if slot.Device == devclass.LowPri {
			continue
		}
		fmt.Fprintf(w, "  +%d: %v arg=%v\n", k, slot.Device, slot.Arg)
	}
}

// cmdInteractive demonstrates termdev.HostAdapter: while stdin is a real
// terminal, each keystroke advances the dispatcher by one pulse until
// 'q' is pressed. When stdin isn't a tty (e.g. when piped), raw mode is
// skipped and each byte read from stdin advances one pulse instead.
func (m *monitor) cmdInteractive(w io.Writer) {
	adapter := termdev.NewHostAdapter()
	if err := adapter.Start(); err != nil {
		fmt.Fprintln(w, err)
		return
	}
	defer adapter.Stop()

	fmt.Fprintln(w, "interactive mode: each keystroke = one pulse, 'q' to stop")
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return
		}
		if buf[0] == 'q' {
			return
		}
		m.sim.Tick()
		fmt.Fprint(w, ".")
	}
}
