package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/usloss-go/simkernel/internal/disk"
	"github.com/usloss-go/simkernel/internal/sim"
)

func newTestMonitor(t *testing.T) *monitor {
	t.Helper()
	dir := t.TempDir()
	pattern := make([]byte, 2*disk.TrackSize*disk.SectorSize)
	if err := os.WriteFile(filepath.Join(dir, "disk0"), pattern, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	s, err := sim.New(sim.WithDiskDir(dir))
	if err != nil {
		t.Fatalf("sim.New: %v", err)
	}
	t.Cleanup(s.Close)
	return newMonitor(s)
}

func TestMonitorCommandLoop(t *testing.T) {
	m := newTestMonitor(t)
	var out bytes.Buffer

	script := "status DISK 0\nseek 0 1\ntick 2\nstatus DISK 0\nqueue\nquit\n"
	if err := m.Run(strings.NewReader(script), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "READY") {
		t.Fatalf("expected a READY status in output, got:\n%s", got)
	}
	if !strings.Contains(got, "DEV_OK") {
		t.Fatalf("expected DEV_OK from the seek request, got:\n%s", got)
	}
	if !strings.Contains(got, "advanced 2 pulse(s)") {
		t.Fatalf("expected tick acknowledgement, got:\n%s", got)
	}
}

func TestMonitorUnknownCommand(t *testing.T) {
	m := newTestMonitor(t)
	var out bytes.Buffer
	if err := m.Run(strings.NewReader("bogus\nquit\n"), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("expected unknown-command message, got:\n%s", out.String())
	}
}
