package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/usloss-go/simkernel/internal/disk"
	"github.com/usloss-go/simkernel/internal/sim"
)

func newTestRunner(t *testing.T) *runner {
	t.Helper()
	dir := t.TempDir()
	pattern := make([]byte, 2*disk.TrackSize*disk.SectorSize)
	pattern[0] = 'X'
	if err := os.WriteFile(filepath.Join(dir, "disk0"), pattern, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	s, err := sim.New(sim.WithDiskDir(dir))
	if err != nil {
		t.Fatalf("sim.New: %v", err)
	}
	t.Cleanup(s.Close)
	return newRunner(s)
}

func TestScriptSeekThenWriteThenRead(t *testing.T) {
	r := newTestRunner(t)
	defer r.Close()

	script := filepath.Join(t.TempDir(), "scenario.lua")
	src := `
local rc = sim_seek(0, 1)
assert(rc == "DEV_OK", "seek: " .. rc)
sim_tick(4)

rc = sim_write(0, 0, "hello")
assert(rc == "DEV_OK", "write: " .. rc)
sim_tick(2)

rc, data = sim_read(0, 0)
assert(rc == "DEV_OK", "read: " .. rc)
assert(string.sub(data, 1, 5) == "hello", "round trip mismatch: " .. data)
`
	if err := os.WriteFile(script, []byte(src), 0o600); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if err := r.RunFile(script); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
}

func TestScriptStatusReportsReady(t *testing.T) {
	r := newTestRunner(t)
	defer r.Close()

	script := filepath.Join(t.TempDir(), "status.lua")
	src := `
local status = sim_status("DISK", 0)
assert(status == "READY", "expected READY, got " .. status)
`
	if err := os.WriteFile(script, []byte(src), 0o600); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if err := r.RunFile(script); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
}
