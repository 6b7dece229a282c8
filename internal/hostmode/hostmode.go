// Package hostmode stands in for the CPU/trap simulator's user/kernel
// mode bit, named in spec.md §1 as an external collaborator
// (check_kernel_mode) deliberately out of scope here. It is a minimal
// settable flag so internal/facade can gate input()/output() the way the
// original does, without pulling in a CPU simulator.
package hostmode

// Flag tracks whether the simulated CPU is currently in kernel mode. The
// zero value is kernel mode, matching a freshly booted guest kernel.
type Flag struct {
	userMode bool
}

// InKernelMode reports whether the CPU is currently in kernel mode.
func (f *Flag) InKernelMode() bool { return !f.userMode }

// EnterUserMode switches the flag to user mode.
func (f *Flag) EnterUserMode() { f.userMode = true }

// EnterKernelMode switches the flag to kernel mode.
func (f *Flag) EnterKernelMode() { f.userMode = false }
