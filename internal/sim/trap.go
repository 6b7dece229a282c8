package sim

import "github.com/usloss-go/simkernel/internal/simtrap"

// TrapError is re-exported from internal/simtrap so callers recovering
// from a panicking Tick/Input/Output only need to import package sim.
// See spec.md §7 for the three-taxonomy error model this implements.
type TrapError = simtrap.TrapError

const (
	UserTrap   = simtrap.UserTrap
	SystemTrap = simtrap.SystemTrap
)
