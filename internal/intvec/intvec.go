// Package intvec implements the interrupt vector table: spec.md §3/§4.5,
// a mapping from device class to a guest-supplied handler.
package intvec

import "github.com/usloss-go/simkernel/internal/devclass"

// Handler is a guest-supplied interrupt handler, invoked by the
// dispatcher with the delivering device class and an opaque unit/arg
// payload.
type Handler func(dev devclass.Class, arg any)

// Table holds one handler slot per device class the guest can install.
type Table struct {
	handlers [4]Handler // indexed by devclass.Class for Clock..Term
}

// New returns an empty vector table; no handlers installed.
func New() *Table {
	return &Table{}
}

// Set installs handler for dev. The guest is expected to do this during
// startup, before the first Tick().
func (t *Table) Set(dev devclass.Class, handler Handler) {
	t.handlers[dev] = handler
}

// Get returns the handler installed for dev, or nil if none was set.
func (t *Table) Get(dev devclass.Class) Handler {
	return t.handlers[dev]
}

// Reset clears every installed handler in place.
func (t *Table) Reset() {
	t.handlers = [4]Handler{}
}
