// Package simconfig holds the small set of values the two cmd/ binaries
// need to construct a Simulator, decoded from flags by cobra/pflag rather
// than a config file — the core is library-shaped and has no persistent
// configuration of its own (spec.md names the command-line driver that
// would own such a file as out of scope).
package simconfig

// Config is shared by cmd/simmonitor and cmd/simscript.
type Config struct {
	// DiskDir is the directory disk backing files live in.
	DiskDir string
	// Verbose enables simlog notice-level output on stderr.
	Verbose bool
}
