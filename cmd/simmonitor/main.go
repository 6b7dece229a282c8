// Command simmonitor is an interactive debug console attached to a
// running Simulator. It is ambient developer tooling — grounded on the
// teacher's debug_monitor.go/debug_commands.go command-loop shape — and
// is not the guest-facing command-line driver spec.md scopes out: it
// never drives a guest kernel, it only lets a developer poke the
// simulator's disk/clock/event-queue state by hand.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/usloss-go/simkernel/internal/sim"
	"github.com/usloss-go/simkernel/internal/simconfig"
	"github.com/usloss-go/simkernel/internal/simlog"
)

func main() {
	cfg := simconfig.Config{DiskDir: "."}

	root := &cobra.Command{
		Use:   "simmonitor",
		Short: "Interactive debug console for the device simulation core",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []sim.Option{sim.WithDiskDir(cfg.DiskDir)}
			if !cfg.Verbose {
				opts = append(opts, sim.WithLogger(simlog.Discard()))
			}
			s, err := sim.New(opts...)
			if err != nil {
				return fmt.Errorf("simmonitor: %w", err)
			}
			defer s.Close()

			mon := newMonitor(s)
			return mon.Run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	root.Flags().StringVar(&cfg.DiskDir, "disk-dir", ".", "directory containing disk0, disk1, ... backing files")
	root.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "log console notices to stderr")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
