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
		Use:   "simscript <scenario.lua>",
		Short: "Run a Lua scenario script against the device simulation core",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []sim.Option{sim.WithDiskDir(cfg.DiskDir)}
			if !cfg.Verbose {
				opts = append(opts, sim.WithLogger(simlog.Discard()))
			}
			s, err := sim.New(opts...)
			if err != nil {
				return fmt.Errorf("simscript: %w", err)
			}
			defer s.Close()

			r := newRunner(s)
			defer r.Close()
			return r.RunFile(args[0])
		},
	}
	root.Flags().StringVar(&cfg.DiskDir, "disk-dir", ".", "directory containing disk0, disk1, ... backing files")
	root.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "log console notices to stderr")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
