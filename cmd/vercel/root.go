package main

import (
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	"github.com/conn-castle/vercel-installer/internal/messages"
)

// newLogger returns the step logger for a command run. Only warnings reach
// stderr unless verbose is set.
func newLogger(stderr io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return &log.Logger{Handler: cli.New(stderr), Level: level}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, messages.RootFlagVerbose)

	logger := func(c *cobra.Command) *log.Logger {
		return newLogger(c.ErrOrStderr(), verbose)
	}
	cmd.AddCommand(
		newInstallCmd(logger),
		newRuntimesCmd(),
		newDoctorCmd(),
	)
	return cmd
}
