// Package main provides the hawkspec binary: it converts raw tables and computes
// Hawking spectra for the holes listed in a config file.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "hawkspec"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:          appName,
		Short:        "Hawking radiation spectra",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Disable logging")

	newLogger := func() l.Wrapper {
		if quiet {
			return l.NewNopLoggerWrapper()
		}

		return l.NewConsoleLoggerWrapper()
	}

	cmd.AddCommand(runCmd(newLogger), convertCmd(newLogger), initConfigCmd(), &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}
