package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	ExitOK             = 0
	ExitUsage          = 1
	ExitInputMissing   = 2
	ExitDirectoryError = 3
	ExitConfigInvalid  = 4
	ExitInputInvalid   = 5
)

// exitError carries the process exit code for a fatal error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

var configFlag string

var rootCmd = &cobra.Command{
	Use:           "appliance-portcfg",
	Short:         "appliance-portcfg bulk updates Meraki MX appliance ports from a CSV file",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return ExitUsage
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "f", "", "Path to settings file (YAML)")
}
