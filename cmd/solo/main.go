// cmd/solo/main.go
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/sghaida/solo/singleton"
)

const (
	exitOK    = 0
	exitUsage = 2
)

// config holds the parsed command line.
type config struct {
	verbose bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	var cfg config
	if args == nil {
		// cobra falls back to os.Args[1:] when handed nil
		args = []string{}
	}

	cmd := newRootCmd(&cfg, stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		// RunE cannot fail, so anything reaching here is a usage problem.
		_, _ = fmt.Fprintln(stderr, "solo:", err)
		_, _ = fmt.Fprintln(stderr, "usage:", cmd.UseLine())
		return exitUsage
	}
	return exitOK
}

func newRootCmd(cfg *config, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "solo",
		Short:         "Check that the process-wide singleton is a single instance",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(*cobra.Command, []string) error {
			restore := configureLogging(*cfg, stderr)
			defer restore()

			_, err := fmt.Fprintln(stdout, sameInstance())
			return err
		},
	}
	cmd.Flags().BoolVarP(&cfg.verbose, "verbose", "v", false, "log instance construction to stderr")
	return cmd
}

// sameInstance asks for the singleton twice and compares the results by identity.
func sameInstance() bool {
	first := singleton.GetInstance()
	second := singleton.GetInstance()

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("solo: compared %s with %s", first, second))
	}
	return first == second
}
