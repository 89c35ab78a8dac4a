// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"genetag/internal/cli"
	"genetag/internal/config"
	"genetag/internal/errs"
	"genetag/internal/logging"
	"genetag/internal/rewrite"
	"genetag/internal/writers"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitUsage     = 2
	ExitIO        = 3 // input missing, output not creatable or not writable
	ExitParse     = 4
	ExitCancelled = 130
)

// RunContext executes genetag with argv and returns the process exit code.
// Output "-" goes to stdout; logs and errors go to stderr.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := cli.NewRootCommand(config.New(), func(cmd *cobra.Command, c config.Config) error {
		log := logging.New(stderr, logging.Options{Level: c.LogLevel, Quiet: c.Quiet, Verbose: c.Verbose})
		defer func() { _ = log.Sync() }()

		fo := c.FileOptions()
		fo.Stdout = stdout
		st, err := rewrite.File(cmd.Context(), fo, log)
		if err != nil {
			log.Debug("run stopped", zap.Error(err), zap.Int("records_written", st.Records))
		}
		return err
	})
	if argv == nil {
		argv = []string{}
	}
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(parent)
	code := ExitCode(err)
	switch code {
	case ExitOK, ExitCancelled:
	case ExitUsage:
		_, _ = fmt.Fprintf(stderr, "%s: %v\nRun '%s --help' for usage.\n", cmd.Name(), err, cmd.Name())
	default:
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", cmd.Name(), err)
	}
	return code
}

// Run is RunContext without cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// ExitCode maps a run error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case writers.IsBrokenPipe(err):
		// downstream (e.g. head) stopped reading
		return ExitOK
	case cli.IsUsage(err):
		return ExitUsage
	case errors.Is(err, context.Canceled):
		return ExitCancelled
	case errors.Is(err, errs.ErrParse):
		return ExitParse
	case errors.Is(err, errs.ErrFileNotFound), errors.Is(err, errs.ErrWrite):
		return ExitIO
	}
	return ExitFailure
}
