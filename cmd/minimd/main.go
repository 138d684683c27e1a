package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:], DefaultEnv()))
}

// run parses args, executes the command and returns the exit code.
func run(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args, env.Stdout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "minimd: %v\nRun 'minimd --help' for usage.\n", err)
		return ExitUsage
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(maxprocsLogger(flags.common.verbose, env.Stderr)))

	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	err = runCLI(ctx, flags, positional, env)
	if err != nil && !errors.Is(err, ErrBatchFailed) {
		fmt.Fprintf(env.Stderr, "minimd: %v%s%s\n", err, hintFor(err), configHint(err, flags.common.config))
	}
	return exitCodeFor(err)
}

// maxprocsLogger routes automaxprocs messages to w when verbose.
func maxprocsLogger(verbose bool, w io.Writer) func(string, ...any) {
	if !verbose {
		return func(string, ...any) {}
	}
	return func(format string, args ...any) {
		fmt.Fprintf(w, format+"\n", args...)
	}
}
