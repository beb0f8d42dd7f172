// Command knots generates, stores and displays parametric knot curves.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/knots/dtw"
	"github.com/katalvlaran/knots/export"
	"github.com/katalvlaran/knots/knot"
	"github.com/katalvlaran/knots/manifest"
	"github.com/katalvlaran/knots/store"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// errBadFlag marks a flag value the command cannot use.
var errBadFlag = errors.New("invalid flag value")

// errNameClash marks a batch whose curves would save to the same file.
var errNameClash = errors.New("duplicate curve name")

// userErrors are failures caused by input rather than the environment.
var userErrors = []error{
	errBadFlag,
	errNameClash,
	knot.ErrInvalidParameter,
	knot.ErrUnsupportedVariant,
	knot.ErrUninitialized,
	store.ErrNotFound,
	manifest.ErrUnknownKind,
	manifest.ErrBadField,
	export.ErrMalformedRow,
	dtw.ErrBadInput,
	dtw.ErrEmptyInput,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "knots:", err)
		return exitCode(err)
	}

	return exitSuccess
}

func exitCode(err error) int {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return exitUserError
		}
	}

	return exitSysError
}
