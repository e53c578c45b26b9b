// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"primercalc-core/primer"
	"primercalc/internal/cli"
	"primercalc/internal/cmdutil"
	"primercalc/internal/output"
	"primercalc/internal/shell"
	"primercalc/internal/version"
	"primercalc/internal/writers"
)

// Exit codes
const (
	ExitOK          = 0
	ExitInput       = 1
	ExitUsage       = 2
	ExitWrite       = 3
	ExitInterrupted = 130
)

// RunContext parses argv and either evaluates the primer given on the
// command line or runs the interactive prompt on stdin.
func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	flush := func(code int) int {
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return ExitOK
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return ExitWrite
		}
		return code
	}

	fs := cli.NewFlagSet("primer-calc")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flush(ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flush(ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "primer-calc version %s\n", version.Version)
		return flush(ExitOK)
	}

	var dst io.Writer = outw
	if opts.Output == cli.OutputJSONL {
		dst = stdout // the JSONL writer buffers and flushes per line itself
	}
	w, err := writers.New(opts.Output, dst, output.Options{RevComp: opts.RevComp})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	emit := func(r primer.Record) error {
		cmdutil.WarnRecord(stderr, opts.Quiet, r)
		if err := w.Write(r); err != nil {
			return fmt.Errorf("%w: %w", errWrite, err)
		}
		return nil
	}

	if !opts.Interactive() {
		err = emit(primer.Parse(opts.Name, opts.Sequence))
	} else {
		// Keep stdout machine-readable for json/jsonl.
		var prompt io.Writer = outw
		if opts.Output != cli.OutputText {
			prompt = stderr
		}
		_, err = shell.Run(parent, shell.Config{In: stdin, Prompt: prompt, Emit: emit})
	}
	if cerr := w.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("%w: %w", errWrite, cerr)
	}

	switch {
	case err == nil:
		return flush(ExitOK)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		_ = flush(ExitOK)
		return ExitInterrupted
	case writers.IsBrokenPipe(err):
		return ExitOK
	}
	_, _ = fmt.Fprintln(stderr, err)
	code := ExitInput
	if errors.Is(err, errWrite) {
		code = ExitWrite
	}
	return flush(code)
}

var errWrite = errors.New("write output")

// Run is RunContext without cancellation.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}
