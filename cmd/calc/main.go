package main

// This is an evaluator for integer arithmetic expressions written in Go.

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/ltungv/calc/internal/calc"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 64
	exitDataErr  = 65
	exitSoftware = 70
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run evaluates every expression in args and returns the process exit status.
// Syntax errors take precedence over evaluation errors when both happened.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("calc", flag.ContinueOnError)
	flags.SetOutput(stderr)
	printAst := flags.Bool("ast", false, "print the syntax tree instead of evaluating it")
	dumpAst := flags.Bool("dump", false, "dump the structure of the syntax tree to stderr")
	workers := flags.Int("j", runtime.NumCPU(), "maximum number of expressions evaluated at once")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: calc [-ast] [-dump] [-j N] expression...")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return exitUsage
	}

	reporter := calc.NewSimpleReporter(stderr)
	if *printAst || *dumpAst {
		runCompile(flags.Args(), stdout, stderr, reporter, *printAst, *dumpAst)
	} else if err := runEval(flags.Args(), *workers, stdout, reporter); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	if reporter.HadError() {
		return exitDataErr
	}
	if reporter.HadRuntimeError() {
		return exitSoftware
	}
	return exitOK
}

func runEval(srcs []string, workers int, stdout io.Writer, reporter calc.Reporter) error {
	results, err := calc.EvalAll(context.Background(), srcs, workers)
	if err != nil {
		return err
	}
	for _, result := range results {
		if result.Err != nil {
			reporter.Report(result.Err)
			continue
		}
		fmt.Fprintln(stdout, result.Val)
	}
	return nil
}

func runCompile(
	srcs []string,
	stdout io.Writer,
	stderr io.Writer,
	reporter calc.Reporter,
	printAst bool,
	dumpAst bool,
) {
	printer := calc.AstPrinter{}
	dumper := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableMethods:          true,
	}
	for i, src := range srcs {
		expr, err := calc.Compile(src)
		if err != nil {
			reporter.Report(errors.Wrapf(err, "expression %d", i+1))
			continue
		}
		if dumpAst {
			dumper.Fdump(stderr, expr)
		}
		if printAst {
			fmt.Fprintln(stdout, printer.Print(expr))
		}
	}
}
