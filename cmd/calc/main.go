package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mattn/calc"
	"github.com/spf13/cobra"
)

var errFailed = errors.New("evaluation failed")

type options struct {
	expr      bool
	skipSpace bool
	rpn       bool
	verbose   bool
	logFile   string
	noColor   bool
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "calc [file]",
		Short: "Evaluate arithmetic expressions",
		Long: `calc evaluates infix arithmetic expressions with + - * / % ^ and
parentheses.

With no arguments it reads one expression per line from standard input,
showing a prompt when standard input is a terminal. An empty line ends the
prompt; piped input and files are evaluated to the end, skipping blank
lines. With -e every argument is evaluated as an expression.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.expr {
				return cobra.MinimumNArgs(1)(cmd, args)
			}
			return cobra.MaximumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &opts)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.expr, "expr", "e", false, "evaluate the arguments as expressions")
	f.BoolVar(&opts.skipSpace, "skip-space", false, "skip whitespace instead of ending the expression at it")
	f.BoolVar(&opts.rpn, "rpn", false, "also print the postfix form of each expression")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "trace each evaluation stage on stderr")
	f.StringVar(&opts.logFile, "log-file", "", "append JSON trace records to this file")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	if opts.noColor {
		color.NoColor = true
	}

	var logOut io.Writer
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose, logOut)

	sh := &shell{
		calc: calc.New(
			calc.WithSkipSpace(opts.skipSpace),
			calc.WithLogger(logger),
		),
		out: cmd.OutOrStdout(),
		rpn: opts.rpn,
	}

	if opts.expr {
		ok := true
		for _, arg := range args {
			ok = sh.eval(arg) && ok
		}
		if !ok {
			return errFailed
		}
		return nil
	}

	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		return sh.batch(f)
	}

	in := cmd.InOrStdin()
	if in == os.Stdin && isTerminal(os.Stdin.Fd()) {
		return sh.repl()
	}
	return sh.batch(in)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if err != errFailed {
			log.Fatal(err)
		}
		os.Exit(1)
	}
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("calc: ")
}
