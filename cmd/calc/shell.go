package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/calc"
	"github.com/peterh/liner"
)

var (
	resultColor = color.New(color.FgGreen)
	errorColor  = color.New(color.FgRed)
	rpnColor    = color.New(color.FgCyan)
)

type shell struct {
	calc *calc.Calculator
	out  io.Writer
	rpn  bool
}

// eval prints the result of one expression and reports whether it succeeded.
func (sh *shell) eval(input string) bool {
	if sh.rpn {
		if ts, err := sh.calc.Postfix(input); err == nil {
			rpnColor.Fprintf(sh.out, "  %v\n", ts)
		}
	}
	v, err := sh.calc.Calculate(input)
	if err != nil {
		errorColor.Fprintf(sh.out, "Error: %v\n", err)
		return false
	}
	resultColor.Fprintf(sh.out, "= %v\n", v)
	return true
}

// batch evaluates every non-blank line of r.
func (sh *shell) batch(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		sh.eval(line)
	}
	return scanner.Err()
}

// repl prompts until an empty line, EOF or Ctrl-C.
func (sh *shell) repl() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				return nil
			}
			return err
		}
		if strings.TrimSpace(input) == "" {
			return nil
		}
		line.AppendHistory(input)
		sh.eval(input)
	}
}
