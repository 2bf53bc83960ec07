package main

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/fuzzland/tintin/cmd/tintin/root"
)

type exitCoder interface {
	ExitCode() int
}

func main() {
	if err := root.Execute(os.Args[1:]); err != nil {
		// Print a short, single-line error to stderr on failures.
		// Usage is handled by the command itself; no stack traces.
		msg := strings.Join(strings.Fields(err.Error()), " ")
		if msg == "" {
			msg = "error"
		}
		_, _ = color.New(color.FgRed).Fprintln(os.Stderr, msg)
		code := 1
		if ec, ok := err.(exitCoder); ok {
			if c := ec.ExitCode(); c != 0 {
				code = c
			}
		}
		os.Exit(code)
	}
}
