package main

import (
	"os"
	"strings"

	"github.com/flarebyte/hello/cmd/hello/root"
)

type exitCoder interface {
	ExitCode() int
}

func main() {
	if err := root.Execute(os.Args[1:]); err != nil {
		os.Exit(report(err))
	}
}

// report writes err to stderr as one line and returns the exit code to use.
func report(err error) int {
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		msg = "error"
	}
	_, _ = os.Stderr.WriteString(msg + "\n")
	code := 1
	if ec, ok := err.(exitCoder); ok {
		if c := ec.ExitCode(); c != 0 {
			code = c
		}
	}
	return code
}
