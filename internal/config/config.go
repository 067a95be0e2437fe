// Released under an MIT license. See LICENSE.

// Package config parses shaka-scheme's command-line invocation, the way
// the teacher's internal/system/options package parses oh's.
package config

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

const usage = `shaka-scheme

Usage:
  shaka [-i] SCRIPT
  shaka -c COMMAND
  shaka [-i]
  shaka -h
  shaka -v

Arguments:
  SCRIPT      Path to a file of VM instruction datums to load and run.

Options:
  -c, --command=COMMAND  Read and run a single instruction datum.
  -i, --interactive      Force interactive mode, even if stdin is not a TTY.
  -h, --help             Display this help.
  -v, --version          Accepted, but no version is printed.

If stdin is a TTY and no SCRIPT or --command expression was given, the
REPL runs interactively with line editing and history.
`

// Options holds the host's resolved command-line configuration.
type Options struct {
	Script      string
	Command     string
	Interactive bool
}

// Parse parses os.Args according to usage and resolves interactivity the
// same way the teacher's options.Parse does: explicit flags take
// priority, otherwise a TTY stdin with no script or --command turns it
// on.
func Parse() (*Options, error) {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		return nil, err
	}

	o := &Options{}

	o.Script, _ = opts.String("SCRIPT")
	o.Command, _ = opts.String("--command")

	forced, _ := opts.Bool("--interactive")

	o.Interactive = forced || (o.Script == "" && o.Command == "" && isatty.IsTerminal(os.Stdin.Fd()))

	return o, nil
}
