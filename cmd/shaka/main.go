// Released under an MIT license. See LICENSE.

// Command shaka is a thin REPL host over the lexer, parser, and VM: it
// reads one datum at a time, runs it through the VM when it looks like
// an instruction list, and otherwise prints what the reader produced.
// Compiling ordinary Scheme source into VM instructions is outside this
// repository's scope, so the host speaks the VM's own assembly form.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/peterh/liner"

	"github.com/Mortrax/shaka-scheme/internal/config"
	"github.com/Mortrax/shaka-scheme/internal/datum"
	"github.com/Mortrax/shaka-scheme/internal/env"
	"github.com/Mortrax/shaka-scheme/internal/lexer"
	"github.com/Mortrax/shaka-scheme/internal/parser"
	"github.com/Mortrax/shaka-scheme/internal/report"
	"github.com/Mortrax/shaka-scheme/internal/vm"
)

//nolint:gochecknoglobals
var opcodes = map[string]bool{
	"halt": true, "refer": true, "constant": true, "close": true,
	"test": true, "assign": true, "conti": true, "nuate": true,
	"frame": true, "argument": true, "apply": true, "return": true,
}

func main() {
	opts, err := config.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := report.Named("shaka")
	global := env.New()

	// SIGINT cancels ctx instead of killing the process outright, so a
	// VM loop mid-evaluation gets to unwind through Run's between-step
	// check rather than being torn down underneath its registers.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case opts.Command != "":
		runText(ctx, global, opts.Command, log)
	case opts.Script != "":
		runFile(ctx, global, opts.Script, log)
	case opts.Interactive:
		repl(ctx, global, log)
	default:
		runStdin(ctx, global, log)
	}
}

// runOne parses exactly one datum from p and, if it is a recognized
// instruction list, runs it on the VM; otherwise it echoes the datum the
// reader produced. It returns the parser's result so callers can react
// to Incomplete (more text needed), a #!directive, or a reported error.
func runOne(ctx context.Context, p *parser.T, e *env.T, log *report.Logger) parser.Result {
	result := p.ParseDatum()

	switch result.Kind {
	case parser.KindComplete:
		evalPrint(ctx, e, result.Datum, log)
	case parser.KindIncomplete:
	case parser.KindDirective:
	default:
		log.Errorf("%v", result.Err)
	}

	return result
}

// isQuit reports whether result is the #!quit directive, the only one
// the host acts on; other directives (e.g. #!fold-case) are read and
// logged but otherwise ignored.
func isQuit(result parser.Result) bool {
	return result.Kind == parser.KindDirective && result.Directive == "quit"
}

func evalPrint(ctx context.Context, e *env.T, d datum.Value, log *report.Logger) {
	if isInstruction(d) {
		m := vm.New(d, e)

		v, err := m.Run(ctx)
		if err != nil {
			log.Errorf("%v", err)
			return
		}

		fmt.Println(v)

		return
	}

	fmt.Println(d)
}

func isInstruction(d datum.Value) bool {
	if !datum.IsPair(d) {
		return false
	}

	head, err := datum.Car(d)
	if err != nil {
		return false
	}

	s, ok := head.(*datum.Symbol)

	return ok && opcodes[string(*s)]
}

func runText(ctx context.Context, e *env.T, text string, log *report.Logger) {
	p := parser.New(lexer.New(text))

	if isQuit(runOne(ctx, p, e, log)) {
		os.Exit(0)
	}
}

func runFile(ctx context.Context, e *env.T, path string, log *report.Logger) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	p := parser.New(lexer.New(string(data)))

	for {
		result := runOne(ctx, p, e, log)
		if isQuit(result) {
			return
		}

		if result.Kind != parser.KindComplete && result.Kind != parser.KindDirective {
			return
		}
	}
}

func runStdin(ctx context.Context, e *env.T, log *report.Logger) {
	scanner := bufio.NewScanner(os.Stdin)

	lx := lexer.New("")
	p := parser.New(lx)

	var buf string

	for scanner.Scan() {
		buf += scanner.Text() + "\n"
		lx.Reset(buf)

		result := runOne(ctx, p, e, log)
		if isQuit(result) {
			return
		}

		if result.Kind != parser.KindIncomplete {
			buf = ""
		}
	}
}

// repl is shaka-scheme's interactive front end: liner line editing, a
// history file in the user's cache directory, and the same
// retry-on-Incomplete loop runStdin uses, per the "Incomplete" parser
// contract — a line that does not yet form a complete datum is held and
// more input is appended to it rather than reported as an error. Each
// retry re-scans the growing buffer in place with lx.Reset rather than
// allocating a fresh lexer and parser per attempt.
func repl(ctx context.Context, e *env.T, log *report.Logger) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	histPath := historyPath()

	if f, err := os.Open(histPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	lx := lexer.New("")
	p := parser.New(lx)

	var buf string

	for {
		prompt := "scheme> "
		if buf != "" {
			prompt = "      > "
		}

		text, err := line.Prompt(prompt)
		if err != nil {
			break
		}

		line.AppendHistory(text)

		buf += text + "\n"
		lx.Reset(buf)

		result := runOne(ctx, p, e, log)
		if isQuit(result) {
			break
		}

		if result.Kind != parser.KindIncomplete {
			buf = ""
		}
	}

	if f, err := os.Create(histPath); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}

func historyPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}

	return filepath.Join(dir, "shaka-scheme-history")
}
