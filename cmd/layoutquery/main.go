// Command layoutquery runs query scripts against a text layout.
//
// A query script sets a font, a wrap width and a text, then queries the
// layout:
//
//	font "Go Regular" 16
//	width 25            # or: width inf
//	text "piet  text!"
//	lines
//	point 10 3
//	offset 5
//	range 0 7
//
// Each query prints one line per result to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/textlayout"
)

func main() {
	var (
		oracle  = flag.String("oracle", "ximage", "measurement oracle: ximage, shaped, canvas or fixed")
		engine  = flag.String("engine", "grapheme", "hit-test engine: grapheme or cluster")
		verbose = flag.Bool("v", false, "log layout diagnostics to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: layoutquery [flags] script.query\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		textlayout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := runFile(os.Stdout, flag.Arg(0), *oracle, *engine); err != nil {
		log.Fatalf("layoutquery: %v", err)
	}
}

// runFile parses the named script ("-" for stdin) and runs it.
func runFile(out io.Writer, name, oracle, engine string) error {
	var in io.Reader = os.Stdin
	if name != "-" {
		// #nosec G304 -- script path is provided by the user
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	script, err := parseScript(name, in)
	if err != nil {
		return err
	}
	r, err := newRunner(out, oracle, engine)
	if err != nil {
		return err
	}
	return r.run(script)
}
