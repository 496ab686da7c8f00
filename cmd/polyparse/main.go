// Command polyparse is a thin demonstration binary around the polyparse
// library, grounded on the teacher's main.go (stdlib flag package,
// version variables overridable via -ldflags). It is not part of the
// core parser's scope — spec §6 explicitly excludes a CLI from the core
// contract — the same way main.go sits outside the teacher's vm/parser
// package boundary.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mpspoly/polyparse/bytesource"
	"github.com/mpspoly/polyparse/config"
	"github.com/mpspoly/polyparse/diag"
	"github.com/mpspoly/polyparse/poly"
	"github.com/mpspoly/polyparse/polyparse"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		compact     = flag.Bool("compact", false, "Render the parsed polynomial without spaces")
		configPath  = flag.String("config", "", "Path to a polyparse.toml config file (default: platform config dir)")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("polyparse %s (%s)\n", Version, Commit)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	expr, err := readExpression()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := &diag.Context{Sink: newSink(cfg), Alloc: diag.StdAllocator{}}
	p, err := polyparse.ParseWithConfig(ctx, bytesource.FromString(expr), cfg)
	if err != nil {
		os.Exit(1)
	}
	if p == nil {
		fmt.Println("0")
		return
	}

	style := poly.RenderDefault
	if *compact {
		style = poly.RenderCompact
	}
	fmt.Println(p.Render(style))
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

// newSink builds the diagnostic sink main() hands to every parse call.
// Verbose mode timestamps each diagnostic line so a polynomial fed through
// a long-running host process can be correlated against the rest of its
// logs; the quiet default matches NewLogSink's bare "one line per failure".
func newSink(cfg *config.Config) diag.Sink {
	sink := diag.NewLogSink()
	if cfg.Diagnostics.Verbose {
		sink.Logger.SetFlags(log.Ldate | log.Ltime)
	}
	return sink
}

// readExpression takes the polynomial expression from the first
// non-flag argument, or from stdin when none is given.
func readExpression() (string, error) {
	if flag.NArg() > 0 {
		return flag.Arg(0), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
