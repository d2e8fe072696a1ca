// Command lenslab traces, renders and fits optical scenes.
//
// Usage:
//
//	lenslab trace  -scene scene.yaml
//	lenslab render -scene scene.yaml -out scene.png [-helpers]
//	lenslab fit    [-kind auto|lens|mirror] [-stride N] [-display 800x600] [-jobs 4] [-scene out.yaml] image.png...
//
// Every subcommand accepts -v for debug logging on stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/lenslab"
)

var errUsage = errors.New("usage: lenslab <trace|render|fit> [flags]")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "lenslab:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "trace":
		return runTrace(args[1:], stdout, stderr)
	case "render":
		return runRender(args[1:], stdout, stderr)
	case "fit":
		return runFit(args[1:], stdout, stderr)
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}
}

// newFlagSet creates a subcommand flag set with the shared -v flag.
func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log debug messages to stderr")
	return fs, verbose
}

// setupLogging installs a stderr logger when verbose is set. The returned
// function restores the previous logger.
func setupLogging(verbose bool, stderr io.Writer) func() {
	if !verbose {
		return func() {}
	}
	prev := lenslab.Logger()
	lenslab.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return func() { lenslab.SetLogger(prev) }
}
