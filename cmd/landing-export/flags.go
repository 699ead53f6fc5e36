package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// exportFlags holds all flags for the export command.
type exportFlags struct {
	output   string
	optimize bool
	maxWidth int
	quality  float64
	workers  int
	verbose  bool
	version  bool
}

// parseFlags parses command-line arguments and returns the flags plus
// remaining positional arguments.
func parseFlags(args []string) (*exportFlags, []string, error) {
	f := &exportFlags{}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.StringVarP(&f.output, "out", "o", "", "output archive path (default <sanitized title>.zip)")
	fs.BoolVar(&f.optimize, "optimize", false, "re-encode and downscale embedded images")
	fs.IntVar(&f.maxWidth, "max-width", 0, "maximum image width in pixels (default 1600)")
	fs.Float64Var(&f.quality, "quality", 0, "image encoder quality in (0,1] (default 0.82)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "concurrent image workers (default 4)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log export progress to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: landing-export [flags] <document.yaml>\n\nFlags:\n%s", fs.FlagUsages())
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
