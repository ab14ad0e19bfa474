package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

var (
	capacities = []int{15, 31, 63, 127, 255, 1022, 4094}
	formats    = []string{"text", "json", "gob", "msgp", "cbor", "yaml"}
	cases      = []string{"", "upper", "lower"}
)

var errHelp = errors.New("help requested")

// config holds the parsed command-line arguments.
type config struct {
	capacity    int
	strict      bool
	trim        bool
	letterCase  string
	format      string
	db          string
	metricsFile string
	workers     int
	verbose     bool

	files []string
}

func parseConfig(args []string, stderr io.Writer) (*config, error) {
	var cfg config

	flagSet := pflag.NewFlagSet("strbuf", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() { printUsage(stderr, flagSet) }
	flagSet.IntVarP(&cfg.capacity, "capacity", "c", 63, "buffer capacity in bytes, one of "+joinInts(capacities))
	flagSet.BoolVar(&cfg.strict, "strict", false, "fail on lines that don't fit instead of truncating them")
	flagSet.BoolVar(&cfg.trim, "trim", false, "trim white space around each line")
	flagSet.StringVar(&cfg.letterCase, "case", "", "map ASCII letters to upper or lower case")
	flagSet.StringVarP(&cfg.format, "format", "f", "text", "output format, one of "+strings.Join(formats, ", "))
	flagSet.StringVar(&cfg.db, "db", "", "also store lines into this SQLite database")
	flagSet.StringVar(&cfg.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	flagSet.IntVarP(&cfg.workers, "workers", "w", 4, "number of files read concurrently")
	flagSet.BoolVarP(&cfg.verbose, "verbose", "v", false, "log every line")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, errHelp
		}
		return nil, err
	}

	if !slices.Contains(capacities, cfg.capacity) {
		return nil, fmt.Errorf("capacity must be one of %s, got %d", joinInts(capacities), cfg.capacity)
	}
	if !slices.Contains(formats, cfg.format) {
		return nil, fmt.Errorf("format must be one of %s, got %q", strings.Join(formats, ", "), cfg.format)
	}
	if !slices.Contains(cases, cfg.letterCase) {
		return nil, fmt.Errorf("case must be upper or lower, got %q", cfg.letterCase)
	}
	if cfg.workers < 1 {
		return nil, errors.New("workers can't be < 1")
	}

	cfg.files = flagSet.Args()

	return &cfg, nil
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `strbuf loads lines of text into fixed-capacity buffers and prints them.

Lines longer than the capacity are cut on a character boundary, or rejected
with --strict. Input is read from the files given as arguments, or from
standard input if there are none.

Usage:
  strbuf [flags] [file...]

Flags:
%s`, flagSet.FlagUsages())
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
