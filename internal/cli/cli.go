// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/snesgoanalyzer/internal/options"
)

// ParseFlags parses command line flags and returns program and analysis options
func ParseFlags() (options.Program, options.Analysis, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	analysisOptions := options.NewAnalysis()
	readOptionFlags(flags, &opts)
	readAnalysisOptionFlags(flags, &analysisOptions)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "") {
		return opts, analysisOptions, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, analysisOptions, err
	}

	if err := normalizeOptions(&opts, &analysisOptions); err != nil {
		return opts, analysisOptions, err
	}

	if opts.Batch == "" {
		opts.Input = args[0]
	}

	return opts, analysisOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: snesgoanalyzer [options] <ROM file to analyze>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to analyze, please pass the file to analyze as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program, analysisOptions *options.Analysis) error {
	opts.Mapping = strings.ToLower(opts.Mapping)
	switch opts.Mapping {
	case "", "auto", "lorom", "hirom":
	default:
		return fmt.Errorf("unsupported mapping mode: %s. Valid options: auto, lorom, hirom",
			opts.Mapping)
	}

	analysisOptions.TextEncoding = strings.ToLower(analysisOptions.TextEncoding)
	switch analysisOptions.TextEncoding {
	case "ascii", "shiftjis":
	default:
		return fmt.Errorf("unsupported text encoding: %s. Valid options: ascii, shiftjis",
			analysisOptions.TextEncoding)
	}

	if analysisOptions.Window < 32 || analysisOptions.Window&(analysisOptions.Window-1) != 0 {
		return fmt.Errorf("invalid window size %d, it has to be a power of two of at least 32",
			analysisOptions.Window)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask, for example *.sfc")
	flags.StringVar(&opts.Mapping, "mapping", "auto", "force the memory mapping mode (auto/lorom/hirom)")
	flags.StringVar(&opts.Memviz, "memviz", "", "name of a DOT file to write the analysis result graph to")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

func readAnalysisOptionFlags(flags *flag.FlagSet, opts *options.Analysis) {
	flags.IntVar(&opts.Window, "window", opts.Window, "classification window size in bytes")
	flags.IntVar(&opts.Workers, "workers", 0, "number of parallel bank workers, 0 uses all CPUs")
	flags.StringVar(&opts.TextEncoding, "text", opts.TextEncoding, "text encoding to detect (ascii/shiftjis)")
	flags.Float64Var(&opts.CompressedEntropyThreshold, "entropy", opts.CompressedEntropyThreshold,
		"entropy threshold above which a window counts as compressed")
}
