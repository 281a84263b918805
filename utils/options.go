package utils

import (
	"flag"
	"fmt"
	"strings"
)

type options struct {
	config     string
	program    string
	entry      string
	analyses   string
	dotDir     string
	noColorize bool
	verbose    bool
}

var opts = options{}

func init() {
	flag.StringVar(&opts.config, "config", "", "path of a YAML analysis configuration")
	flag.StringVar(&opts.program, "program", "", "path of the program description to analyze")
	flag.StringVar(&opts.entry, "entry", "", "entry method, as Class.method")
	flag.StringVar(&opts.analyses, "analyses", "", "comma-separated analysis IDs to run")
	flag.StringVar(&opts.dotDir, "dot", "", "directory receiving dot exports of CFGs and the call graph")
	flag.BoolVar(&opts.noColorize, "no-color", false, "disable colorized output")
	flag.BoolVar(&opts.verbose, "verbose", false, "verbose progress output")
}

// ParseArgs processes command line flags. Must be called before any option
// is read.
func ParseArgs() {
	flag.Parse()
}

// Opts exposes the parsed command line options.
func Opts() *options {
	return &opts
}

func (o *options) Config() string  { return o.config }
func (o *options) Program() string { return o.program }
func (o *options) Entry() string   { return o.entry }
func (o *options) DotDir() string  { return o.dotDir }
func (o *options) Verbose() bool   { return o.verbose }

// Analyses returns the analysis IDs given on the command line.
func (o *options) Analyses() []string {
	if o.analyses == "" {
		return nil
	}
	parts := strings.Split(o.analyses, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// CanColorize wraps a color function so that it degrades to plain
// formatting when colorization is disabled.
func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}

// VerbosePrint prints only when the verbose flag is set.
func VerbosePrint(format string, a ...interface{}) (n int, err error) {
	if opts.verbose {
		return fmt.Printf(format, a...)
	}
	return 0, nil
}
