package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"

	"lox/interpreter-go/pkg/driver"
)

const cliToolVersion = "lox 0.1.0-dev"

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	tokens     bool
	ast        bool
	env        bool
	verbose    bool
	noColor    bool
	help       bool
	version    bool
}

// run is main without the process exit; argv includes the program name.
func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"lox"}
	}
	opts, args, err := parseOptions(argv)
	if err != nil {
		fmt.Fprintf(stderr, "lox: %v\n", err)
		printUsage(stderr)
		return driver.ExitUsage
	}
	switch {
	case opts.help:
		printUsage(stdout)
		return driver.ExitOK
	case opts.version:
		fmt.Fprintln(stdout, cliToolVersion)
		return driver.ExitOK
	}
	if len(args) > 1 {
		fmt.Fprintf(stderr, "Too many arguments: %s\n", strings.Join(args, " "))
		printUsage(stderr)
		return driver.ExitUsage
	}

	cfg, err := driver.ResolveConfig(opts.configPath, ".")
	if err != nil {
		var verr *driver.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(stderr, "invalid config: %v\n", err)
		} else {
			fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		}
		return driver.ExitIOErr
	}
	applyOptions(cfg, opts)

	reporter := driver.NewReporter(stderr, cfg.Color)
	reporter.ShowLocation(cfg.Trace.Phases)
	session := driver.NewSession(cfg, stdout, stderr)

	if len(args) == 0 {
		if err := session.Prompt(stdin, reporter); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return driver.ExitIOErr
		}
		return driver.ExitOK
	}

	if err := session.RunFile(args[0]); err != nil {
		reporter.Report(err)
		return driver.ExitCode(err)
	}
	return driver.ExitOK
}

func parseOptions(argv []string) (options, []string, error) {
	var opts options
	parsed, optind, err := getopt.Getopts(argv, "c:taevnhV")
	if err != nil {
		return opts, nil, err
	}
	for _, opt := range parsed {
		switch opt.Option {
		case 'c':
			opts.configPath = opt.Value
		case 't':
			opts.tokens = true
		case 'a':
			opts.ast = true
		case 'e':
			opts.env = true
		case 'v':
			opts.verbose = true
		case 'n':
			opts.noColor = true
		case 'h':
			opts.help = true
		case 'V':
			opts.version = true
		}
	}
	return opts, argv[optind:], nil
}

// applyOptions lets command-line flags override the config file.
func applyOptions(cfg *driver.Config, opts options) {
	if opts.tokens {
		cfg.Trace.Tokens = true
	}
	if opts.ast {
		cfg.Trace.AST = true
	}
	if opts.env {
		cfg.Trace.Env = true
	}
	if opts.verbose {
		cfg.Trace.Phases = true
	}
	if opts.noColor {
		cfg.Color = driver.ColorNever
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: lox [-c config] [-t] [-a] [-e] [-v] [-n] [-h] [-V] [script]")
	fmt.Fprintln(w, "  -c path  load configuration from path instead of the nearest lox.yml")
	fmt.Fprintln(w, "  -t       dump scanned tokens to stderr")
	fmt.Fprintln(w, "  -a       dump the parsed program to stderr")
	fmt.Fprintln(w, "  -e       dump global bindings to stderr after each run")
	fmt.Fprintln(w, "  -v       trace pipeline phases and show error locations")
	fmt.Fprintln(w, "  -n       disable colored error reports")
	fmt.Fprintln(w, "  -h       show this help")
	fmt.Fprintln(w, "  -V       print version")
	fmt.Fprintln(w, "Without a script, lox starts an interactive prompt.")
}
