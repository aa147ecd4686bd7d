package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	pflag "github.com/spf13/pflag"

	"github.com/spicery/owlfn/pkg/common"
	"github.com/spicery/owlfn/pkg/config"
	"github.com/spicery/owlfn/pkg/functional"
	"github.com/spicery/owlfn/pkg/parser"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const usage = `owlfn-tree - prints the parse tree of OWL functional-style syntax

This tool reads OWL functional-style text and prints the rule-tagged parse
tree that the converter works from. The text must match the chosen grammar
rule completely.

Usage:
  owlfn-tree [options]

Options:
`

func main() {
	var showHelp, showVersion, noSpans, verbose, listRules bool
	var inputFile, outputFile, configFile, rule, format string
	var indent, trim int

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n", usage)
		pflag.PrintDefaults()
	}

	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help")
	pflag.BoolVar(&showVersion, "version", false, "Show version")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")
	pflag.StringVarP(&inputFile, "input", "i", "", "Input file (defaults to stdin)")
	pflag.StringVarP(&outputFile, "output", "o", "", "Output file (defaults to stdout)")
	pflag.StringVarP(&configFile, "config", "c", "", "YAML configuration file")
	pflag.StringVarP(&rule, "rule", "r", common.NameOntologyDocument, "Grammar rule to parse")
	pflag.BoolVar(&listRules, "rules", false, "List the grammar rules and exit")
	pflag.StringVarP(&format, "format", "f", "", "Output format (JSON, YAML, ASCIITREE, DOT)")
	pflag.IntVar(&indent, "indent", 0, "Indentation level for display purposes")
	pflag.IntVar(&trim, "trim", 0, "Trim names for display purposes")
	pflag.BoolVar(&noSpans, "no-spans", false, "Suppress span information in output")

	pflag.Parse()

	if showHelp {
		pflag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("owlfn-tree version %s\n", Version)
		os.Exit(0)
	}

	if listRules {
		fmt.Println(strings.Join(parser.Rules(), "\n"))
		os.Exit(0)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.LoadConfig(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			os.Exit(1)
		}
	}

	// Flags override the configuration.
	options := cfg.PrintOptions()
	if pflag.CommandLine.Changed("format") {
		options.Format = format
	}
	if pflag.CommandLine.Changed("indent") {
		options.Indent = indent
	}
	if pflag.CommandLine.Changed("trim") {
		options.TrimTokenOnOutput = trim
	}
	if noSpans {
		options.IncludeSpans = false
	}

	printFunc, err := common.PickPrintFunc(options.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var input io.Reader = os.Stdin
	if inputFile != "" {
		file, err := os.Open(inputFile) // #nosec G304 - CLI tool reads user-specified input files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		input = file
	}

	text, err := io.ReadAll(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	tree, err := functional.ParseTree(rule, string(text))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Debug("parsed input", "rule", rule, "bytes", len(text))

	var output io.Writer = os.Stdout
	if outputFile != "" {
		file, err := os.Create(outputFile) // #nosec G304 - CLI tool writes to user-specified output files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		output = file
	}

	if err := printFunc(tree, strings.Repeat(" ", options.Indent), output, options); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}
