package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	pflag "github.com/spf13/pflag"

	"github.com/spicery/owlfn/pkg/config"
	"github.com/spicery/owlfn/pkg/functional"
	"github.com/spicery/owlfn/pkg/owl"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const usage = `owlfn-fmt - rewrites an OWL functional-style document in canonical form

This tool parses an ontology document and writes it back with one axiom per
line in a fixed order. IRIs are abbreviated through the document's prefixes
and any prefixes from the configuration file.

Usage:
  owlfn-fmt [options]

Options:
`

func main() {
	var showHelp, showVersion, noAbbreviate, check, verbose bool
	var inputFile, outputFile, configFile string

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
	pflag.BoolVar(&noAbbreviate, "no-abbreviate", false, "Write every IRI in full")
	pflag.BoolVar(&check, "check", false, "Exit with status 1 when the input is not already canonical")

	pflag.Parse()

	if showHelp {
		pflag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("owlfn-fmt version %s\n", Version)
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
	if noAbbreviate {
		cfg.Render.Abbreviate = false
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

	ontology, declared, err := functional.ParseDocument(string(text), functional.NewContext(owl.NewBuild(), nil))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Debug("parsed document", "axioms", ontology.Len(), "prefixes", declared.Len())

	prefixes, err := cfg.RenderPrefixes(declared)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var rendered bytes.Buffer
	if err := functional.RenderDocument(&rendered, ontology, prefixes); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	rendered.WriteString("\n")

	if check {
		if !bytes.Equal(bytes.TrimSpace(text), bytes.TrimSpace(rendered.Bytes())) {
			fmt.Fprintf(os.Stderr, "Input is not in canonical form.\n")
			os.Exit(1)
		}
		log.Debug("input is canonical")
		return
	}

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
	if _, err := output.Write(rendered.Bytes()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}
