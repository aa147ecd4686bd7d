package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	pflag "github.com/spf13/pflag"

	"github.com/spicery/owlfn/pkg/catalog"
	"github.com/spicery/owlfn/pkg/config"
	"github.com/spicery/owlfn/pkg/functional"
	"github.com/spicery/owlfn/pkg/owl"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const usage = `owlfn-catalog - keeps OWL functional-style ontologies in a SQLITE catalog

Exactly one of --store, --load, --delete, --counts or --list selects what to
do. Documents are read from --input (defaults to stdin) and written to
--output (defaults to stdout).

Usage:
  owlfn-catalog [options]

Options:
`

func main() {
	var showHelp, showVersion, migrate, list, verbose bool
	var dbFile, configFile, inputFile, outputFile string
	var storeName, loadName, deleteName, countsName string

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n", usage)
		pflag.PrintDefaults()
	}

	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help")
	pflag.BoolVar(&showVersion, "version", false, "Show version")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")
	pflag.BoolVar(&migrate, "migrate", false, "Perform database migration")
	pflag.StringVar(&dbFile, "db", "", "Catalog database file (defaults to catalog.path from the configuration)")
	pflag.StringVarP(&configFile, "config", "c", "", "YAML configuration file")
	pflag.StringVarP(&inputFile, "input", "i", "", "Input file (defaults to stdin)")
	pflag.StringVarP(&outputFile, "output", "o", "", "Output file (defaults to stdout)")
	pflag.StringVar(&storeName, "store", "", "Parse a document and store it under `NAME`")
	pflag.StringVar(&loadName, "load", "", "Render the document stored under `NAME`")
	pflag.StringVar(&deleteName, "delete", "", "Delete the document stored under `NAME`")
	pflag.StringVar(&countsName, "counts", "", "Count the axioms of `NAME` by kind")
	pflag.BoolVar(&list, "list", false, "List the stored documents")

	pflag.Parse()

	if showHelp {
		pflag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("owlfn-catalog version %s\n", Version)
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
	if dbFile == "" {
		dbFile = cfg.Catalog.Path
	}

	_, err := os.Stat(dbFile)
	fileExists := err == nil

	c, err := catalog.Open(dbFile, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	upToDate, err := c.CheckMigration()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to check migration status: %v\n", err)
		os.Exit(1)
	}
	if !upToDate {
		// A fresh database is migrated silently; an old one needs --migrate.
		if fileExists && !migrate {
			fmt.Fprintf(os.Stderr, "Error: database schema is not up to date. Use --migrate to update.\n")
			os.Exit(1)
		}
		if err := c.Migrate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to migrate database: %v\n", err)
			os.Exit(1)
		}
		log.Info("database migrated", "db", dbFile)
	}

	switch {
	case storeName != "":
		err = store(c, storeName, inputFile)
	case loadName != "":
		err = load(c, cfg, loadName, outputFile)
	case deleteName != "":
		var deleted bool
		deleted, err = c.Delete(deleteName)
		if err == nil && !deleted {
			err = fmt.Errorf("%w: %s", catalog.ErrNotFound, deleteName)
		}
	case countsName != "":
		err = counts(c, countsName)
	case list:
		err = listDocuments(c)
	case migrate:
		// Nothing else to do.
	default:
		pflag.Usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func store(c *catalog.Catalog, name, inputFile string) error {
	var input io.Reader = os.Stdin
	if inputFile != "" {
		file, err := os.Open(inputFile) // #nosec G304 - CLI tool reads user-specified input files
		if err != nil {
			return err
		}
		defer file.Close()
		input = file
	}
	ontology, prefixes, err := functional.ParseReader(input, functional.NewContext(owl.NewBuild(), nil))
	if err != nil {
		return err
	}
	return c.Store(name, ontology, prefixes)
}

func load(c *catalog.Catalog, cfg *config.Config, name, outputFile string) error {
	ontology, declared, err := c.Load(name)
	if err != nil {
		return err
	}
	prefixes, err := cfg.RenderPrefixes(declared)
	if err != nil {
		return err
	}
	var output io.Writer = os.Stdout
	if outputFile != "" {
		file, err := os.Create(outputFile) // #nosec G304 - CLI tool writes to user-specified output files
		if err != nil {
			return err
		}
		defer file.Close()
		output = file
	}
	if err := functional.RenderDocument(output, ontology, prefixes); err != nil {
		return err
	}
	_, err = io.WriteString(output, "\n")
	return err
}

func counts(c *catalog.Catalog, name string) error {
	tally, err := c.KindCounts(name)
	if err != nil {
		return err
	}
	kinds := make([]owl.AxiomKind, 0, len(tally))
	for kind := range tally {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, kind := range kinds {
		fmt.Printf("%-32s %d\n", kind, tally[kind])
	}
	return nil
}

func listDocuments(c *catalog.Catalog) error {
	summaries, err := c.List()
	if err != nil {
		return err
	}
	for _, summary := range summaries {
		iri := "-"
		if summary.OntologyIRI != nil {
			iri = string(*summary.OntologyIRI)
		}
		fmt.Printf("%s\t%s\t%d\n", summary.Name, iri, summary.Axioms)
	}
	return nil
}
