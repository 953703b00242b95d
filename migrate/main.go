// Command migrate converts data exported by the original web application into
// the formats used by pbook.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/etnz/partnership"
	"github.com/google/subcommands"
)

func main() {
	// The migrate tool needs its own set of flags, independent of the main pbook tool.
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	commander := subcommands.NewCommander(flag.CommandLine, "migrate")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(&documentCmd{}, "")
	commander.Register(&bookCmd{}, "")
	commander.Register(&checkCmd{}, "")
	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// decodeLegacyFile reads a document exported by the original web application.
func decodeLegacyFile(file string) (partnership.Snapshot, error) {
	f, err := os.Open(file)
	if err != nil {
		return partnership.Snapshot{}, err
	}
	defer f.Close()
	return partnership.DecodeLegacyDocument(f)
}

// --- documentCmd ---

type documentCmd struct {
	in  string
	out string
}

func (*documentCmd) Name() string { return "document" }
func (*documentCmd) Synopsis() string {
	return "converts a legacy export into a document pbook can import"
}
func (*documentCmd) Usage() string {
	return `migrate document -in <legacy_export> -out <document>

Converts the JSON file exported by the original web application into a document
that "pbook import" can restore. The output file must not be the input file.
`
}
func (c *documentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "The path to the file exported by the web application.")
	f.StringVar(&c.out, "out", "", "The path where the converted document will be written.")
}

func (c *documentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" || c.out == "" {
		fmt.Fprintln(os.Stderr, "Error: -in and -out flags are required.")
		return subcommands.ExitUsageError
	}
	if filepath.Clean(c.in) == filepath.Clean(c.out) {
		fmt.Fprintln(os.Stderr, "Error: -in and -out must be different files.")
		return subcommands.ExitUsageError
	}

	s, err := decodeLegacyFile(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding legacy export: %v\n", err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	if err := partnership.EncodeDocument(&buf, partnership.Serialize(s)); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding document: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.out, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing document: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Converted %d shipments and %d orders into %s\n", len(s.Shipments), len(s.Orders), c.out)
	return subcommands.ExitSuccess
}

// --- bookCmd ---

type bookCmd struct {
	in  string
	dir string
}

func (*bookCmd) Name() string     { return "book" }
func (*bookCmd) Synopsis() string { return "creates a pbook data directory from a legacy export" }
func (*bookCmd) Usage() string {
	return `migrate book -in <legacy_export> -dir <data_directory>

Creates the ledger files of a pbook data directory from the JSON file exported
by the original web application. Existing ledger files are never overwritten.
`
}
func (c *bookCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "The path to the file exported by the web application.")
	f.StringVar(&c.dir, "dir", "", "The data directory to create.")
}

func (c *bookCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" || c.dir == "" {
		fmt.Fprintln(os.Stderr, "Error: -in and -dir flags are required.")
		return subcommands.ExitUsageError
	}
	for _, name := range []string{partnership.ShipmentsFile, partnership.OrdersFile} {
		if _, err := os.Stat(filepath.Join(c.dir, name)); err == nil {
			fmt.Fprintf(os.Stderr, "Error: %s already exists in %s.\n", name, c.dir)
			return subcommands.ExitUsageError
		}
	}

	s, err := decodeLegacyFile(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding legacy export: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := (partnership.FileGateway{Dir: c.dir}).Save(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created book in %s with %d shipments and %d orders\n", c.dir, len(s.Shipments), len(s.Orders))
	return subcommands.ExitSuccess
}

// --- checkCmd ---

type checkCmd struct {
	in     string
	legacy bool
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "checks that a document can be imported" }
func (*checkCmd) Usage() string {
	return `migrate check -in <document> [-legacy]

Decodes a document, or a legacy export with -legacy, and prints what it holds
and its settlement, without writing anything.
`
}
func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "The path to the document to check.")
	f.BoolVar(&c.legacy, "legacy", false, "The document is an export of the original web application.")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" {
		fmt.Fprintln(os.Stderr, "Error: -in flag is required.")
		return subcommands.ExitUsageError
	}
	if err := check(os.Stdout, c.in, c.legacy); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// check decodes file and writes a short report to w.
func check(w io.Writer, file string, legacy bool) error {
	var s partnership.Snapshot
	var err error
	if legacy {
		s, err = decodeLegacyFile(file)
	} else {
		var f *os.File
		if f, err = os.Open(file); err != nil {
			return err
		}
		defer f.Close()
		s, err = partnership.DecodeDocument(f)
	}
	if err != nil {
		return err
	}

	summary := partnership.ComputeSummary(s).Rounded()
	fmt.Fprintf(w, "%s: %d shipments, %d orders\n", file, len(s.Shipments), len(s.Orders))
	fmt.Fprintf(w, "profit %s, partner A net %s, partner B net %s\n",
		summary.TotalProfit, summary.PartnerANet, summary.PartnerBNet)
	for _, p := range partnership.ReconcileAll(s) {
		if p.Oversold() {
			fmt.Fprintf(w, "warning, %s is oversold by %s units\n", p.SKU, -p.WarehouseStock)
		}
	}
	return nil
}
