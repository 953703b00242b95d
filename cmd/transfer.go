package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/partnership"
	"github.com/etnz/partnership/renderer"
	"github.com/google/subcommands"
)

// DefaultExportFile is the file written by export when none is given.
const DefaultExportFile = "partnership-data.json"

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the book as a single JSON document" }
func (*exportCmd) Usage() string {
	return `pbook export [-o <file>]

  Writes both ledgers, and the export time, into a single JSON document that
  import can restore. Use "-o -" to write to the standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", DefaultExportFile, "Output file, - for the standard output.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openBook()
	if err != nil {
		return fail("%v", err)
	}
	var buf bytes.Buffer
	if err := partnership.EncodeDocument(&buf, partnership.Serialize(l.Snapshot())); err != nil {
		return fail("%v", err)
	}
	if err := writeOutput(c.output, buf.Bytes()); err != nil {
		return fail("%v", err)
	}
	if c.output != "-" {
		s, o := l.Len()
		fmt.Fprintf(out, "Exported %d shipments and %d orders to %s\n", s, o, c.output)
	}
	return subcommands.ExitSuccess
}

type importCmd struct {
	input  string
	legacy bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the book with an exported document" }
func (*importCmd) Usage() string {
	return `pbook import -i <file> [-legacy]

  Replaces both ledgers with the content of a document written by export. The
  book is left untouched if the document is invalid. With -legacy, the file is
  an export of the original web application.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Input file, - for the standard input.")
	f.BoolVar(&c.legacy, "legacy", false, "Read the export format of the original web application.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "Error -i is required")
		return subcommands.ExitUsageError
	}
	l, err := openBook()
	if err != nil {
		return fail("%v", err)
	}

	var r io.Reader = os.Stdin
	if c.input != "-" {
		file, err := os.Open(c.input)
		if err != nil {
			return fail("opening %q: %v", c.input, err)
		}
		defer file.Close()
		r = file
	}

	decode := partnership.DecodeDocument
	if c.legacy {
		decode = partnership.DecodeLegacyDocument
	}
	s, err := decode(r)
	if err != nil {
		return fail("importing %q: %v", c.input, err)
	}
	if err := l.Restore(s); err != nil {
		return fail("importing %q: %v", c.input, err)
	}
	if err := saveBook(l); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(out, "Imported %d shipments and %d orders from %s\n", len(s.Shipments), len(s.Orders), c.input)
	return subcommands.ExitSuccess
}

type xlsxCmd struct {
	output string
}

func (*xlsxCmd) Name() string     { return "xlsx" }
func (*xlsxCmd) Synopsis() string { return "export the book as a spreadsheet" }
func (*xlsxCmd) Usage() string {
	return `pbook xlsx [-o <file>]

  Writes an xlsx workbook with the summary, the inventory of every SKU and
  both ledgers.
`
}

func (c *xlsxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "partnership.xlsx", "Output file.")
}

func (c *xlsxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openBook()
	if err != nil {
		return fail("%v", err)
	}
	var buf bytes.Buffer
	if err := renderer.WriteWorkbook(&buf, l.Snapshot(), options()); err != nil {
		return fail("%v", err)
	}
	if err := writeOutput(c.output, buf.Bytes()); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(out, "Wrote workbook %s\n", c.output)
	return subcommands.ExitSuccess
}

type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all shipments and orders" }
func (*clearCmd) Usage() string {
	return `pbook clear -yes

  Deletes all data. This cannot be undone: export the book first.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Confirm the deletion of all data.")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		fmt.Fprintln(os.Stderr, "Error clear deletes all data and cannot be undone, confirm with -yes")
		return subcommands.ExitUsageError
	}
	l, err := openBook()
	if err != nil {
		return fail("%v", err)
	}
	l.Clear()
	if err := saveBook(l); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintln(out, "Cleared all data")
	return subcommands.ExitSuccess
}

// writeOutput writes data to file, or to out when file is "-".
func writeOutput(file string, data []byte) error {
	if file == "-" {
		_, err := out.Write(data)
		return err
	}
	if err := os.WriteFile(file, data, 0644); err != nil {
		return fmt.Errorf("cannot write %q: %w", file, err)
	}
	return nil
}
