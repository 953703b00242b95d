// Package cmd implements the CLI application to keep the books of a two
// partner reselling business.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/partnership"
	"github.com/etnz/partnership/renderer"
	"github.com/google/subcommands"
)

// Environment variables used as defaults for the global flags.
const (
	EnvDataDir  = "PBOOK_DATA_DIR"
	EnvCurrency = "PBOOK_CURRENCY"
	EnvPartnerA = "PBOOK_PARTNER_A"
	EnvPartnerB = "PBOOK_PARTNER_B"
	EnvVerbose  = "PBOOK_VERBOSE"
)

// Commands lists all the subcommands, in the order they are presented to the user.
var Commands = []subcommands.Command{
	&addShipmentCmd{},
	&addOrderCmd{},
	&shipmentsCmd{},
	&ordersCmd{},
	&summaryCmd{},
	&settlementCmd{},
	&inventoryCmd{},
	&exportCmd{},
	&importCmd{},
	&xlsxCmd{},
	&clearCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
//
// Flags default to their environment variable, read when the flag is used so
// that a .env file loaded by the main package is taken into account.

var (
	dataDirFlag  = flag.String("data-dir", "", "Directory holding "+partnership.ShipmentsFile+" and "+partnership.OrdersFile+". Defaults to $"+EnvDataDir+" or the current directory.")
	currencyFlag = flag.String("currency", "", "ISO currency code amounts are presented in. Defaults to $"+EnvCurrency+" or "+partnership.DefaultCurrency+".")
	partnerAFlag = flag.String("partner-a", "", "Name of the partner funding manufacturing. Defaults to $"+EnvPartnerA+".")
	partnerBFlag = flag.String("partner-b", "", "Name of the partner funding customer shipping. Defaults to $"+EnvPartnerB+".")
	verboseFlag  = flag.Bool("v", false, "Verbose logging. Defaults to $"+EnvVerbose+".")
)

func dataDir() string  { return flagOrEnv(*dataDirFlag, EnvDataDir, ".") }
func currency() string { return flagOrEnv(*currencyFlag, EnvCurrency, partnership.DefaultCurrency) }
func verbose() bool {
	b, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return *verboseFlag || b
}

// flagOrEnv returns value if set, then the environment variable key if set, then fallback.
func flagOrEnv(value, key, fallback string) string {
	if value != "" {
		return value
	}
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// out is where commands print their results.
var out io.Writer = os.Stdout

// gateway returns the gateway to the book in the data directory.
func gateway() partnership.Gateway { return partnership.FileGateway{Dir: dataDir()} }

// openBook loads the book from the data directory.
func openBook() (*partnership.Ledger, error) {
	if _, err := os.Stat(dataDir()); errors.Is(err, fs.ErrNotExist) && verbose() {
		log.Printf("warning, data directory %q does not exist, starting an empty book", dataDir())
	}
	s, err := gateway().Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load book: %w", err)
	}
	return partnership.NewLedgerFrom(s)
}

// saveBook saves the book to the data directory. It is called after each
// successful mutation.
func saveBook(l *partnership.Ledger) error {
	if err := gateway().Save(l.Snapshot()); err != nil {
		return fmt.Errorf("cannot save book: %w", err)
	}
	if verbose() {
		s, o := l.Len()
		log.Printf("saved %d shipments and %d orders in %q", s, o, dataDir())
	}
	return nil
}

// options returns the presentation options from the global flags.
func options() renderer.Options {
	return renderer.Options{
		Currency: currency(),
		Partners: partnership.Partners{
			A: flagOrEnv(*partnerAFlag, EnvPartnerA, partnership.DefaultPartners.A),
			B: flagOrEnv(*partnerBFlag, EnvPartnerB, partnership.DefaultPartners.B),
		},
	}
}

// printMarkdown renders md for the terminal, or prints it as is when it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var rendered string
		if rendered, err = r.Render(md); err == nil {
			fmt.Fprint(out, rendered)
			return
		}
	}
	if verbose() {
		log.Printf("cannot render markdown: %v", err)
	}
	fmt.Fprint(out, md)
}

// fail prints a formatted error and returns the failure status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error "+format+"\n", args...)
	return subcommands.ExitFailure
}
