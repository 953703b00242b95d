package cmd

import (
	"context"
	"flag"

	"github.com/etnz/partnership"
	"github.com/etnz/partnership/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	json bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the financial summary" }
func (*summaryCmd) Usage() string {
	return `pbook summary [-json]

  Displays revenue, fees, costs and profit, and what each partner paid.
  Amounts are rounded to the cent.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print as JSON.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openBook()
	if err != nil {
		return fail("%v", err)
	}
	summary := partnership.ComputeSummary(l.Snapshot())
	if c.json {
		return printJSON(summary.Rounded())
	}
	printMarkdown(renderer.SummaryMarkdown(summary, options()))
	return subcommands.ExitSuccess
}

type settlementCmd struct {
	json bool
}

func (*settlementCmd) Name() string     { return "settlement" }
func (*settlementCmd) Synopsis() string { return "display who owes whom" }
func (*settlementCmd) Usage() string {
	return `pbook settlement [-json]

  Displays each partner's cost contribution and net settlement. Profit is
  shared evenly, a partner is owed their share plus what they paid.
`
}

func (c *settlementCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print as JSON.")
}

func (c *settlementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openBook()
	if err != nil {
		return fail("%v", err)
	}
	summary := partnership.ComputeSummary(l.Snapshot())
	if c.json {
		type position struct {
			Name     string            `json:"name"`
			Cost     partnership.Money `json:"cost"`
			Net      partnership.Money `json:"net"`
			Standing string            `json:"standing"`
		}
		var positions []position
		for _, p := range summary.Settlement(options().Partners) {
			positions = append(positions, position{p.Name, p.Cost, p.Net, p.Standing.String()})
		}
		return printJSON(positions)
	}
	printMarkdown(renderer.SettlementMarkdown(summary, options()))
	return subcommands.ExitSuccess
}

type inventoryCmd struct {
	all  bool
	json bool
}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "display stock per SKU" }
func (*inventoryCmd) Usage() string {
	return `pbook inventory [-all] [-json]

  Displays the warehouse stock and direct shipments of each SKU. SKUs without
  stock and without direct shipments are hidden unless -all is given, which
  also reveals oversold SKUs.
`
}

func (c *inventoryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "Show every SKU, including exhausted and oversold ones.")
	f.BoolVar(&c.json, "json", false, "Print as JSON.")
}

func (c *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openBook()
	if err != nil {
		return fail("%v", err)
	}
	reconcile := partnership.Reconcile
	if c.all {
		reconcile = partnership.ReconcileAll
	}
	positions := reconcile(l.Snapshot())
	if c.json {
		return printJSON(positions)
	}
	printMarkdown(renderer.InventoryMarkdown(positions))
	return subcommands.ExitSuccess
}
