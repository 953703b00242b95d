package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/etnz/partnership/renderer"
	"github.com/google/subcommands"
)

type shipmentsCmd struct {
	json bool
}

func (*shipmentsCmd) Name() string     { return "shipments" }
func (*shipmentsCmd) Synopsis() string { return "list inventory shipments" }
func (*shipmentsCmd) Usage() string {
	return `pbook shipments [-json]

  Lists inventory shipments in the order they were recorded.
`
}

func (c *shipmentsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print as JSON.")
}

func (c *shipmentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openBook()
	if err != nil {
		return fail("%v", err)
	}
	shipments := l.Snapshot().Shipments
	if c.json {
		return printJSON(shipments)
	}
	printMarkdown(renderer.ShipmentsMarkdown(shipments, options()))
	return subcommands.ExitSuccess
}

type ordersCmd struct {
	json bool
}

func (*ordersCmd) Name() string     { return "orders" }
func (*ordersCmd) Synopsis() string { return "list orders" }
func (*ordersCmd) Usage() string {
	return `pbook orders [-json]

  Lists orders in the order they were recorded.
`
}

func (c *ordersCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print as JSON.")
}

func (c *ordersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openBook()
	if err != nil {
		return fail("%v", err)
	}
	orders := l.Snapshot().Orders
	if c.json {
		return printJSON(orders)
	}
	printMarkdown(renderer.OrdersMarkdown(orders, options()))
	return subcommands.ExitSuccess
}

// printJSON prints v as indented JSON.
func printJSON(v any) subcommands.ExitStatus {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fail("encoding JSON: %v", err)
	}
	fmt.Fprintln(out, string(data))
	return subcommands.ExitSuccess
}
