package renderer

import (
	"bytes"

	"github.com/etnz/partnership"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the financial summary, rounded to the cent.
func SummaryMarkdown(f partnership.FinancialSummary, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	f = f.Rounded()
	names := opts.partners()

	doc.H1("Financial Summary")

	doc.Table(md.TableSet{
		Alignment: alignment(1),
		Header:    []string{md.Bold("Total Profit"), md.Bold(opts.money(f.TotalProfit))},
		Rows: [][]string{
			{"Total Revenue", opts.money(f.TotalRevenue)},
			{"Marketplace Fees", opts.money(f.TotalFees)},
			{"Total Costs", opts.money(f.TotalCosts)},
			{"Profit Share (each)", opts.money(f.PartnerShare)},
		},
	})

	doc.H2("Costs")
	doc.Table(md.TableSet{
		Alignment: alignment(1),
		Header:    []string{"Cost", "Amount"},
		Rows: [][]string{
			{"Manufacturing", opts.money(f.ManufacturingCost)},
			{"Shipping to Warehouse", opts.money(f.WarehouseShippingCost)},
			{names.A, opts.money(f.PartnerACost)},
			{names.B + " (customer shipping)", opts.money(f.PartnerBCost)},
		},
	})

	return doc.String()
}
