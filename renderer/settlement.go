package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/partnership"
	md "github.com/nao1215/markdown"
)

// SettlementMarkdown renders what each partner paid, their net and who owes whom.
func SettlementMarkdown(f partnership.FinancialSummary, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Settlement")
	doc.PlainText(fmt.Sprintf("Profit of %s, shared evenly: %s each.",
		opts.money(f.TotalProfit.Round()), opts.money(f.PartnerShare.Round())))

	table := md.TableSet{
		Alignment: append(alignment(2), md.AlignLeft),
		Header:    []string{"Partner", "Paid", "Net", "Standing"},
	}
	for _, p := range f.Settlement(opts.partners()) {
		table.Rows = append(table.Rows, []string{
			p.Name,
			opts.money(p.Cost),
			opts.money(p.Net),
			opts.standing(p),
		})
	}
	doc.Table(table)

	return doc.String()
}
