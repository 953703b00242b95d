package renderer

import (
	"fmt"

	"github.com/etnz/partnership"
	md "github.com/nao1215/markdown"
)

// Options holds the presentation settings shared by all reports.
type Options struct {
	Currency string               // ISO code amounts are formatted in, partnership.DefaultCurrency if empty.
	Partners partnership.Partners // display names, partnership.DefaultPartners if empty.
}

// currency returns the configured currency code.
func (o Options) currency() string {
	if o.Currency == "" {
		return partnership.DefaultCurrency
	}
	return o.Currency
}

// partners returns the configured partner names, falling back on defaults one by one.
func (o Options) partners() partnership.Partners {
	p := o.Partners
	if p.A == "" {
		p.A = partnership.DefaultPartners.A
	}
	if p.B == "" {
		p.B = partnership.DefaultPartners.B
	}
	return p
}

// money formats m in the configured currency.
func (o Options) money(m partnership.Money) string { return m.Format(o.currency()) }

// standing describes a partner position in words.
func (o Options) standing(p partnership.PartnerPosition) string {
	switch p.Standing {
	case partnership.Owed:
		return fmt.Sprintf("is owed %s", o.money(p.Net))
	case partnership.Owes:
		return fmt.Sprintf("owes %s", o.money(p.Net.Neg()))
	default:
		return "is even"
	}
}

// alignment returns a left aligned first column followed by n right aligned columns.
func alignment(n int) []md.TableAlignment {
	a := []md.TableAlignment{md.AlignLeft}
	for range n {
		a = append(a, md.AlignRight)
	}
	return a
}
