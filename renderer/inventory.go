package renderer

import (
	"bytes"

	"github.com/etnz/partnership"
	md "github.com/nao1215/markdown"
)

// InventoryMarkdown renders stock positions. Oversold SKUs are flagged.
func InventoryMarkdown(positions []partnership.StockPosition) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory")
	if len(positions) == 0 {
		doc.PlainText("No stock and no direct shipment.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"SKU", "Product", "Warehouse Stock", "Direct Shipments"},
		Rows:      [][]string{},
	}
	for _, p := range positions {
		stock := p.WarehouseStock.String()
		if p.Oversold() {
			stock = md.Bold(stock + " oversold")
		}
		table.Rows = append(table.Rows, []string{
			p.SKU,
			p.ProductName,
			stock,
			p.DirectShipments.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
