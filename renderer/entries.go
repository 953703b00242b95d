package renderer

import (
	"bytes"

	"github.com/etnz/partnership"
	md "github.com/nao1215/markdown"
)

// ShipmentsMarkdown lists inventory shipments, in insertion order.
func ShipmentsMarkdown(shipments []partnership.InventoryShipment, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory Shipments")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Arrival", "Shipment", "SKU", "Product", "Quantity", "Mfg/Unit", "Ship/Unit", "Total Cost"},
		Rows:   [][]string{},
	}
	for _, s := range shipments {
		table.Rows = append(table.Rows, []string{
			s.ArrivalDate.String(),
			s.ShipmentID,
			s.SKU,
			s.ProductName,
			s.Quantity.String(),
			opts.money(partnership.M(s.ManufacturingCostPerUnit)),
			opts.money(partnership.M(s.ShippingCostPerUnitToWarehouse)),
			opts.money(s.TotalCost()),
		})
	}
	doc.Table(table)

	return doc.String()
}

// OrdersMarkdown lists orders, in insertion order.
func OrdersMarkdown(orders []partnership.Order, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Orders")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Date", "Order", "SKU", "Product", "Fulfillment", "Quantity", "Revenue", "Fees", "Shipping"},
		Rows:   [][]string{},
	}
	for _, o := range orders {
		table.Rows = append(table.Rows, []string{
			o.OrderDate.String(),
			o.OrderID,
			o.SKU,
			o.ProductName,
			string(o.FulfillmentSource),
			o.Quantity.String(),
			opts.money(o.Revenue()),
			opts.money(o.Fees()),
			opts.money(partnership.M(o.ShippingCost)),
		})
	}
	doc.Table(table)

	return doc.String()
}
