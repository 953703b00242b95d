package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/partnership"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook written by WriteWorkbook.
const (
	SummarySheet   = "Summary"
	InventorySheet = "Inventory"
	ShipmentsSheet = "Shipments"
	OrdersSheet    = "Orders"
)

// WriteWorkbook writes an xlsx workbook of the snapshot to w: the summary, the
// full inventory reconciliation and both ledgers, one sheet each.
//
// Amounts are numbers rounded to the cent, in the configured currency.
func WriteWorkbook(w io.Writer, s partnership.Snapshot, opts Options) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// the new file comes with a single default sheet, reuse it for the summary.
	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SummarySheet); err != nil {
		return fmt.Errorf("cannot rename default sheet: %w", err)
	}
	for _, name := range []string{InventorySheet, ShipmentsSheet, OrdersSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("cannot create sheet %q: %w", name, err)
		}
	}

	summary := partnership.ComputeSummary(s).Rounded()
	names := opts.partners()
	if err := writeRows(f, SummarySheet, [][]any{
		{"Item", "Amount (" + opts.currency() + ")"},
		{"Total Revenue", amount(summary.TotalRevenue)},
		{"Marketplace Fees", amount(summary.TotalFees)},
		{"Manufacturing", amount(summary.ManufacturingCost)},
		{"Shipping to Warehouse", amount(summary.WarehouseShippingCost)},
		{names.A + " Cost", amount(summary.PartnerACost)},
		{names.B + " Cost", amount(summary.PartnerBCost)},
		{"Total Costs", amount(summary.TotalCosts)},
		{"Total Profit", amount(summary.TotalProfit)},
		{"Profit Share (each)", amount(summary.PartnerShare)},
		{names.A + " Net", amount(summary.PartnerANet)},
		{names.B + " Net", amount(summary.PartnerBNet)},
	}); err != nil {
		return err
	}

	rows := [][]any{{"SKU", "Product", "Warehouse Stock", "Direct Shipments", "Oversold"}}
	for _, p := range partnership.ReconcileAll(s) {
		rows = append(rows, []any{p.SKU, p.ProductName, int64(p.WarehouseStock), int64(p.DirectShipments), p.Oversold()})
	}
	if err := writeRows(f, InventorySheet, rows); err != nil {
		return err
	}

	rows = [][]any{{"ID", "Shipment", "SKU", "Product", "Quantity", "Mfg/Unit", "Ship/Unit", "Arrival", "Total Cost"}}
	for _, sh := range s.Shipments {
		rows = append(rows, []any{
			sh.ID, sh.ShipmentID, sh.SKU, sh.ProductName, int64(sh.Quantity),
			sh.ManufacturingCostPerUnit.InexactFloat64(),
			sh.ShippingCostPerUnitToWarehouse.InexactFloat64(),
			sh.ArrivalDate.String(),
			amount(sh.TotalCost()),
		})
	}
	if err := writeRows(f, ShipmentsSheet, rows); err != nil {
		return err
	}

	rows = [][]any{{"ID", "Order", "SKU", "Product", "Quantity", "Price/Unit", "Fees", "Shipping", "Fulfillment", "Date", "Revenue"}}
	for _, o := range s.Orders {
		rows = append(rows, []any{
			o.ID, o.OrderID, o.SKU, o.ProductName, int64(o.Quantity),
			o.SalePricePerUnit.InexactFloat64(),
			o.MarketplaceFees.InexactFloat64(),
			o.ShippingCost.InexactFloat64(),
			string(o.FulfillmentSource),
			o.OrderDate.String(),
			amount(o.Revenue()),
		})
	}
	if err := writeRows(f, OrdersSheet, rows); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}

// writeRows writes rows in sheet, starting at A1.
func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("cannot write row %d of %q: %w", i+1, sheet, err)
		}
	}
	return nil
}

// amount returns m rounded to the cent as a spreadsheet number.
func amount(m partnership.Money) float64 { return m.Round().Decimal().InexactFloat64() }
