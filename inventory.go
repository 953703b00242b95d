package partnership

// StockPosition is the reconciled stock of one SKU.
type StockPosition struct {
	SKU         string `json:"sku"`
	ProductName string `json:"productName"`
	// WarehouseStock is received minus warehouse shipped quantities. It is
	// negative when the SKU has been oversold.
	WarehouseStock Quantity `json:"warehouseStock"`
	// DirectShipments is the quantity sold and shipped directly.
	DirectShipments Quantity `json:"directShipments"`
}

// Oversold reports whether more units were shipped from the warehouse than it received.
func (p StockPosition) Oversold() bool { return p.WarehouseStock.IsNegative() }

// Reconcile derives the stock position of every SKU that still has warehouse
// stock or has direct shipments.
//
// SKUs whose warehouse stock dropped to zero or below, without any direct
// shipment, are left out. Use ReconcileAll to see them. Positions are in
// order of first appearance, shipments first.
func Reconcile(s Snapshot) []StockPosition {
	all := ReconcileAll(s)
	positions := make([]StockPosition, 0, len(all))
	for _, p := range all {
		if p.WarehouseStock.IsPositive() || p.DirectShipments.IsPositive() {
			positions = append(positions, p)
		}
	}
	return positions
}

// ReconcileAll is like Reconcile but keeps every SKU.
func ReconcileAll(s Snapshot) []StockPosition {
	var positions []StockPosition
	index := make(map[string]int) // SKU -> index in positions

	// position returns the position for sku, created with name on first sight.
	position := func(sku, name string) *StockPosition {
		i, ok := index[sku]
		if !ok {
			i = len(positions)
			index[sku] = i
			positions = append(positions, StockPosition{SKU: sku, ProductName: name})
		}
		return &positions[i]
	}

	for _, sh := range s.Shipments {
		p := position(sh.SKU, sh.ProductName)
		p.WarehouseStock += sh.Quantity
	}
	for _, o := range s.Orders {
		p := position(o.SKU, o.ProductName)
		switch o.FulfillmentSource {
		case WarehouseShipped:
			p.WarehouseStock -= o.Quantity
		case DirectShipped:
			p.DirectShipments += o.Quantity
		}
	}
	if positions == nil {
		return []StockPosition{}
	}
	return positions
}
