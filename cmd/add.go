package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/partnership"
	"github.com/etnz/partnership/date"
	"github.com/google/subcommands"
)

// addShipmentCmd records an inventory shipment.
type addShipmentCmd struct {
	in partnership.ShipmentInput
}

func (*addShipmentCmd) Name() string     { return "add-shipment" }
func (*addShipmentCmd) Synopsis() string { return "record a bulk shipment to the warehouse" }
func (*addShipmentCmd) Usage() string {
	return `pbook add-shipment -id <shipment> -sku <sku> -name <product> -qty <n> [-mfg <cost>] [-ship <cost>] [-date <YYYY-MM-DD>]

  Records a shipment funded by partner A. Costs are per unit and default to 0.
`
}

func (c *addShipmentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in.ShipmentID, "id", "", "Shipment identifier, as given by the manufacturer or forwarder.")
	f.StringVar(&c.in.SKU, "sku", "", "Stock keeping unit.")
	f.StringVar(&c.in.ProductName, "name", "", "Product name.")
	f.StringVar(&c.in.Quantity, "qty", "", "Number of units shipped.")
	f.StringVar(&c.in.ManufacturingCostPerUnit, "mfg", "", "Manufacturing cost per unit.")
	f.StringVar(&c.in.ShippingCostPerUnitToWarehouse, "ship", "", "Shipping cost per unit to the warehouse.")
	f.StringVar(&c.in.ArrivalDate, "date", date.Today().String(), "Arrival date at the warehouse.")
}

func (c *addShipmentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openBook()
	if err != nil {
		return fail("%v", err)
	}
	s, err := l.AddShipment(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := saveBook(l); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(out, "Recorded shipment %s (#%d): %s x %s, cost %s\n", s.ShipmentID, s.ID, s.Quantity, s.SKU, s.TotalCost().Format(currency()))
	return subcommands.ExitSuccess
}

// addOrderCmd records an order.
type addOrderCmd struct {
	in partnership.OrderInput
}

func (*addOrderCmd) Name() string     { return "add-order" }
func (*addOrderCmd) Synopsis() string { return "record a customer order" }
func (*addOrderCmd) Usage() string {
	return `pbook add-order -id <order> -sku <sku> [-name <product>] -qty <n> -price <unit price> [-fees <fees>] [-ship <cost>] [-source WarehouseShipped|DirectShipped] [-date <YYYY-MM-DD>]

  Records an order. Warehouse shipped orders take units from the warehouse
  stock and their shipping cost is paid by partner B. Fees and shipping are for
  the whole order. The product name defaults to the one already known for the SKU.
`
}

func (c *addOrderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in.OrderID, "id", "", "Marketplace order identifier.")
	f.StringVar(&c.in.SKU, "sku", "", "Stock keeping unit.")
	f.StringVar(&c.in.ProductName, "name", "", "Product name. Defaults to the name known for the SKU.")
	f.StringVar(&c.in.Quantity, "qty", "", "Number of units sold.")
	f.StringVar(&c.in.SalePricePerUnit, "price", "", "Sale price per unit.")
	f.StringVar(&c.in.MarketplaceFees, "fees", "", "Marketplace fees for the order.")
	f.StringVar(&c.in.ShippingCost, "ship", "", "Shipping cost of the order.")
	f.StringVar(&c.in.FulfillmentSource, "source", string(partnership.WarehouseShipped), "Fulfillment source: WarehouseShipped or DirectShipped.")
	f.StringVar(&c.in.OrderDate, "date", date.Today().String(), "Order date.")
}

func (c *addOrderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openBook()
	if err != nil {
		return fail("%v", err)
	}
	if c.in.ProductName == "" {
		c.in.ProductName = productName(l.Snapshot(), c.in.SKU)
	}
	o, err := l.AddOrder(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := saveBook(l); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(out, "Recorded order %s (#%d): %s x %s, %s, revenue %s\n", o.OrderID, o.ID, o.Quantity, o.SKU, o.FulfillmentSource, o.Revenue().Format(currency()))
	return subcommands.ExitSuccess
}

// productName returns the name known for sku, or "".
func productName(s partnership.Snapshot, sku string) string {
	for _, p := range partnership.ReconcileAll(s) {
		if p.SKU == sku {
			return p.ProductName
		}
	}
	return ""
}
