package partnership

import (
	"testing"

	"github.com/shopspring/decimal"
)

// USD is a helper for test to create money from a const.
func USD(v string) Money { return M(decimal.RequireFromString(v)) }

// shipment is a helper for test returning a valid shipment input.
func shipment(id, sku string, qty, mfg, ship string) ShipmentInput {
	return ShipmentInput{
		ShipmentID:                     id,
		SKU:                            sku,
		ProductName:                    "Product " + sku,
		Quantity:                       qty,
		ManufacturingCostPerUnit:       mfg,
		ShippingCostPerUnitToWarehouse: ship,
		ArrivalDate:                    "2025-01-15",
	}
}

// order is a helper for test returning a valid order input.
func order(id, sku string, qty, price, fees, ship string, source FulfillmentSource) OrderInput {
	return OrderInput{
		OrderID:           id,
		SKU:               sku,
		ProductName:       "Product " + sku,
		Quantity:          qty,
		SalePricePerUnit:  price,
		MarketplaceFees:   fees,
		ShippingCost:      ship,
		FulfillmentSource: string(source),
		OrderDate:         "2025-02-01",
	}
}

// mustLedger returns a ledger with the given entries added in order.
func mustLedger(t *testing.T, entries ...any) *Ledger {
	t.Helper()
	l := NewLedger()
	for _, e := range entries {
		var err error
		switch v := e.(type) {
		case ShipmentInput:
			_, err = l.AddShipment(v)
		case OrderInput:
			_, err = l.AddOrder(v)
		default:
			t.Fatalf("unsupported entry %T", e)
		}
		if err != nil {
			t.Fatalf("cannot add %+v: %v", e, err)
		}
	}
	return l
}
