package partnership

import (
	"testing"

	"github.com/etnz/partnership/date"
	"github.com/shopspring/decimal"
)

func TestParseFulfillmentSource(t *testing.T) {
	tests := []struct {
		input   string
		want    FulfillmentSource
		wantErr bool
	}{
		{"", WarehouseShipped, false},
		{"WarehouseShipped", WarehouseShipped, false},
		{"warehouseshipped", WarehouseShipped, false},
		{" houston ", WarehouseShipped, false},
		{"DirectShipped", DirectShipped, false},
		{"DIRECT", DirectShipped, false},
		{"drone", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFulfillmentSource(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFulfillmentSource(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFulfillmentSource(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewShipment(t *testing.T) {
	in := ShipmentInput{
		ShipmentID:                     " SH-1 ",
		SKU:                            " MUG-BLUE ",
		ProductName:                    "Blue mug",
		Quantity:                       " 12 ",
		ManufacturingCostPerUnit:       "1.255",
		ShippingCostPerUnitToWarehouse: "n/a",
		ArrivalDate:                    "2025-1-5",
	}
	got, err := NewShipment(7, in)
	if err != nil {
		t.Fatalf("NewShipment() error = %v", err)
	}
	want := InventoryShipment{
		ID:                             7,
		ShipmentID:                     "SH-1",
		SKU:                            "MUG-BLUE",
		ProductName:                    "Blue mug",
		Quantity:                       12,
		ManufacturingCostPerUnit:       decimal.RequireFromString("1.255"),
		ShippingCostPerUnitToWarehouse: decimal.Zero,
		ArrivalDate:                    date.New(2025, 1, 5),
	}
	if !got.Equal(want) {
		t.Errorf("NewShipment() = %+v, want %+v", got, want)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	if want := USD("15.06"); !got.TotalCost().Equal(want) {
		t.Errorf("TotalCost() = %v, want %v", got.TotalCost().Decimal(), want.Decimal())
	}
}

func TestNewShipment_Errors(t *testing.T) {
	tests := []struct {
		name      string
		edit      func(*ShipmentInput)
		wantField string
	}{
		{"no shipment id", func(in *ShipmentInput) { in.ShipmentID = "" }, "shipmentId"},
		{"blank sku", func(in *ShipmentInput) { in.SKU = "  " }, "sku"},
		{"no product name", func(in *ShipmentInput) { in.ProductName = "" }, "productName"},
		{"no quantity", func(in *ShipmentInput) { in.Quantity = "" }, "quantity"},
		{"negative quantity", func(in *ShipmentInput) { in.Quantity = "-3" }, "quantity"},
		{"negative manufacturing cost", func(in *ShipmentInput) { in.ManufacturingCostPerUnit = "-0.01" }, "manufacturingCostPerUnit"},
		{"negative shipping cost", func(in *ShipmentInput) { in.ShippingCostPerUnitToWarehouse = "-1" }, "shippingCostPerUnitToWarehouse"},
		{"no arrival date", func(in *ShipmentInput) { in.ArrivalDate = "" }, "arrivalDate"},
		{"invalid arrival date", func(in *ShipmentInput) { in.ArrivalDate = "15/01/2025" }, "arrivalDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := shipment("S1", "X", "1", "1", "1")
			tt.edit(&in)
			_, err := NewShipment(1, in)
			v, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("NewShipment() error = %v, want *ValidationError", err)
			}
			if v.Field != tt.wantField {
				t.Errorf("ValidationError.Field = %q, want %q", v.Field, tt.wantField)
			}
		})
	}
}

func TestNewOrder(t *testing.T) {
	in := order("O-1", "X", "3", "9.99", "", "4.50", "")
	got, err := NewOrder(2, in)
	if err != nil {
		t.Fatalf("NewOrder() error = %v", err)
	}
	if got.FulfillmentSource != WarehouseShipped {
		t.Errorf("FulfillmentSource = %q, want %q", got.FulfillmentSource, WarehouseShipped)
	}
	if !got.MarketplaceFees.IsZero() {
		t.Errorf("MarketplaceFees = %v, want 0", got.MarketplaceFees)
	}
	if want := USD("29.97"); !got.Revenue().Equal(want) {
		t.Errorf("Revenue() = %v, want %v", got.Revenue(), want)
	}
	// the shipping cost is flat, whatever the quantity.
	if want := USD("4.50"); !got.PartnerBCost().Equal(want) {
		t.Errorf("PartnerBCost() = %v, want %v", got.PartnerBCost(), want)
	}

	in.FulfillmentSource = "direct"
	direct, err := NewOrder(3, in)
	if err != nil {
		t.Fatalf("NewOrder() error = %v", err)
	}
	if !direct.PartnerBCost().IsZero() {
		t.Errorf("PartnerBCost() of a direct order = %v, want 0", direct.PartnerBCost())
	}
}

func TestNewOrder_Errors(t *testing.T) {
	tests := []struct {
		name      string
		edit      func(*OrderInput)
		wantField string
	}{
		{"no order id", func(in *OrderInput) { in.OrderID = "" }, "orderId"},
		{"no sale price", func(in *OrderInput) { in.SalePricePerUnit = " " }, "salePricePerUnit"},
		{"invalid sale price", func(in *OrderInput) { in.SalePricePerUnit = "ten" }, "salePricePerUnit"},
		{"negative sale price", func(in *OrderInput) { in.SalePricePerUnit = "-10" }, "salePricePerUnit"},
		{"decimal quantity", func(in *OrderInput) { in.Quantity = "1.5" }, "quantity"},
		{"negative fees", func(in *OrderInput) { in.MarketplaceFees = "-1" }, "marketplaceFees"},
		{"unknown source", func(in *OrderInput) { in.FulfillmentSource = "pigeon" }, "fulfillmentSource"},
		{"no order date", func(in *OrderInput) { in.OrderDate = "" }, "orderDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := order("O1", "X", "1", "10", "1", "1", WarehouseShipped)
			tt.edit(&in)
			_, err := NewOrder(1, in)
			v, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("NewOrder() error = %v, want *ValidationError", err)
			}
			if v.Field != tt.wantField {
				t.Errorf("ValidationError.Field = %q, want %q", v.Field, tt.wantField)
			}
		})
	}
}

func TestOptionalAmountsDefaultToZero(t *testing.T) {
	for _, input := range []string{"", "  ", "abc", "1,5"} {
		o, err := NewOrder(1, order("O1", "X", "1", "10", input, input, WarehouseShipped))
		if err != nil {
			t.Errorf("NewOrder() with optional %q error = %v", input, err)
			continue
		}
		if !o.MarketplaceFees.IsZero() || !o.ShippingCost.IsZero() {
			t.Errorf("optional %q parsed as %v, %v, want 0", input, o.MarketplaceFees, o.ShippingCost)
		}
	}
}
