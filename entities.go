package partnership

import (
	"fmt"
	"strings"

	"github.com/etnz/partnership/date"
	"github.com/shopspring/decimal"
)

// FulfillmentSource tells how an order reached the customer.
type FulfillmentSource string

const (
	// WarehouseShipped orders are picked from warehouse stock, partner B pays the customer shipping.
	WarehouseShipped FulfillmentSource = "WarehouseShipped"
	// DirectShipped orders are shipped directly to the customer, without touching warehouse stock.
	DirectShipped FulfillmentSource = "DirectShipped"
)

// ParseFulfillmentSource parses a fulfillment source. It is case insensitive,
// defaults to WarehouseShipped when s is blank and understands the values used
// by the original web application ("houston" and "direct").
func ParseFulfillmentSource(s string) (FulfillmentSource, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warehouseshipped", "warehouse", "houston":
		return WarehouseShipped, nil
	case "directshipped", "direct":
		return DirectShipped, nil
	default:
		return "", fmt.Errorf("unknown fulfillment source %q want %q or %q", s, WarehouseShipped, DirectShipped)
	}
}

// InventoryShipment is a bulk inbound shipment to the warehouse, funded by partner A.
type InventoryShipment struct {
	ID                             int64           `json:"id"`
	ShipmentID                     string          `json:"shipmentId"`
	SKU                            string          `json:"sku"`
	ProductName                    string          `json:"productName"`
	Quantity                       Quantity        `json:"quantity"`
	ManufacturingCostPerUnit       decimal.Decimal `json:"manufacturingCostPerUnit"`
	ShippingCostPerUnitToWarehouse decimal.Decimal `json:"shippingCostPerUnitToWarehouse"`
	ArrivalDate                    date.Date       `json:"arrivalDate"`
}

// ManufacturingCost is the manufacturing cost of the whole shipment.
func (s InventoryShipment) ManufacturingCost() Money {
	return M(s.ManufacturingCostPerUnit).Mul(s.Quantity)
}

// WarehouseShippingCost is the cost of shipping the whole shipment to the warehouse.
func (s InventoryShipment) WarehouseShippingCost() Money {
	return M(s.ShippingCostPerUnitToWarehouse).Mul(s.Quantity)
}

// TotalCost is what partner A paid for this shipment.
func (s InventoryShipment) TotalCost() Money {
	return s.ManufacturingCost().Add(s.WarehouseShippingCost())
}

// Equal reports whether s and x hold the same values, decimals being compared by value.
func (s InventoryShipment) Equal(x InventoryShipment) bool {
	return s.ID == x.ID &&
		s.ShipmentID == x.ShipmentID &&
		s.SKU == x.SKU &&
		s.ProductName == x.ProductName &&
		s.Quantity == x.Quantity &&
		s.ManufacturingCostPerUnit.Equal(x.ManufacturingCostPerUnit) &&
		s.ShippingCostPerUnitToWarehouse.Equal(x.ShippingCostPerUnitToWarehouse) &&
		s.ArrivalDate == x.ArrivalDate
}

// Validate checks that a decoded shipment is complete.
func (s InventoryShipment) Validate() error {
	switch {
	case s.ID <= 0:
		return &ValidationError{Field: "id", Reason: "must be positive"}
	case strings.TrimSpace(s.ShipmentID) == "":
		return &ValidationError{Field: "shipmentId", Reason: "is required"}
	case strings.TrimSpace(s.SKU) == "":
		return &ValidationError{Field: "sku", Reason: "is required"}
	case strings.TrimSpace(s.ProductName) == "":
		return &ValidationError{Field: "productName", Reason: "is required"}
	case !s.Quantity.IsPositive():
		return &ValidationError{Field: "quantity", Reason: "must be positive"}
	case s.ManufacturingCostPerUnit.IsNegative():
		return &ValidationError{Field: "manufacturingCostPerUnit", Reason: "is negative"}
	case s.ShippingCostPerUnitToWarehouse.IsNegative():
		return &ValidationError{Field: "shippingCostPerUnitToWarehouse", Reason: "is negative"}
	case s.ArrivalDate.IsZero():
		return &ValidationError{Field: "arrivalDate", Reason: "is required"}
	}
	return nil
}

// Order is a sale to a customer.
type Order struct {
	ID                int64             `json:"id"`
	OrderID           string            `json:"orderId"`
	SKU               string            `json:"sku"`
	ProductName       string            `json:"productName"`
	Quantity          Quantity          `json:"quantity"`
	SalePricePerUnit  decimal.Decimal   `json:"salePricePerUnit"`
	MarketplaceFees   decimal.Decimal   `json:"marketplaceFees"`
	ShippingCost      decimal.Decimal   `json:"shippingCost"`
	FulfillmentSource FulfillmentSource `json:"fulfillmentSource"`
	OrderDate         date.Date         `json:"orderDate"`
}

// Revenue is the sale price of all units of the order.
func (o Order) Revenue() Money { return M(o.SalePricePerUnit).Mul(o.Quantity) }

// Fees are the marketplace fees, charged once per order.
func (o Order) Fees() Money { return M(o.MarketplaceFees) }

// PartnerBCost is the customer shipping paid by partner B: the flat order
// shipping cost for warehouse shipped orders, whatever the quantity, and
// nothing for direct shipments.
func (o Order) PartnerBCost() Money {
	if o.FulfillmentSource != WarehouseShipped {
		return Money{}
	}
	return M(o.ShippingCost)
}

// Equal reports whether o and x hold the same values, decimals being compared by value.
func (o Order) Equal(x Order) bool {
	return o.ID == x.ID &&
		o.OrderID == x.OrderID &&
		o.SKU == x.SKU &&
		o.ProductName == x.ProductName &&
		o.Quantity == x.Quantity &&
		o.SalePricePerUnit.Equal(x.SalePricePerUnit) &&
		o.MarketplaceFees.Equal(x.MarketplaceFees) &&
		o.ShippingCost.Equal(x.ShippingCost) &&
		o.FulfillmentSource == x.FulfillmentSource &&
		o.OrderDate == x.OrderDate
}

// Validate checks that a decoded order is complete.
func (o Order) Validate() error {
	switch {
	case o.ID <= 0:
		return &ValidationError{Field: "id", Reason: "must be positive"}
	case strings.TrimSpace(o.OrderID) == "":
		return &ValidationError{Field: "orderId", Reason: "is required"}
	case strings.TrimSpace(o.SKU) == "":
		return &ValidationError{Field: "sku", Reason: "is required"}
	case strings.TrimSpace(o.ProductName) == "":
		return &ValidationError{Field: "productName", Reason: "is required"}
	case !o.Quantity.IsPositive():
		return &ValidationError{Field: "quantity", Reason: "must be positive"}
	case o.SalePricePerUnit.IsNegative():
		return &ValidationError{Field: "salePricePerUnit", Reason: "is negative"}
	case o.MarketplaceFees.IsNegative():
		return &ValidationError{Field: "marketplaceFees", Reason: "is negative"}
	case o.ShippingCost.IsNegative():
		return &ValidationError{Field: "shippingCost", Reason: "is negative"}
	case o.FulfillmentSource != WarehouseShipped && o.FulfillmentSource != DirectShipped:
		return &ValidationError{Field: "fulfillmentSource", Reason: fmt.Sprintf("unknown value %q", o.FulfillmentSource)}
	case o.OrderDate.IsZero():
		return &ValidationError{Field: "orderDate", Reason: "is required"}
	}
	return nil
}

// ShipmentInput is a shipment as typed in a form: every field is raw text.
type ShipmentInput struct {
	ShipmentID                     string `json:"shipmentId" validate:"required"`
	SKU                            string `json:"sku" validate:"required"`
	ProductName                    string `json:"productName" validate:"required"`
	Quantity                       string `json:"quantity" validate:"required"`
	ManufacturingCostPerUnit       string `json:"manufacturingCostPerUnit"`
	ShippingCostPerUnitToWarehouse string `json:"shippingCostPerUnitToWarehouse"`
	ArrivalDate                    string `json:"arrivalDate" validate:"required"`
}

// OrderInput is an order as typed in a form: every field is raw text.
type OrderInput struct {
	OrderID           string `json:"orderId" validate:"required"`
	SKU               string `json:"sku" validate:"required"`
	ProductName       string `json:"productName" validate:"required"`
	Quantity          string `json:"quantity" validate:"required"`
	SalePricePerUnit  string `json:"salePricePerUnit" validate:"required"`
	MarketplaceFees   string `json:"marketplaceFees"`
	ShippingCost      string `json:"shippingCost"`
	FulfillmentSource string `json:"fulfillmentSource"`
	OrderDate         string `json:"orderDate" validate:"required"`
}

// NewShipment validates in and returns the shipment with the given id.
// Required fields must be present and parseable, optional costs default to 0.
func NewShipment(id int64, in ShipmentInput) (InventoryShipment, error) {
	in.ShipmentID = strings.TrimSpace(in.ShipmentID)
	in.SKU = strings.TrimSpace(in.SKU)
	in.ProductName = strings.TrimSpace(in.ProductName)
	in.Quantity = strings.TrimSpace(in.Quantity)
	in.ArrivalDate = strings.TrimSpace(in.ArrivalDate)
	if err := checkRequired(in); err != nil {
		return InventoryShipment{}, err
	}

	qty, err := parseQuantity("quantity", in.Quantity)
	if err != nil {
		return InventoryShipment{}, err
	}
	mfg, err := parseOptionalAmount("manufacturingCostPerUnit", in.ManufacturingCostPerUnit)
	if err != nil {
		return InventoryShipment{}, err
	}
	ship, err := parseOptionalAmount("shippingCostPerUnitToWarehouse", in.ShippingCostPerUnitToWarehouse)
	if err != nil {
		return InventoryShipment{}, err
	}
	arrival, err := parseDate("arrivalDate", in.ArrivalDate)
	if err != nil {
		return InventoryShipment{}, err
	}

	return InventoryShipment{
		ID:                             id,
		ShipmentID:                     in.ShipmentID,
		SKU:                            in.SKU,
		ProductName:                    in.ProductName,
		Quantity:                       qty,
		ManufacturingCostPerUnit:       mfg,
		ShippingCostPerUnitToWarehouse: ship,
		ArrivalDate:                    arrival,
	}, nil
}

// NewOrder validates in and returns the order with the given id.
// Required fields must be present and parseable, optional costs default to 0.
func NewOrder(id int64, in OrderInput) (Order, error) {
	in.OrderID = strings.TrimSpace(in.OrderID)
	in.SKU = strings.TrimSpace(in.SKU)
	in.ProductName = strings.TrimSpace(in.ProductName)
	in.Quantity = strings.TrimSpace(in.Quantity)
	in.SalePricePerUnit = strings.TrimSpace(in.SalePricePerUnit)
	in.OrderDate = strings.TrimSpace(in.OrderDate)
	if err := checkRequired(in); err != nil {
		return Order{}, err
	}

	qty, err := parseQuantity("quantity", in.Quantity)
	if err != nil {
		return Order{}, err
	}
	price, err := parseAmount("salePricePerUnit", in.SalePricePerUnit)
	if err != nil {
		return Order{}, err
	}
	fees, err := parseOptionalAmount("marketplaceFees", in.MarketplaceFees)
	if err != nil {
		return Order{}, err
	}
	shipping, err := parseOptionalAmount("shippingCost", in.ShippingCost)
	if err != nil {
		return Order{}, err
	}
	source, err := ParseFulfillmentSource(in.FulfillmentSource)
	if err != nil {
		return Order{}, &ValidationError{Field: "fulfillmentSource", Reason: err.Error()}
	}
	on, err := parseDate("orderDate", in.OrderDate)
	if err != nil {
		return Order{}, err
	}

	return Order{
		ID:                id,
		OrderID:           in.OrderID,
		SKU:               in.SKU,
		ProductName:       in.ProductName,
		Quantity:          qty,
		SalePricePerUnit:  price,
		MarketplaceFees:   fees,
		ShippingCost:      shipping,
		FulfillmentSource: source,
		OrderDate:         on,
	}, nil
}
