package partnership

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// this file reads the export format of the original web application, so that
// its data can be migrated.
//
// The original format is a single JSON object with two arrays: "bulkInventory"
// and "ebayOrders". Entries were form values: numbers may be JSON numbers or
// strings, costs are named "manufacturingCost", "shippingCost", "salePrice" and
// "ebayFees", and the fulfillment is in "source" ("houston" or "direct").

// legacyValue is a form value, either a JSON string or a JSON number.
type legacyValue string

func (v *legacyValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = legacyValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*v = legacyValue(n.String())
		return nil
	}
	if string(data) == "null" {
		*v = ""
		return nil
	}
	return fmt.Errorf("unsupported form value %s", data)
}

type legacyShipment struct {
	ID                legacyValue `json:"id"`
	ShipmentID        legacyValue `json:"shipmentId"`
	SKU               legacyValue `json:"sku"`
	ProductName       legacyValue `json:"productName"`
	Quantity          legacyValue `json:"quantity"`
	ManufacturingCost legacyValue `json:"manufacturingCost"`
	ShippingCost      legacyValue `json:"shippingCost"`
	ArrivalDate       legacyValue `json:"arrivalDate"`
}

type legacyOrder struct {
	ID           legacyValue `json:"id"`
	OrderID      legacyValue `json:"orderId"`
	SKU          legacyValue `json:"sku"`
	ProductName  legacyValue `json:"productName"`
	Quantity     legacyValue `json:"quantity"`
	SalePrice    legacyValue `json:"salePrice"`
	EbayFees     legacyValue `json:"ebayFees"`
	ShippingCost legacyValue `json:"shippingCost"`
	Source       legacyValue `json:"source"`
	OrderDate    legacyValue `json:"orderDate"`
}

// DecodeLegacyDocument reads a document exported by the original web
// application and returns the equivalent snapshot.
//
// Every entry goes through NewShipment or NewOrder, so the same validation
// rules apply as for new entries. Original ids are kept when they are positive
// integers and unique, other entries get fresh ids.
func DecodeLegacyDocument(r io.Reader) (Snapshot, error) {
	var doc struct {
		BulkInventory *[]legacyShipment `json:"bulkInventory"`
		EbayOrders    *[]legacyOrder    `json:"ebayOrders"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Snapshot{}, &FormatError{Reason: "cannot decode legacy document", Err: err}
	}
	if doc.BulkInventory == nil || doc.EbayOrders == nil {
		return Snapshot{}, &FormatError{Reason: "legacy document requires both bulkInventory and ebayOrders"}
	}

	ids := newLegacyIDs(*doc.BulkInventory, *doc.EbayOrders)
	s := EmptySnapshot()
	for i, ls := range *doc.BulkInventory {
		sh, err := NewShipment(ids.shipments[i], ShipmentInput{
			ShipmentID:                     string(ls.ShipmentID),
			SKU:                            string(ls.SKU),
			ProductName:                    string(ls.ProductName),
			Quantity:                       legacyInteger(ls.Quantity),
			ManufacturingCostPerUnit:       legacyAmount(ls.ManufacturingCost),
			ShippingCostPerUnitToWarehouse: legacyAmount(ls.ShippingCost),
			ArrivalDate:                    string(ls.ArrivalDate),
		})
		if err != nil {
			return Snapshot{}, &FormatError{Reason: fmt.Sprintf("bulkInventory #%d", i), Err: err}
		}
		s.Shipments = append(s.Shipments, sh)
	}
	for i, lo := range *doc.EbayOrders {
		o, err := NewOrder(ids.orders[i], OrderInput{
			OrderID:           string(lo.OrderID),
			SKU:               string(lo.SKU),
			ProductName:       string(lo.ProductName),
			Quantity:          legacyInteger(lo.Quantity),
			SalePricePerUnit:  legacyAmount(lo.SalePrice),
			MarketplaceFees:   legacyAmount(lo.EbayFees),
			ShippingCost:      legacyAmount(lo.ShippingCost),
			FulfillmentSource: string(lo.Source),
			OrderDate:         string(lo.OrderDate),
		})
		if err != nil {
			return Snapshot{}, &FormatError{Reason: fmt.Sprintf("ebayOrders #%d", i), Err: err}
		}
		s.Orders = append(s.Orders, o)
	}
	return s, nil
}

// legacyInteger truncates a decimal quantity like "12.0" to its integer part,
// the way the original application parsed quantities.
func legacyInteger(v legacyValue) string {
	s := strings.TrimSpace(string(v))
	if i := strings.IndexByte(s, '.'); i > 0 {
		return s[:i]
	}
	return s
}

// legacyNumber matches the leading number of a form value.
var legacyNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// legacyAmount keeps the leading number of an amount like "1.50$", the way the
// original application parsed amounts. Text without a leading number is
// returned blank.
func legacyAmount(v legacyValue) string {
	return legacyNumber.FindString(strings.TrimSpace(string(v)))
}

// legacyIDs are the ids assigned to legacy entries, by position.
type legacyIDs struct {
	shipments []int64
	orders    []int64
}

// newLegacyIDs keeps original ids that are valid and unique, and allocates
// increasing ids after the greatest kept one for the others.
func newLegacyIDs(shipments []legacyShipment, orders []legacyOrder) legacyIDs {
	seen := make(map[int64]bool)
	var last int64
	keep := func(v legacyValue) int64 {
		id, err := strconv.ParseInt(strings.TrimSpace(string(v)), 10, 64)
		if err != nil || id <= 0 || seen[id] {
			return 0
		}
		seen[id] = true
		last = max(last, id)
		return id
	}

	ids := legacyIDs{
		shipments: make([]int64, len(shipments)),
		orders:    make([]int64, len(orders)),
	}
	for i, s := range shipments {
		ids.shipments[i] = keep(s.ID)
	}
	for i, o := range orders {
		ids.orders[i] = keep(o.ID)
	}
	for _, list := range [][]int64{ids.shipments, ids.orders} {
		for i, id := range list {
			if id == 0 {
				last++
				list[i] = last
			}
		}
	}
	return ids
}
