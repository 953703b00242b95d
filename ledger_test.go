package partnership

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestLedger_AddShipment(t *testing.T) {
	l := NewLedger()
	s, err := l.AddShipment(shipment("S1", "X", "100", "2.00", ""))
	if err != nil {
		t.Fatalf("AddShipment() error = %v", err)
	}
	if s.ID <= 0 {
		t.Errorf("AddShipment() id = %d, want a positive id", s.ID)
	}
	if !s.ShippingCostPerUnitToWarehouse.IsZero() {
		t.Errorf("blank shipping cost = %v, want 0", s.ShippingCostPerUnitToWarehouse)
	}
	snap := l.Snapshot()
	if len(snap.Shipments) != 1 || !snap.Shipments[0].Equal(s) {
		t.Errorf("Snapshot().Shipments = %+v, want [%+v]", snap.Shipments, s)
	}
}

func TestLedger_IDsFollowInsertionOrder(t *testing.T) {
	l := NewLedger()
	s1, _ := l.AddShipment(shipment("S1", "X", "1", "", ""))
	o1, _ := l.AddOrder(order("O1", "X", "1", "5", "", "", WarehouseShipped))
	s2, _ := l.AddShipment(shipment("S2", "X", "1", "", ""))

	if !(s1.ID < o1.ID && o1.ID < s2.ID) {
		t.Errorf("ids are not increasing: %d, %d, %d", s1.ID, o1.ID, s2.ID)
	}

	l.Clear()
	s3, _ := l.AddShipment(shipment("S3", "X", "1", "", ""))
	if s3.ID <= s2.ID {
		t.Errorf("id after Clear() = %d, want greater than %d", s3.ID, s2.ID)
	}
}

// TestLedger_RejectionLeavesLedgerUnchanged checks that a failed add has no effect at all.
func TestLedger_RejectionLeavesLedgerUnchanged(t *testing.T) {
	l := mustLedger(t,
		shipment("S1", "X", "100", "2.00", "1.00"),
		order("O1", "X", "10", "10.00", "1.00", "2.00", WarehouseShipped),
	)
	before, err := json.Marshal(l.Snapshot())
	if err != nil {
		t.Fatal(err)
	}

	badShipments := map[string]ShipmentInput{
		"missing sku":        shipment("S2", "", "5", "1", "1"),
		"blank sku":          shipment("S2", "   ", "5", "1", "1"),
		"zero quantity":      shipment("S2", "Y", "0", "1", "1"),
		"decimal quantity":   shipment("S2", "Y", "2.5", "1", "1"),
		"text quantity":      shipment("S2", "Y", "many", "1", "1"),
		"negative cost":      shipment("S2", "Y", "5", "-1", "1"),
		"missing shipmentId": shipment("", "Y", "5", "1", "1"),
	}
	for name, in := range badShipments {
		t.Run(name, func(t *testing.T) {
			_, err := l.AddShipment(in)
			if !IsValidation(err) {
				t.Errorf("AddShipment() error = %v, want a ValidationError", err)
			}
		})
	}

	noDate := order("O2", "Y", "1", "5", "", "", DirectShipped)
	noDate.OrderDate = ""
	badOrders := map[string]OrderInput{
		"missing price":  order("O2", "Y", "1", "", "", "", DirectShipped),
		"invalid price":  order("O2", "Y", "1", "abc", "", "", DirectShipped),
		"missing date":   noDate,
		"unknown source": order("O2", "Y", "1", "5", "", "", FulfillmentSource("drone")),
	}
	for name, in := range badOrders {
		t.Run(name, func(t *testing.T) {
			_, err := l.AddOrder(in)
			if !IsValidation(err) {
				t.Errorf("AddOrder() error = %v, want a ValidationError", err)
			}
		})
	}

	after, err := json.Marshal(l.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Errorf("snapshot changed after rejected adds:\nbefore %s\nafter  %s", before, after)
	}
}

func TestLedger_MissingSKUReportsField(t *testing.T) {
	_, err := NewLedger().AddShipment(shipment("S1", "", "1", "", ""))
	v, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("AddShipment() error = %v, want *ValidationError", err)
	}
	if v.Field != "sku" {
		t.Errorf("ValidationError.Field = %q, want %q", v.Field, "sku")
	}
}

func TestLedger_SnapshotIsImmutable(t *testing.T) {
	l := mustLedger(t, shipment("S1", "X", "1", "", ""))
	snap := l.Snapshot()
	snap.Shipments[0].SKU = "changed"
	snap.Shipments = append(snap.Shipments, InventoryShipment{})

	got := l.Snapshot()
	if len(got.Shipments) != 1 || got.Shipments[0].SKU != "X" {
		t.Errorf("ledger was modified through its snapshot: %+v", got.Shipments)
	}
}

func TestLedger_Clear(t *testing.T) {
	l := mustLedger(t,
		shipment("S1", "X", "1", "", ""),
		order("O1", "X", "1", "5", "", "", WarehouseShipped),
	)
	l.Clear()
	if s, o := l.Len(); s != 0 || o != 0 {
		t.Errorf("Len() after Clear() = %d, %d, want 0, 0", s, o)
	}
	if snap := l.Snapshot(); snap.Shipments == nil || snap.Orders == nil {
		t.Error("Snapshot() after Clear() should hold empty, non nil, collections")
	}
}

func TestLedger_Restore(t *testing.T) {
	src := mustLedger(t,
		shipment("S1", "X", "3", "1", ""),
		order("O1", "X", "1", "5", "", "", DirectShipped),
	).Snapshot()

	l := mustLedger(t, shipment("OLD", "Z", "9", "", ""))
	if err := l.Restore(src); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if got := l.Snapshot(); !got.Equal(src) {
		t.Errorf("Snapshot() after Restore() = %+v, want %+v", got, src)
	}

	// new ids do not collide with restored ones.
	s, err := l.AddShipment(shipment("S2", "X", "1", "", ""))
	if err != nil {
		t.Fatal(err)
	}
	if s.ID <= src.maxID() {
		t.Errorf("id after Restore() = %d, want greater than %d", s.ID, src.maxID())
	}
}

func TestLedger_RestoreRejectsInvalidSnapshots(t *testing.T) {
	valid := mustLedger(t,
		shipment("S1", "X", "3", "1", ""),
		order("O1", "X", "1", "5", "", "", DirectShipped),
	).Snapshot()

	duplicate := valid.clone()
	duplicate.Orders[0].ID = duplicate.Shipments[0].ID

	incomplete := valid.clone()
	incomplete.Shipments[0].Quantity = 0

	testCases := map[string]Snapshot{
		"missing orders":    {Shipments: valid.Shipments},
		"missing shipments": {Orders: valid.Orders},
		"duplicate ids":     duplicate,
		"invalid entry":     incomplete,
	}
	for name, snap := range testCases {
		t.Run(name, func(t *testing.T) {
			l := mustLedger(t, shipment("KEEP", "K", "1", "", ""))
			before := l.Snapshot()
			err := l.Restore(snap)
			if !IsFormat(err) {
				t.Errorf("Restore() error = %v, want a FormatError", err)
			}
			if !l.Snapshot().Equal(before) {
				t.Error("ledger changed after a failed Restore()")
			}
		})
	}
}

func TestNewLedgerFrom(t *testing.T) {
	if _, err := NewLedgerFrom(Snapshot{}); !IsFormat(err) {
		t.Errorf("NewLedgerFrom(Snapshot{}) error = %v, want a FormatError", err)
	}
	l, err := NewLedgerFrom(EmptySnapshot())
	if err != nil {
		t.Fatalf("NewLedgerFrom(EmptySnapshot()) error = %v", err)
	}
	if !l.Snapshot().IsEmpty() {
		t.Error("ledger should be empty")
	}
}
