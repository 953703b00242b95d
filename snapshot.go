package partnership

import (
	"fmt"
	"slices"
)

// Snapshot is an immutable view of the two ledger collections, in insertion order.
//
// A Snapshot returned by the Ledger owns its slices: they are never modified
// by the ledger afterwards.
type Snapshot struct {
	Shipments []InventoryShipment
	Orders    []Order
}

// EmptySnapshot returns a snapshot with two empty collections.
func EmptySnapshot() Snapshot {
	return Snapshot{Shipments: []InventoryShipment{}, Orders: []Order{}}
}

// clone returns a copy of s that shares no memory with it. Nil collections become empty ones.
func (s Snapshot) clone() Snapshot {
	c := Snapshot{
		Shipments: slices.Clone(s.Shipments),
		Orders:    slices.Clone(s.Orders),
	}
	if c.Shipments == nil {
		c.Shipments = []InventoryShipment{}
	}
	if c.Orders == nil {
		c.Orders = []Order{}
	}
	return c
}

// IsEmpty reports whether both collections are empty.
func (s Snapshot) IsEmpty() bool { return len(s.Shipments) == 0 && len(s.Orders) == 0 }

// Equal reports whether s and x hold equal entries in the same order.
func (s Snapshot) Equal(x Snapshot) bool {
	return slices.EqualFunc(s.Shipments, x.Shipments, InventoryShipment.Equal) &&
		slices.EqualFunc(s.Orders, x.Orders, Order.Equal)
}

// maxID returns the greatest id used in s, or 0.
func (s Snapshot) maxID() int64 {
	var m int64
	for _, sh := range s.Shipments {
		m = max(m, sh.ID)
	}
	for _, o := range s.Orders {
		m = max(m, o.ID)
	}
	return m
}

// validate checks every entry and the uniqueness of ids across both collections.
func (s Snapshot) validate() error {
	if s.Shipments == nil {
		return &FormatError{Reason: "missing shipments collection"}
	}
	if s.Orders == nil {
		return &FormatError{Reason: "missing orders collection"}
	}
	seen := make(map[int64]bool, len(s.Shipments)+len(s.Orders))
	for i, sh := range s.Shipments {
		if err := sh.Validate(); err != nil {
			return &FormatError{Reason: fmt.Sprintf("shipment #%d", i), Err: err}
		}
		if seen[sh.ID] {
			return &FormatError{Reason: fmt.Sprintf("duplicate id %d", sh.ID)}
		}
		seen[sh.ID] = true
	}
	for i, o := range s.Orders {
		if err := o.Validate(); err != nil {
			return &FormatError{Reason: fmt.Sprintf("order #%d", i), Err: err}
		}
		if seen[o.ID] {
			return &FormatError{Reason: fmt.Sprintf("duplicate id %d", o.ID)}
		}
		seen[o.ID] = true
	}
	return nil
}
