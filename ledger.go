package partnership

import "sync"

// Ledger is the store of the two append-only collections: inventory shipments
// and orders.
//
// Entries are only created through AddShipment and AddOrder, which validate
// their input, and are only removed all together by Clear or Restore. Every
// mutation either fully commits or leaves the ledger unchanged.
//
// The Ledger does not persist itself: the host is expected to Save a fresh
// Snapshot through a Gateway after each successful mutation.
type Ledger struct {
	mu        sync.RWMutex
	shipments []InventoryShipment
	orders    []Order
	lastID    int64 // ids are allocated in increasing order
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		shipments: make([]InventoryShipment, 0),
		orders:    make([]Order, 0),
	}
}

// NewLedgerFrom creates a ledger holding the entries of s.
func NewLedgerFrom(s Snapshot) (*Ledger, error) {
	l := NewLedger()
	if err := l.Restore(s); err != nil {
		return nil, err
	}
	return l, nil
}

// nextID returns a fresh id, greater than any id in the ledger.
func (l *Ledger) nextID() int64 { return l.lastID + 1 }

// AddShipment validates in and appends the resulting shipment.
// On failure it returns a *ValidationError and the ledger is unchanged.
func (l *Ledger) AddShipment(in ShipmentInput) (InventoryShipment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, err := NewShipment(l.nextID(), in)
	if err != nil {
		return InventoryShipment{}, err
	}
	l.shipments = append(l.shipments, s)
	l.lastID = s.ID
	return s, nil
}

// AddOrder validates in and appends the resulting order.
// On failure it returns a *ValidationError and the ledger is unchanged.
func (l *Ledger) AddOrder(in OrderInput) (Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	o, err := NewOrder(l.nextID(), in)
	if err != nil {
		return Order{}, err
	}
	l.orders = append(l.orders, o)
	l.lastID = o.ID
	return o, nil
}

// Clear removes every entry. It cannot be undone.
//
// Ids keep increasing after a Clear.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.shipments = make([]InventoryShipment, 0)
	l.orders = make([]Order, 0)
}

// Snapshot returns the committed state of the ledger.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Snapshot{Shipments: l.shipments, Orders: l.orders}.clone()
}

// Restore replaces both collections with the content of s.
//
// Every entry is validated and ids must be unique. On failure it returns a
// *FormatError and the ledger is unchanged.
func (l *Ledger) Restore(s Snapshot) error {
	if err := s.validate(); err != nil {
		return err
	}
	s = s.clone()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.shipments, l.orders = s.Shipments, s.Orders
	l.lastID = max(l.lastID, s.maxID())
	return nil
}

// Len returns the number of shipments and orders in the ledger.
func (l *Ledger) Len() (shipments, orders int) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.shipments), len(l.orders)
}
