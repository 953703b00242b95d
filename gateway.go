package partnership

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Gateway persists ledger snapshots.
//
// The host calls Save after every committed mutation of a Ledger, and Load
// once to rebuild it.
type Gateway interface {
	Load() (Snapshot, error)
	Save(Snapshot) error
}

// File names of the two collections stored by a FileGateway.
const (
	ShipmentsFile = "shipments.json"
	OrdersFile    = "orders.json"
)

// FileGateway stores each collection as a JSON array in its own file in Dir.
type FileGateway struct {
	Dir string
}

// Load reads both collections. Missing files are empty collections.
func (g FileGateway) Load() (Snapshot, error) {
	s := EmptySnapshot()
	if err := loadCollection(filepath.Join(g.Dir, ShipmentsFile), &s.Shipments); err != nil {
		return Snapshot{}, err
	}
	if err := loadCollection(filepath.Join(g.Dir, OrdersFile), &s.Orders); err != nil {
		return Snapshot{}, err
	}
	if s.Shipments == nil {
		s.Shipments = []InventoryShipment{}
	}
	if s.Orders == nil {
		s.Orders = []Order{}
	}
	if err := s.validate(); err != nil {
		return Snapshot{}, fmt.Errorf("invalid data in %q: %w", g.Dir, err)
	}
	return s, nil
}

// Save writes both collections, each file being replaced atomically.
func (g FileGateway) Save(s Snapshot) error {
	s = s.clone()
	if err := os.MkdirAll(g.Dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", g.Dir, err)
	}
	if err := saveCollection(filepath.Join(g.Dir, ShipmentsFile), s.Shipments); err != nil {
		return err
	}
	return saveCollection(filepath.Join(g.Dir, OrdersFile), s.Orders)
}

// loadCollection decodes the JSON array in file into v. A missing file leaves v untouched.
func loadCollection(file string, v any) error {
	data, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not read %q: %w", file, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &FormatError{Reason: fmt.Sprintf("cannot decode %q", file), Err: err}
	}
	return nil
}

// saveCollection writes v as JSON into a temporary file then renames it to file.
func saveCollection(file string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal %q: %w", file, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(file), filepath.Base(file)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", file, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), file); err != nil {
		return fmt.Errorf("could not replace %q: %w", file, err)
	}
	return nil
}

// MemoryGateway keeps the last saved snapshot in memory.
type MemoryGateway struct {
	mu    sync.Mutex
	saved Snapshot
	saves int
}

// Load returns a copy of the last saved snapshot, or an empty one.
func (g *MemoryGateway) Load() (Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.saved.clone(), nil
}

// Save keeps a copy of s.
func (g *MemoryGateway) Save(s Snapshot) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.saved = s.clone()
	g.saves++
	return nil
}

// Saves returns how many times Save was called.
func (g *MemoryGateway) Saves() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.saves
}

// check that gateways implement the interface.
var _ Gateway = FileGateway{}
var _ Gateway = (*MemoryGateway)(nil)
