package partnership

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Document is the portable export of a ledger.
//
// It is self contained: importing it restores the exact same collections.
type Document struct {
	Shipments  []InventoryShipment `json:"shipments"`
	Orders     []Order             `json:"orders"`
	ExportedAt time.Time           `json:"exportedAt"`
}

// now is the clock used to stamp exported documents.
var now = time.Now

// Serialize returns the document for s, stamped with the current time.
func Serialize(s Snapshot) Document {
	c := s.clone()
	return Document{
		Shipments:  c.Shipments,
		Orders:     c.Orders,
		ExportedAt: now().UTC(),
	}
}

// Deserialize returns the snapshot held by doc.
//
// Both collections must be present and every entry valid, otherwise a
// *FormatError is returned.
func Deserialize(doc Document) (Snapshot, error) {
	s := Snapshot{Shipments: doc.Shipments, Orders: doc.Orders}
	if err := s.validate(); err != nil {
		return Snapshot{}, err
	}
	return s.clone(), nil
}

// EncodeDocument writes doc to w as indented JSON.
func EncodeDocument(w io.Writer, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal document: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write document: %w", err)
	}
	return nil
}

// DecodeDocument reads a document from r and returns its snapshot.
//
// The document must be a JSON object whose "shipments" and "orders" properties
// are arrays; any other shape, or any invalid entry, is a *FormatError.
// "exportedAt" is ignored, whatever its value.
func DecodeDocument(r io.Reader) (Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("cannot read document: %w", err)
	}

	var generic any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&generic); err != nil {
		return Snapshot{}, &FormatError{Reason: "not a JSON document", Err: err}
	}
	for _, path := range []string{"$.shipments", "$.orders"} {
		if err := requireArray(generic, path); err != nil {
			return Snapshot{}, err
		}
	}

	// exportedAt is informative only, it is not read back.
	var entries struct {
		Shipments []InventoryShipment `json:"shipments"`
		Orders    []Order             `json:"orders"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return Snapshot{}, &FormatError{Reason: "cannot decode entries", Err: err}
	}
	return Deserialize(Document{Shipments: entries.Shipments, Orders: entries.Orders})
}

// requireArray checks that path selects a JSON array in v.
func requireArray(v any, path string) error {
	got, err := jsonpath.Get(path, v)
	if err != nil {
		return &FormatError{Reason: fmt.Sprintf("missing %s", path), Err: err}
	}
	if _, ok := got.([]any); !ok {
		return &FormatError{Reason: fmt.Sprintf("%s is not an array", path)}
	}
	return nil
}
