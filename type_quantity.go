package partnership

import "strconv"

// Quantity is a count of units. Stock positions derived from a ledger can be
// negative, quantities recorded in the ledger are always positive.
type Quantity int64

func (q Quantity) IsPositive() bool { return q > 0 }
func (q Quantity) IsNegative() bool { return q < 0 }
func (q Quantity) IsZero() bool     { return q == 0 }
func (q Quantity) String() string   { return strconv.FormatInt(int64(q), 10) }
