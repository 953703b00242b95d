package partnership

// FinancialSummary is the settlement of a ledger between the two partners.
//
// Values are exact: use Rounded to present them to the cent.
type FinancialSummary struct {
	// PartnerACost is what partner A paid: manufacturing and shipping to the
	// warehouse, per unit, for every shipment.
	PartnerACost Money `json:"partnerACost"`
	// PartnerBCost is what partner B paid: the flat shipping cost of every
	// warehouse shipped order.
	PartnerBCost Money `json:"partnerBCost"`
	TotalRevenue Money `json:"totalRevenue"`
	TotalFees    Money `json:"totalFees"`
	TotalCosts   Money `json:"totalCosts"`
	TotalProfit  Money `json:"totalProfit"`
	// PartnerShare is half the profit, whatever each partner's share of the costs.
	PartnerShare Money `json:"partnerShare"`
	// PartnerANet and PartnerBNet are positive when the partner is owed money,
	// negative when the partner owes money.
	PartnerANet Money `json:"partnerANet"`
	PartnerBNet Money `json:"partnerBNet"`

	// breakdown of PartnerACost.
	ManufacturingCost     Money `json:"manufacturingCost"`
	WarehouseShippingCost Money `json:"warehouseShippingCost"`
}

// ComputeSummary derives the financial summary of a snapshot.
//
// It never fails: an empty snapshot yields a zero summary.
func ComputeSummary(s Snapshot) FinancialSummary {
	var f FinancialSummary
	for _, sh := range s.Shipments {
		f.ManufacturingCost = f.ManufacturingCost.Add(sh.ManufacturingCost())
		f.WarehouseShippingCost = f.WarehouseShippingCost.Add(sh.WarehouseShippingCost())
	}
	f.PartnerACost = f.ManufacturingCost.Add(f.WarehouseShippingCost)

	for _, o := range s.Orders {
		f.PartnerBCost = f.PartnerBCost.Add(o.PartnerBCost())
		f.TotalRevenue = f.TotalRevenue.Add(o.Revenue())
		f.TotalFees = f.TotalFees.Add(o.Fees())
	}

	f.TotalCosts = f.PartnerACost.Add(f.PartnerBCost).Add(f.TotalFees)
	f.TotalProfit = f.TotalRevenue.Sub(f.TotalCosts)
	f.PartnerShare = f.TotalProfit.Half()
	f.PartnerANet = f.PartnerShare.Sub(f.PartnerACost)
	f.PartnerBNet = f.PartnerShare.Sub(f.PartnerBCost)
	return f
}

// Rounded returns a copy of f where every value is rounded to the cent, ties away from zero.
func (f FinancialSummary) Rounded() FinancialSummary {
	return FinancialSummary{
		PartnerACost:          f.PartnerACost.Round(),
		PartnerBCost:          f.PartnerBCost.Round(),
		TotalRevenue:          f.TotalRevenue.Round(),
		TotalFees:             f.TotalFees.Round(),
		TotalCosts:            f.TotalCosts.Round(),
		TotalProfit:           f.TotalProfit.Round(),
		PartnerShare:          f.PartnerShare.Round(),
		PartnerANet:           f.PartnerANet.Round(),
		PartnerBNet:           f.PartnerBNet.Round(),
		ManufacturingCost:     f.ManufacturingCost.Round(),
		WarehouseShippingCost: f.WarehouseShippingCost.Round(),
	}
}

// Partners holds the display names of the two partners.
type Partners struct {
	A string // funds manufacturing and shipping to the warehouse.
	B string // funds shipping from the warehouse to customers.
}

// DefaultPartners are the names used when none are configured.
var DefaultPartners = Partners{A: "Partner A", B: "Partner B"}

// Standing tells which way the money flows for a partner.
type Standing int

const (
	Even Standing = iota // nothing to settle
	Owed                 // the partner is owed money
	Owes                 // the partner owes money
)

func (s Standing) String() string {
	switch s {
	case Owed:
		return "owed"
	case Owes:
		return "owes"
	default:
		return "even"
	}
}

// PartnerPosition is the settlement position of one partner.
type PartnerPosition struct {
	Name     string
	Cost     Money
	Net      Money
	Standing Standing
}

// Settlement returns the positions of partner A then partner B.
//
// The standing is decided on the net rounded to the cent, so that it agrees
// with the presented amount.
func (f FinancialSummary) Settlement(names Partners) []PartnerPosition {
	return []PartnerPosition{
		newPosition(names.A, f.PartnerACost, f.PartnerANet),
		newPosition(names.B, f.PartnerBCost, f.PartnerBNet),
	}
}

func newPosition(name string, cost, net Money) PartnerPosition {
	p := PartnerPosition{Name: name, Cost: cost, Net: net}
	switch r := net.Round(); {
	case r.IsPositive():
		p.Standing = Owed
	case r.IsNegative():
		p.Standing = Owes
	}
	return p
}
