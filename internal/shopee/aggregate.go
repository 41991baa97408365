package shopee

import "github.com/shopspring/decimal"

// UnknownChannel is the sentinel group for orders with no attribution
// sub-ID.
const UnknownChannel = "unknown"

// GroupStats is the per-group slice of a report summary.
type GroupStats struct {
	Count           int             `json:"count"`
	TotalCommission decimal.Decimal `json:"total_commission"`
}

// ReportSummary aggregates a collected set of order records.
type ReportSummary struct {
	OrderCount        int                   `json:"total_orders"`
	TotalCommission   decimal.Decimal       `json:"total_commission"`
	AverageCommission decimal.Decimal       `json:"average_commission"`
	ByStatus          map[string]GroupStats `json:"by_status"`
	ByChannel         map[string]GroupStats `json:"by_channel"`
}

// Channel returns the attribution channel of an order: its first sub-ID,
// or UnknownChannel when none is set.
func Channel(o OrderRecord) string {
	if len(o.SubIDs) == 0 || o.SubIDs[0] == "" {
		return UnknownChannel
	}
	return o.SubIDs[0]
}

// Summarize computes totals, the average commission, and per-status and
// per-channel breakdowns over a collected record set. Deterministic and
// side-effect free; an empty input yields a zero average rather than a
// division error.
func Summarize(orders []OrderRecord) ReportSummary {
	s := ReportSummary{
		ByStatus:  make(map[string]GroupStats),
		ByChannel: make(map[string]GroupStats),
	}

	for _, o := range orders {
		s.OrderCount++
		s.TotalCommission = s.TotalCommission.Add(o.CommissionAmount)
		addToGroup(s.ByStatus, o.OrderStatus, o.CommissionAmount)
		addToGroup(s.ByChannel, Channel(o), o.CommissionAmount)
	}

	if s.OrderCount > 0 {
		s.AverageCommission = s.TotalCommission.
			Div(decimal.NewFromInt(int64(s.OrderCount))).
			Round(2)
	}

	return s
}

func addToGroup(groups map[string]GroupStats, key string, amount decimal.Decimal) {
	g := groups[key]
	g.Count++
	g.TotalCommission = g.TotalCommission.Add(amount)
	groups[key] = g
}
