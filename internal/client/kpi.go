package client

import (
	"math"

	"github.com/sakif/property-board/internal/model"
)

// KPI holds the summary statistics derived from a collection snapshot.
// Nothing here is persisted or cached — recompute on every snapshot change.
type KPI struct {
	Count    int
	AvgPrice float64 // rounded to the nearest whole unit
	MaxPrice float64
}

// ComputeKPI derives count, average price, and max price from a snapshot.
// A pure function: same snapshot in, same KPI out, no side effects.
// An empty snapshot yields zeros, not NaN — guard the division.
func ComputeKPI(snapshot []model.Property) KPI {
	kpi := KPI{Count: len(snapshot)}
	if kpi.Count == 0 {
		return kpi
	}

	var sum float64
	for _, p := range snapshot {
		sum += p.Price
		if p.Price > kpi.MaxPrice {
			kpi.MaxPrice = p.Price
		}
	}
	kpi.AvgPrice = math.Round(sum / float64(kpi.Count))

	return kpi
}
