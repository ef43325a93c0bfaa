package dataset

import "strconv"

// ComputeMetrics derives the summary from the final beds and tenants.
// It keeps no counters of its own, so the result always matches a rescan.
func ComputeMetrics(beds []Bed, tenants []Tenant) (Metrics, error) {
	if len(beds) == 0 {
		return Metrics{}, ErrNoBeds
	}

	m := Metrics{TotalBeds: len(beds)}
	for _, bed := range beds {
		switch bed.Status {
		case StatusOccupied:
			m.OccupiedBeds++
		case StatusAvailable:
			m.AvailableBeds++
		case StatusPending:
			m.PendingBeds++
		case StatusHold:
			m.HoldBeds++
		}
	}
	m.OccupancyRate = OccupancyRate(m.OccupiedBeds, m.TotalBeds)

	for _, tenant := range tenants {
		if tenant.Current() {
			m.CurrentTenants++
		} else {
			m.ExitedTenants++
		}
	}
	m.TotalTenants = len(tenants)

	return m, nil
}

// OccupancyRate returns occupied/total as a percentage rounded to one
// decimal, with exact halves going to the even digit (81.25 -> 81.2).
func OccupancyRate(occupied, total int) float64 {
	if total == 0 {
		return 0
	}
	pct := float64(occupied) / float64(total) * 100
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(pct, 'f', 1, 64), 64)
	return rounded
}
