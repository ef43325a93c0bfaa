package dataset

import (
	"fmt"
)

// Generate runs the full pipeline: houses, beds, tenants, then metrics.
// The same seed on rng always yields the same dataset.
func Generate(rng Rand, addresses []string) (*Dataset, error) {
	houses := GenerateHouses(rng, addresses)
	beds := GenerateBeds(rng, houses)

	beds, tenants, err := GenerateTenants(rng, beds)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenants: %w", err)
	}

	metrics, err := ComputeMetrics(beds, tenants)
	if err != nil {
		return nil, fmt.Errorf("failed to compute metrics: %w", err)
	}

	return &Dataset{
		Houses:  houses,
		Beds:    beds,
		Tenants: tenants,
		Metrics: metrics,
	}, nil
}

// CheckIntegrity verifies the cross-entity rules a generated dataset must
// satisfy. The first violation found is returned wrapped in ErrIntegrity.
func CheckIntegrity(d *Dataset) error {
	houses := make(map[string]House, len(d.Houses))
	for _, h := range d.Houses {
		if _, dup := houses[h.HouseID]; dup {
			return violation("duplicate house %s", h.HouseID)
		}
		houses[h.HouseID] = h
	}

	beds := make(map[string]Bed, len(d.Beds))
	perHouse := make(map[string]int)
	for _, b := range d.Beds {
		if _, dup := beds[b.BedID]; dup {
			return violation("duplicate bed %s", b.BedID)
		}
		if _, ok := houses[b.HouseID]; !ok {
			return violation("bed %s references unknown house %s", b.BedID, b.HouseID)
		}
		if !b.Status.Valid() {
			return violation("bed %s has unknown status %q", b.BedID, b.Status)
		}
		beds[b.BedID] = b
		perHouse[b.HouseID]++
	}
	for id, h := range houses {
		if perHouse[id] != h.TotalBeds {
			return violation("house %s declares %d beds but has %d", id, h.TotalBeds, perHouse[id])
		}
	}

	tenants := make(map[string]Tenant, len(d.Tenants))
	names := make(map[string]struct{}, len(d.Tenants))
	for _, t := range d.Tenants {
		if _, dup := tenants[t.TenantID]; dup {
			return violation("duplicate tenant %s", t.TenantID)
		}
		if _, dup := names[t.FullName]; dup {
			return violation("duplicate tenant name %q", t.FullName)
		}
		tenants[t.TenantID] = t
		names[t.FullName] = struct{}{}

		if err := checkTenant(t, beds); err != nil {
			return err
		}
	}

	for _, b := range d.Beds {
		if b.TenantID == nil {
			continue
		}
		t, ok := tenants[*b.TenantID]
		if !ok {
			return violation("bed %s references unknown tenant %s", b.BedID, *b.TenantID)
		}
		if t.BedID == nil || *t.BedID != b.BedID {
			return violation("bed %s and tenant %s are not linked both ways", b.BedID, t.TenantID)
		}
	}

	if len(d.Beds) == 0 {
		return nil
	}
	expected, err := ComputeMetrics(d.Beds, d.Tenants)
	if err != nil {
		return err
	}
	if expected != d.Metrics {
		return violation("metrics %+v do not match recomputed %+v", d.Metrics, expected)
	}
	return nil
}

func checkTenant(t Tenant, beds map[string]Bed) error {
	if t.Current() {
		if t.BedID == nil {
			return violation("current tenant %s has no bed", t.TenantID)
		}
		b, ok := beds[*t.BedID]
		if !ok {
			return violation("tenant %s references unknown bed %s", t.TenantID, *t.BedID)
		}
		if b.TenantID == nil || *b.TenantID != t.TenantID {
			return violation("tenant %s and bed %s are not linked both ways", t.TenantID, b.BedID)
		}
	} else {
		if !t.ExitDate.After(t.EntryDate.Time) {
			return violation("tenant %s exits on %s, not after entry %s", t.TenantID, t.ExitDate, t.EntryDate)
		}
		// an exited tenant's bed, if still recorded, must have been released
		if t.BedID != nil {
			b, ok := beds[*t.BedID]
			if !ok {
				return violation("tenant %s references unknown bed %s", t.TenantID, *t.BedID)
			}
			if b.Status != StatusAvailable || b.TenantID != nil {
				return violation("exited tenant %s still holds bed %s (%s)", t.TenantID, b.BedID, b.Status)
			}
		}
	}

	if !t.PaymentType.Valid() {
		return violation("tenant %s has unknown payment type %q", t.TenantID, t.PaymentType)
	}

	isVoucher := t.PaymentType == PaymentVoucher
	if isVoucher != (t.VoucherStart != nil) || isVoucher != (t.VoucherEnd != nil) {
		return violation("tenant %s voucher dates do not match payment type %s", t.TenantID, t.PaymentType)
	}
	if isVoucher && !t.VoucherEnd.After(t.VoucherStart.Time) {
		return violation("tenant %s voucher ends before it starts", t.TenantID)
	}

	if !t.PaymentType.PaysRent() && (t.RentDue != 0 || t.RentPaid != 0) {
		return violation("tenant %s pays by %s but carries rent", t.TenantID, t.PaymentType)
	}
	if t.RentPaid < 0 || t.RentPaid > t.RentDue {
		return violation("tenant %s rent paid %d outside [0, %d]", t.TenantID, t.RentPaid, t.RentDue)
	}
	return nil
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIntegrity, fmt.Sprintf(format, args...))
}
