package config

import "github.com/shopspring/decimal"

// PackingRate returns the per-m3 packing rate as a decimal.
func (p PricingConfig) PackingRate() decimal.Decimal {
	return parseRate(p.PackingRatePerM3, "50")
}

// DismantlingRate returns the per-m3 dismantling rate as a decimal.
func (p PricingConfig) DismantlingRate() decimal.Decimal {
	return parseRate(p.DismantlingRatePerM3, "20")
}

// ReassemblyRate returns the per-m3 reassembly rate as a decimal.
func (p PricingConfig) ReassemblyRate() decimal.Decimal {
	return parseRate(p.ReassemblyRatePerM3, "25")
}

// Monthly returns the platform subscription price as a decimal.
func (s SubscriptionConfig) Monthly() decimal.Decimal {
	return parseRate(s.MonthlyAmount, "49.99")
}

func parseRate(value, fallback string) decimal.Decimal {
	if d, err := decimal.NewFromString(value); err == nil && !d.IsNegative() {
		return d
	}
	d, _ := decimal.NewFromString(fallback)
	return d
}
