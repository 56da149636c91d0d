package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func testPolicy() Policy {
	return Policy{
		VanCapacityM3:        18,
		PackingRatePerM3:     decimal.NewFromInt(50),
		DismantlingRatePerM3: decimal.NewFromInt(20),
		ReassemblyRatePerM3:  decimal.NewFromInt(25),
	}
}

func testCompany(loadingPerVan, perMile int64) CompanyInput {
	return CompanyInput{
		ID:   uuid.New(),
		Name: "Swift Removals",
		Rates: RateCard{
			LoadingRatePerVan:  decimal.NewFromInt(loadingPerVan),
			MileageRatePerMile: decimal.NewFromInt(perMile),
		},
	}
}

func TestComputeQuoteSingleVanNoExtras(t *testing.T) {
	req := PricingRequest{TotalVolumeM3: 10}
	quote := ComputeQuote(req, testCompany(300, 2), testPolicy())

	if !quote.Breakdown.Loading.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("loading = %s, want 300", quote.Breakdown.Loading)
	}
	if !quote.Breakdown.Mileage.IsZero() {
		t.Fatalf("mileage without distance should be 0, got %s", quote.Breakdown.Mileage)
	}
	if !quote.FinalTotal.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("final = %s, want 300", quote.FinalTotal)
	}
}

func TestComputeQuoteMultiVanCeiling(t *testing.T) {
	req := PricingRequest{TotalVolumeM3: 19}
	quote := ComputeQuote(req, testCompany(300, 2), testPolicy())
	if !quote.Breakdown.Loading.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("19m3 should need 2 vans: loading = %s, want 600", quote.Breakdown.Loading)
	}
}

func TestComputeQuoteMileage(t *testing.T) {
	distance := 40.0
	req := PricingRequest{TotalVolumeM3: 5, DistanceMiles: &distance}
	quote := ComputeQuote(req, testCompany(300, 2), testPolicy())
	if !quote.Breakdown.Mileage.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("mileage = %s, want 80", quote.Breakdown.Mileage)
	}
}

func TestComputeQuotePackingUsesPolicyFallbackRate(t *testing.T) {
	volume := 10.0
	req := PricingRequest{TotalVolumeM3: 10, IncludePacking: true, PackingVolumeM3: &volume}
	quote := ComputeQuote(req, testCompany(300, 0), testPolicy())

	// Company rate card has no packing rate, so the 50/m3 policy applies.
	if !quote.Breakdown.Packing.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("packing = %s, want 500", quote.Breakdown.Packing)
	}
}

func TestComputeQuoteCompanyPackingRateWins(t *testing.T) {
	volume := 10.0
	req := PricingRequest{TotalVolumeM3: 10, IncludePacking: true, PackingVolumeM3: &volume}
	company := testCompany(300, 0)
	company.Rates.PackingRatePerM3 = decimal.NewFromInt(40)

	quote := ComputeQuote(req, company, testPolicy())
	if !quote.Breakdown.Packing.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("packing = %s, want company rate 400", quote.Breakdown.Packing)
	}
}

func TestComputeQuoteDisabledServicesCostNothing(t *testing.T) {
	volume := 10.0
	req := PricingRequest{
		TotalVolumeM3:       10,
		PackingVolumeM3:     &volume,
		DismantlingVolumeM3: &volume,
	}
	quote := ComputeQuote(req, testCompany(300, 0), testPolicy())
	if !quote.Breakdown.Packing.IsZero() || !quote.Breakdown.Dismantling.IsZero() {
		t.Fatalf("disabled services should be free: %+v", quote.Breakdown)
	}
}

func TestComputeQuoteDateAdjustment(t *testing.T) {
	req := PricingRequest{TotalVolumeM3: 10, NoticePeriod: "under_week"}
	quote := ComputeQuote(req, testCompany(300, 0), testPolicy())

	// 10% short-notice premium on a 300 subtotal.
	if !quote.Breakdown.DateAdjustment.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("date adjustment = %s, want 30", quote.Breakdown.DateAdjustment)
	}
	if !quote.FinalTotal.Equal(decimal.NewFromInt(330)) {
		t.Fatalf("final = %s, want 330", quote.FinalTotal)
	}
}

func TestComputeQuoteFlexibleDiscountNeverGoesNegative(t *testing.T) {
	req := PricingRequest{
		TotalVolumeM3:  0.1,
		NoticePeriod:   "over_month",
		MoveDay:        "flexible",
		CollectionTime: "flexible",
	}
	company := testCompany(0, 0)
	quote := ComputeQuote(req, company, testPolicy())
	if quote.FinalTotal.IsNegative() {
		t.Fatalf("final total went negative: %s", quote.FinalTotal)
	}
}

func TestComputeQuoteAccessSurcharge(t *testing.T) {
	req := PricingRequest{
		TotalVolumeM3:             10,
		CollectionParkingDistance: "over_50m",
		DeliveryInternalAccess:    "stairs_only",
	}
	quote := ComputeQuote(req, testCompany(300, 0), testPolicy())

	// 5% + 5% on the 300 base.
	want := decimal.NewFromInt(330)
	if !quote.Breakdown.Loading.Equal(want) {
		t.Fatalf("loading = %s, want %s", quote.Breakdown.Loading, want)
	}
}

func TestComputeQuoteDeterministic(t *testing.T) {
	distance := 12.5
	volume := 3.3
	req := PricingRequest{
		TotalVolumeM3:   7.7,
		DistanceMiles:   &distance,
		IncludePacking:  true,
		PackingVolumeM3: &volume,
		MoveDay:         "weekend",
	}
	company := testCompany(280, 3)

	first := ComputeQuote(req, company, testPolicy())
	second := ComputeQuote(req, company, testPolicy())
	if !first.FinalTotal.Equal(second.FinalTotal) {
		t.Fatalf("quote not deterministic: %s != %s", first.FinalTotal, second.FinalTotal)
	}
}
