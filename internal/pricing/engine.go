package pricing

import (
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Breakdown itemizes a quote. Values are money, never negative except
// date_adjustment which may discount.
type Breakdown struct {
	Loading        decimal.Decimal `json:"loading"`
	Mileage        decimal.Decimal `json:"mileage"`
	Packing        decimal.Decimal `json:"packing"`
	Dismantling    decimal.Decimal `json:"dismantling"`
	Reassembly     decimal.Decimal `json:"reassembly"`
	DateAdjustment decimal.Decimal `json:"date_adjustment"`
}

// QuoteMetadata carries the company's marketing copy shown alongside a
// quote, passed through from the company record untouched.
type QuoteMetadata struct {
	Includes   []string `json:"includes"`
	Protection []string `json:"protection"`
	Materials  []string `json:"materials"`
	Furniture  []string `json:"furniture"`
	Appliances []string `json:"appliances"`
	Gallery    []string `json:"gallery"`
}

// Quote is one company's computed offer for a pricing request.
type Quote struct {
	CompanyID         uuid.UUID       `json:"company_id"`
	CompanyName       string          `json:"company_name"`
	FinalTotal        decimal.Decimal `json:"final_total"`
	Breakdown         Breakdown       `json:"breakdown"`
	Metadata          QuoteMetadata   `json:"metadata"`
	DepositPercentage *float64        `json:"deposit_percentage,omitempty"`
}

// RateCard is a company's pricing inputs. Zero-valued rates fall back
// to the platform policy defaults at compute time.
type RateCard struct {
	LoadingRatePerVan    decimal.Decimal
	MileageRatePerMile   decimal.Decimal
	PackingRatePerM3     decimal.Decimal
	DismantlingRatePerM3 decimal.Decimal
	ReassemblyRatePerM3  decimal.Decimal
	DepositPercentage    *float64
}

// Policy holds the platform-wide pricing constants the engine falls
// back to when a company's rate card leaves a rate unset.
type Policy struct {
	VanCapacityM3        float64
	PackingRatePerM3     decimal.Decimal
	DismantlingRatePerM3 decimal.Decimal
	ReassemblyRatePerM3  decimal.Decimal
}

// CompanyInput is everything the engine needs about one company.
type CompanyInput struct {
	ID       uuid.UUID
	Name     string
	Rates    RateCard
	Metadata QuoteMetadata
}

// Date preference adjustments, in percent of the pre-adjustment
// subtotal. Unanswered preferences contribute nothing.
var noticePeriodAdjustments = map[string]string{
	"under_week":     "10",
	"one_two_weeks":  "5",
	"two_four_weeks": "0",
	"over_month":     "-5",
}

var moveDayAdjustments = map[string]string{
	"weekend":  "8",
	"weekday":  "0",
	"flexible": "-5",
}

var collectionTimeAdjustments = map[string]string{
	"morning":   "5",
	"afternoon": "0",
	"flexible":  "-2.5",
}

// Access surcharges applied to the loading cost, in percent.
var parkingSurcharges = map[string]string{
	"within_50m": "2.5",
	"over_50m":   "5",
}

var accessSurcharges = map[string]string{
	"stairs_only":      "5",
	"third_floor_plus": "5",
	"ground_first_second": "2.5",
}

// ComputeQuote prices a request against one company's rate card. Pure
// arithmetic: given the same inputs it always returns the same quote.
func ComputeQuote(req PricingRequest, company CompanyInput, policy Policy) Quote {
	rates := company.Rates

	loading := loadingCost(req, rates, policy)
	mileage := mileageCost(req, rates)
	packing := serviceCost(req.IncludePacking, req.PackingVolumeM3, rates.PackingRatePerM3, policy.PackingRatePerM3)
	dismantling := serviceCost(req.IncludeDismantling, req.DismantlingVolumeM3, rates.DismantlingRatePerM3, policy.DismantlingRatePerM3)
	reassembly := serviceCost(req.IncludeReassembly, req.ReassemblyVolumeM3, rates.ReassemblyRatePerM3, policy.ReassemblyRatePerM3)

	subtotal := loading.Add(mileage).Add(packing).Add(dismantling).Add(reassembly)
	adjustment := dateAdjustment(req, subtotal)

	finalTotal := subtotal.Add(adjustment).Round(2)
	if finalTotal.IsNegative() {
		finalTotal = decimal.Zero
	}

	return Quote{
		CompanyID:   company.ID,
		CompanyName: company.Name,
		FinalTotal:  finalTotal,
		Breakdown: Breakdown{
			Loading:        loading,
			Mileage:        mileage,
			Packing:        packing,
			Dismantling:    dismantling,
			Reassembly:     reassembly,
			DateAdjustment: adjustment,
		},
		Metadata:          company.Metadata,
		DepositPercentage: rates.DepositPercentage,
	}
}

// loadingCost charges per van load, with parking and internal-access
// surcharges at both ends. A move always needs at least one van.
func loadingCost(req PricingRequest, rates RateCard, policy Policy) decimal.Decimal {
	capacity := policy.VanCapacityM3
	if capacity <= 0 {
		capacity = 18
	}

	vans := 1
	if req.TotalVolumeM3 > capacity {
		vans = int(math.Ceil(req.TotalVolumeM3 / capacity))
	}

	base := rates.LoadingRatePerVan.Mul(decimal.NewFromInt(int64(vans)))

	surcharge := percent(parkingSurcharges[req.CollectionParkingDistance]).
		Add(percent(parkingSurcharges[req.DeliveryParkingDistance])).
		Add(percent(accessSurcharges[req.CollectionInternalAccess])).
		Add(percent(accessSurcharges[req.DeliveryInternalAccess]))

	multiplier := decimal.NewFromInt(1).Add(surcharge.Div(decimal.NewFromInt(100)))
	return base.Mul(multiplier).Round(2)
}

func mileageCost(req PricingRequest, rates RateCard) decimal.Decimal {
	if req.DistanceMiles == nil || *req.DistanceMiles <= 0 {
		return decimal.Zero
	}
	return rates.MileageRatePerMile.Mul(decimal.NewFromFloat(*req.DistanceMiles)).Round(2)
}

// serviceCost prices an optional per-m3 service. Disabled services and
// nil volumes cost nothing; a zero company rate falls back to policy.
func serviceCost(enabled bool, volumeM3 *float64, companyRate, policyRate decimal.Decimal) decimal.Decimal {
	if !enabled || volumeM3 == nil || *volumeM3 <= 0 {
		return decimal.Zero
	}
	rate := companyRate
	if rate.IsZero() {
		rate = policyRate
	}
	return rate.Mul(decimal.NewFromFloat(*volumeM3)).Round(2)
}

func dateAdjustment(req PricingRequest, subtotal decimal.Decimal) decimal.Decimal {
	total := percent(noticePeriodAdjustments[req.NoticePeriod]).
		Add(percent(moveDayAdjustments[req.MoveDay])).
		Add(percent(collectionTimeAdjustments[req.CollectionTime]))
	if total.IsZero() {
		return decimal.Zero
	}
	return subtotal.Mul(total).Div(decimal.NewFromInt(100)).Round(2)
}

func percent(value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}
