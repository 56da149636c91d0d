package booking

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shiftsorted/shiftsorted-backend/internal/pricing"
	"github.com/shiftsorted/shiftsorted-backend/pkg/types"
)

func acceptedQuote(total int64, depositPct *float64) pricing.Quote {
	return pricing.Quote{
		CompanyID:   uuid.New(),
		CompanyName: "Swift Movers",
		FinalTotal:  decimal.NewFromInt(total),
		Breakdown: pricing.Breakdown{
			Loading: decimal.NewFromInt(total),
		},
		DepositPercentage: depositPct,
	}
}

func testContact() types.Contact {
	return types.Contact{FirstName: "Jo", LastName: "Bloggs", Email: "jo@example.com"}
}

func TestComposeBookingExplicitDeposit(t *testing.T) {
	pct := 10.0
	payload := ComposeBooking(acceptedQuote(1000, &pct), testContact())

	if payload.DepositAmount.StringFixed(2) != "100.00" {
		t.Fatalf("deposit = %s, want 100.00", payload.DepositAmount.StringFixed(2))
	}
	if payload.DepositDefaulted {
		t.Fatal("explicit percentage must not be flagged as defaulted")
	}
	if payload.DepositPercentage != 10 {
		t.Fatalf("deposit percentage = %v", payload.DepositPercentage)
	}
	if payload.TotalAmount.StringFixed(2) != "1000.00" {
		t.Fatalf("total = %s", payload.TotalAmount.StringFixed(2))
	}
}

func TestComposeBookingDefaultsMissingDeposit(t *testing.T) {
	payload := ComposeBooking(acceptedQuote(1000, nil), testContact())

	if payload.DepositAmount.StringFixed(2) != "100.00" {
		t.Fatalf("deposit = %s, want 100.00 from the 10%% default", payload.DepositAmount.StringFixed(2))
	}
	if !payload.DepositDefaulted {
		t.Fatal("missing percentage must be flagged as defaulted")
	}
	if payload.DepositPercentage != DefaultDepositPercentage {
		t.Fatalf("deposit percentage = %v, want %v", payload.DepositPercentage, DefaultDepositPercentage)
	}
}

func TestComposeBookingRoundsDeposit(t *testing.T) {
	pct := 12.5
	quote := acceptedQuote(0, &pct)
	quote.FinalTotal = decimal.RequireFromString("333.33")

	payload := ComposeBooking(quote, testContact())
	// 333.33 * 12.5% = 41.66625 -> 41.67
	if payload.DepositAmount.StringFixed(2) != "41.67" {
		t.Fatalf("deposit = %s, want 41.67", payload.DepositAmount.StringFixed(2))
	}
}

func TestComposeBookingCopiesBreakdown(t *testing.T) {
	pct := 10.0
	quote := acceptedQuote(500, &pct)
	quote.Breakdown = pricing.Breakdown{
		Loading:        decimal.NewFromInt(300),
		Mileage:        decimal.NewFromInt(80),
		DateAdjustment: decimal.NewFromInt(-20),
	}

	payload := ComposeBooking(quote, testContact())
	if !payload.PriceBreakdown.Loading.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("loading = %s", payload.PriceBreakdown.Loading)
	}
	if !payload.PriceBreakdown.DateAdjustment.Equal(decimal.NewFromInt(-20)) {
		t.Fatalf("date adjustment = %s", payload.PriceBreakdown.DateAdjustment)
	}
	// Services the quote never priced stay zero.
	if !payload.PriceBreakdown.Packing.IsZero() || !payload.PriceBreakdown.Reassembly.IsZero() {
		t.Fatalf("unpriced lines should be zero: %+v", payload.PriceBreakdown)
	}
}

func TestComposeBookingFreshTransactionRef(t *testing.T) {
	pct := 10.0
	quote := acceptedQuote(1000, &pct)

	first := ComposeBooking(quote, testContact())
	second := ComposeBooking(quote, testContact())

	if first.TransactionRef == second.TransactionRef {
		t.Fatalf("attempts must not share a transaction ref: %s", first.TransactionRef)
	}
	if !strings.HasPrefix(first.TransactionRef, "SS-") {
		t.Fatalf("unexpected ref format: %s", first.TransactionRef)
	}
}
