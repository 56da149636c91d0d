package quotes

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shiftsorted/shiftsorted-backend/internal/pricing"
	"github.com/shiftsorted/shiftsorted-backend/pkg/enums"
)

func quoteFor(name string, total int64) pricing.Quote {
	return pricing.Quote{
		CompanyID:   uuid.New(),
		CompanyName: name,
		FinalTotal:  decimal.NewFromInt(total),
	}
}

func TestRankLowToHigh(t *testing.T) {
	quotes := []pricing.Quote{
		quoteFor("pricey", 900),
		quoteFor("cheap", 300),
		quoteFor("middle", 500),
	}

	ranked := Rank(quotes, enums.SortOrderLowToHigh)
	want := []string{"cheap", "middle", "pricey"}
	for i, name := range want {
		if ranked[i].CompanyName != name {
			t.Fatalf("position %d = %s, want %s", i, ranked[i].CompanyName, name)
		}
	}

	// Input must not be mutated.
	if quotes[0].CompanyName != "pricey" {
		t.Fatal("Rank mutated its input")
	}
}

func TestRankHighToLowIsReverseOfLowToHigh(t *testing.T) {
	quotes := []pricing.Quote{
		quoteFor("a", 450),
		quoteFor("b", 120),
		quoteFor("c", 999),
		quoteFor("d", 700),
	}

	asc := Rank(quotes, enums.SortOrderLowToHigh)
	desc := Rank(quotes, enums.SortOrderHighToLow)

	for i := range asc {
		if asc[i].CompanyID != desc[len(desc)-1-i].CompanyID {
			t.Fatalf("high-to-low is not the reverse of low-to-high at %d", i)
		}
	}
}

func TestRankStableOnTies(t *testing.T) {
	quotes := []pricing.Quote{
		quoteFor("first", 500),
		quoteFor("second", 500),
		quoteFor("third", 500),
	}

	ranked := Rank(quotes, enums.SortOrderLowToHigh)
	for i, name := range []string{"first", "second", "third"} {
		if ranked[i].CompanyName != name {
			t.Fatalf("tied quotes reordered: position %d = %s", i, ranked[i].CompanyName)
		}
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]pricing.Quote{
		quoteFor("a", 300),
		quoteFor("b", 900),
		quoteFor("c", 500),
	})
	if summary.Count != 3 {
		t.Fatalf("count = %d, want 3", summary.Count)
	}
	if !summary.MinPrice.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("min = %s, want 300", summary.MinPrice)
	}
	if !summary.MaxPrice.Equal(decimal.NewFromInt(900)) {
		t.Fatalf("max = %s, want 900", summary.MaxPrice)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	if summary.Count != 0 || !summary.MinPrice.IsZero() || !summary.MaxPrice.IsZero() {
		t.Fatalf("empty set should summarize to zeros: %+v", summary)
	}
}
