package quotes

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/shiftsorted/shiftsorted-backend/internal/pricing"
	"github.com/shiftsorted/shiftsorted-backend/pkg/enums"
)

// Rank orders quotes by final total. The sort is stable so companies
// with equal totals keep their original relative order.
func Rank(quotes []pricing.Quote, order enums.SortOrder) []pricing.Quote {
	ranked := make([]pricing.Quote, len(quotes))
	copy(ranked, quotes)

	sort.SliceStable(ranked, func(i, j int) bool {
		if order == enums.SortOrderHighToLow {
			return ranked[i].FinalTotal.GreaterThan(ranked[j].FinalTotal)
		}
		return ranked[i].FinalTotal.LessThan(ranked[j].FinalTotal)
	})
	return ranked
}

// Summary aggregates a result set for the comparison header.
type Summary struct {
	Count    int             `json:"count"`
	MinPrice decimal.Decimal `json:"min_price"`
	MaxPrice decimal.Decimal `json:"max_price"`
}

// Summarize reports the count and price range. An empty set yields zeros.
func Summarize(quotes []pricing.Quote) Summary {
	if len(quotes) == 0 {
		return Summary{MinPrice: decimal.Zero, MaxPrice: decimal.Zero}
	}

	min := quotes[0].FinalTotal
	max := quotes[0].FinalTotal
	for _, q := range quotes[1:] {
		if q.FinalTotal.LessThan(min) {
			min = q.FinalTotal
		}
		if q.FinalTotal.GreaterThan(max) {
			max = q.FinalTotal
		}
	}
	return Summary{Count: len(quotes), MinPrice: min, MaxPrice: max}
}
