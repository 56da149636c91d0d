package booking

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shiftsorted/shiftsorted-backend/internal/pricing"
	"github.com/shiftsorted/shiftsorted-backend/pkg/types"
)

// DefaultDepositPercentage applies when the chosen company has no
// deposit percentage on its rate card. Using it silently changes the
// contractual deposit, so the payload flags it via DepositDefaulted.
const DefaultDepositPercentage = 10.0

var hundred = decimal.NewFromInt(100)

// PriceBreakdown itemizes the booked total. Field names are part of
// the wire contract.
type PriceBreakdown struct {
	Loading        decimal.Decimal `json:"loading"`
	Mileage        decimal.Decimal `json:"mileage"`
	Packing        decimal.Decimal `json:"packing"`
	Dismantling    decimal.Decimal `json:"dismantling"`
	Reassembly     decimal.Decimal `json:"reassembly"`
	DateAdjustment decimal.Decimal `json:"date_adjustment"`
}

// Payload is the composed deposit-payment request for one booking
// attempt. Composed once per attempt; a retry gets a fresh
// transaction ref.
type Payload struct {
	TransactionRef    string          `json:"transaction_ref"`
	CompanyID         string          `json:"company_id"`
	CompanyName       string          `json:"company_name"`
	Customer          types.Contact   `json:"customer"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	DepositAmount     decimal.Decimal `json:"deposit_amount"`
	DepositPercentage float64         `json:"deposit_percentage"`
	DepositDefaulted  bool            `json:"deposit_defaulted"`
	PriceBreakdown    PriceBreakdown  `json:"price_breakdown"`
}

// ComposeBooking merges the accepted quote and the customer's contact
// details into a deposit-payment payload. Missing breakdown values
// become zero; a missing deposit percentage falls back to
// DefaultDepositPercentage and sets DepositDefaulted.
func ComposeBooking(quote pricing.Quote, contact types.Contact) Payload {
	pct := DefaultDepositPercentage
	defaulted := true
	if quote.DepositPercentage != nil {
		pct = *quote.DepositPercentage
		defaulted = false
	}

	deposit := quote.FinalTotal.
		Mul(decimal.NewFromFloat(pct)).
		Div(hundred).
		Round(2)

	return Payload{
		TransactionRef:    NewTransactionRef(),
		CompanyID:         quote.CompanyID.String(),
		CompanyName:       quote.CompanyName,
		Customer:          contact,
		TotalAmount:       quote.FinalTotal.Round(2),
		DepositAmount:     deposit,
		DepositPercentage: pct,
		DepositDefaulted:  defaulted,
		PriceBreakdown: PriceBreakdown{
			Loading:        quote.Breakdown.Loading,
			Mileage:        quote.Breakdown.Mileage,
			Packing:        quote.Breakdown.Packing,
			Dismantling:    quote.Breakdown.Dismantling,
			Reassembly:     quote.Breakdown.Reassembly,
			DateAdjustment: quote.Breakdown.DateAdjustment,
		},
	}
}

// NewTransactionRef builds a unique booking reference: UTC timestamp
// plus a random suffix. Never reused across attempts.
func NewTransactionRef() string {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return fmt.Sprintf("SS-%s-%d", time.Now().UTC().Format("20060102150405"), time.Now().UnixNano()%100000000)
	}
	return fmt.Sprintf("SS-%s-%s", time.Now().UTC().Format("20060102150405"), hex.EncodeToString(suffix))
}
