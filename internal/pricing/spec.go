// Package pricing shapes a customer's move specification into the
// normalized pricing request and computes company quotes from it.
// Request building is pure data shaping and cannot fail; inconsistent
// inputs pass through unchanged and are the caller's problem.
package pricing

import (
	"github.com/shiftsorted/shiftsorted-backend/internal/estimate"
	"github.com/shiftsorted/shiftsorted-backend/pkg/enums"
)

// AccessAssessment captures how hard one end of the move is to work at.
type AccessAssessment struct {
	ParkingDistance enums.ParkingDistance `json:"parking_distance"`
	InternalAccess  enums.InternalAccess  `json:"internal_access"`
}

// MoveDatePreferences captures when the customer wants to move.
type MoveDatePreferences struct {
	NoticePeriod   enums.NoticePeriod   `json:"notice_period"`
	MoveDay        enums.MoveDay        `json:"move_day"`
	CollectionTime enums.CollectionTime `json:"collection_time"`
}

// PropertySizes holds the per-property-type size answers. The UI keeps
// a separate field per type so switching type does not clobber earlier
// answers; the trait table picks the one that applies.
type PropertySizes struct {
	HouseSize  string `json:"house_size,omitempty"`
	FlatSize   string `json:"flat_size,omitempty"`
	OfficeSize string `json:"office_size,omitempty"`
}

// MoveSpecification aggregates one customer's move request. Built
// incrementally across the refine flow; never mutated after a pricing
// request is produced from it.
type MoveSpecification struct {
	PickupPincode  string `json:"pickup_pincode"`
	DropoffPincode string `json:"dropoff_pincode"`

	PropertyType     enums.PropertyType      `json:"property_type"`
	PropertySizes    PropertySizes           `json:"property_sizes"`
	Quantity         enums.MoveQuantity      `json:"quantity"`
	AdditionalSpaces []enums.AdditionalSpace `json:"additional_spaces"`

	Items      estimate.ItemSelection `json:"selected_items"`
	Dismantle  estimate.ServiceFlags  `json:"dismantle_items"`
	Reassemble estimate.ServiceFlags  `json:"reassemble_items"`

	DistanceMiles *float64 `json:"distance_miles"`

	IncludePacking          bool     `json:"include_packing"`
	PackingVolumeOverrideM3 *float64 `json:"packing_volume_override_m3"`
	IncludeDismantling      bool     `json:"include_dismantling"`
	IncludeReassembly       bool     `json:"include_reassembly"`

	Collection AccessAssessment    `json:"collection_assessment"`
	Delivery   AccessAssessment    `json:"delivery_assessment"`
	MoveDate   MoveDatePreferences `json:"move_date_data"`
}

// PropertySize resolves the size answer that applies to the chosen
// property type via the trait table.
func (m MoveSpecification) PropertySize() string {
	return traitsFor(m.PropertyType).sizeOf(m.PropertySizes)
}
