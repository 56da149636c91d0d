package pricing

import "github.com/shiftsorted/shiftsorted-backend/internal/estimate"

// PricingRequest is the normalized payload quotes are computed from.
// Field names are part of the wire contract; immutable once built.
type PricingRequest struct {
	Pincode        string `json:"pincode"`
	DropoffPincode string `json:"dropoff_pincode"`

	PropertyType     string   `json:"property_type"`
	PropertySize     string   `json:"property_size"`
	Quantity         string   `json:"quantity"`
	AdditionalSpaces []string `json:"additional_spaces"`

	SelectedItems   map[string]int  `json:"selected_items"`
	DismantleItems  map[string]bool `json:"dismantle_items"`
	ReassembleItems map[string]bool `json:"reassemble_items"`

	TotalVolumeM3 float64  `json:"total_volume_m3"`
	DistanceMiles *float64 `json:"distance_miles"`

	IncludePacking      bool     `json:"include_packing"`
	PackingVolumeM3     *float64 `json:"packing_volume_m3"`
	IncludeDismantling  bool     `json:"include_dismantling"`
	DismantlingVolumeM3 *float64 `json:"dismantling_volume_m3"`
	IncludeReassembly   bool     `json:"include_reassembly"`
	ReassemblyVolumeM3  *float64 `json:"reassembly_volume_m3"`

	CollectionParkingDistance string `json:"collection_parking_distance"`
	CollectionInternalAccess  string `json:"collection_internal_access"`
	DeliveryParkingDistance   string `json:"delivery_parking_distance"`
	DeliveryInternalAccess    string `json:"delivery_internal_access"`

	NoticePeriod   string `json:"notice_period"`
	MoveDay        string `json:"move_day"`
	CollectionTime string `json:"collection_time"`
}

// BuildPricingRequest assembles the request from the specification and
// the aggregated volumes. Pure data shaping: no validation, no I/O.
// Fields the customer never answered stay empty/null so the quote
// engine can tell "not chosen" from an explicit answer.
func BuildPricingRequest(spec MoveSpecification, volumes estimate.Volumes) PricingRequest {
	selection := spec.Items.Normalize()

	req := PricingRequest{
		Pincode:        spec.PickupPincode,
		DropoffPincode: spec.DropoffPincode,

		PropertyType: spec.PropertyType.String(),
		PropertySize: spec.PropertySize(),
		Quantity:     spec.Quantity.String(),

		SelectedItems:   selection,
		DismantleItems:  estimate.SyncFlags(selection, spec.Dismantle),
		ReassembleItems: estimate.SyncFlags(selection, spec.Reassemble),

		TotalVolumeM3: volumes.TotalVolumeM3,
		DistanceMiles: spec.DistanceMiles,

		IncludePacking:     spec.IncludePacking,
		IncludeDismantling: spec.IncludeDismantling,
		IncludeReassembly:  spec.IncludeReassembly,

		CollectionParkingDistance: spec.Collection.ParkingDistance.String(),
		CollectionInternalAccess:  spec.Collection.InternalAccess.String(),
		DeliveryParkingDistance:   spec.Delivery.ParkingDistance.String(),
		DeliveryInternalAccess:    spec.Delivery.InternalAccess.String(),

		NoticePeriod:   spec.MoveDate.NoticePeriod.String(),
		MoveDay:        spec.MoveDate.MoveDay.String(),
		CollectionTime: spec.MoveDate.CollectionTime.String(),
	}

	for _, space := range spec.AdditionalSpaces {
		req.AdditionalSpaces = append(req.AdditionalSpaces, space.String())
	}

	if spec.IncludePacking {
		req.PackingVolumeM3 = packingVolume(spec, volumes)
	}
	if spec.IncludeDismantling {
		volume := volumes.DismantlingVolumeM3
		req.DismantlingVolumeM3 = &volume
	}
	if spec.IncludeReassembly {
		volume := volumes.ReassemblyVolumeM3
		req.ReassemblyVolumeM3 = &volume
	}

	return req
}

// packingVolume prefers an explicit customer override; otherwise the
// whole selection is assumed packed.
func packingVolume(spec MoveSpecification, volumes estimate.Volumes) *float64 {
	if spec.PackingVolumeOverrideM3 != nil && *spec.PackingVolumeOverrideM3 >= 0 {
		volume := *spec.PackingVolumeOverrideM3
		return &volume
	}
	volume := volumes.TotalVolumeM3
	return &volume
}
