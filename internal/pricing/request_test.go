package pricing

import (
	"testing"

	"github.com/shiftsorted/shiftsorted-backend/internal/estimate"
	"github.com/shiftsorted/shiftsorted-backend/pkg/enums"
)

func TestBuildPricingRequestFlatUsesFlatVocabulary(t *testing.T) {
	spec := MoveSpecification{
		PickupPincode:  "LS1 4AP",
		DropoffPincode: "M1 2WD",
		PropertyType:   enums.PropertyTypeFlat,
		PropertySizes: PropertySizes{
			HouseSize: "4_bed",
			FlatSize:  "2_bed",
		},
		Collection: AccessAssessment{
			ParkingDistance: enums.ParkingDistanceOnProperty,
			InternalAccess:  enums.InternalAccessLiftAccess,
		},
	}

	req := BuildPricingRequest(spec, estimate.Volumes{TotalVolumeM3: 12})

	if req.PropertySize != "2_bed" {
		t.Fatalf("property_size = %q, want flat answer 2_bed", req.PropertySize)
	}
	if req.CollectionInternalAccess != "lift_access" {
		t.Fatalf("collection access = %q, want lift_access", req.CollectionInternalAccess)
	}
	if SizeFieldFor(spec.PropertyType) != "flat_size" {
		t.Fatalf("size field = %q, want flat_size", SizeFieldFor(spec.PropertyType))
	}
}

func TestBuildPricingRequestHouseSizeField(t *testing.T) {
	spec := MoveSpecification{
		PropertyType:  enums.PropertyTypeTownHouse,
		PropertySizes: PropertySizes{HouseSize: "3_bed", FlatSize: "studio"},
	}
	req := BuildPricingRequest(spec, estimate.Volumes{})
	if req.PropertySize != "3_bed" {
		t.Fatalf("property_size = %q, want 3_bed", req.PropertySize)
	}
}

func TestBuildPricingRequestPackingVolume(t *testing.T) {
	volumes := estimate.Volumes{TotalVolumeM3: 14.5}

	spec := MoveSpecification{PropertyType: enums.PropertyTypeHouse, IncludePacking: true}
	req := BuildPricingRequest(spec, volumes)
	if req.PackingVolumeM3 == nil || *req.PackingVolumeM3 != 14.5 {
		t.Fatalf("packing volume = %v, want total 14.5", req.PackingVolumeM3)
	}

	override := 6.0
	spec.PackingVolumeOverrideM3 = &override
	req = BuildPricingRequest(spec, volumes)
	if req.PackingVolumeM3 == nil || *req.PackingVolumeM3 != 6.0 {
		t.Fatalf("packing volume = %v, want override 6.0", req.PackingVolumeM3)
	}

	spec.IncludePacking = false
	req = BuildPricingRequest(spec, volumes)
	if req.PackingVolumeM3 != nil {
		t.Fatalf("packing volume should be nil when packing disabled, got %v", *req.PackingVolumeM3)
	}
}

func TestBuildPricingRequestServiceVolumesFromFlags(t *testing.T) {
	volumes := estimate.Volumes{TotalVolumeM3: 5, DismantlingVolumeM3: 1.2, ReassemblyVolumeM3: 2.7}
	spec := MoveSpecification{
		PropertyType:       enums.PropertyTypeHouse,
		IncludeDismantling: true,
		IncludeReassembly:  true,
	}

	req := BuildPricingRequest(spec, volumes)
	if req.DismantlingVolumeM3 == nil || *req.DismantlingVolumeM3 != 1.2 {
		t.Fatalf("dismantling volume = %v, want 1.2", req.DismantlingVolumeM3)
	}
	if req.ReassemblyVolumeM3 == nil || *req.ReassemblyVolumeM3 != 2.7 {
		t.Fatalf("reassembly volume = %v, want 2.7", req.ReassemblyVolumeM3)
	}
}

func TestBuildPricingRequestLeavesUnsetFieldsEmpty(t *testing.T) {
	req := BuildPricingRequest(MoveSpecification{PropertyType: enums.PropertyTypeHouse}, estimate.Volumes{})

	if req.NoticePeriod != "" || req.MoveDay != "" || req.CollectionTime != "" {
		t.Fatalf("unset date preferences should stay empty: %+v", req)
	}
	if req.CollectionParkingDistance != "" {
		t.Fatalf("unset parking should stay empty, got %q", req.CollectionParkingDistance)
	}
	if req.PackingVolumeM3 != nil {
		t.Fatal("packing volume should be nil when service not chosen")
	}
}

func TestBuildPricingRequestDropsStaleFlags(t *testing.T) {
	spec := MoveSpecification{
		PropertyType: enums.PropertyTypeHouse,
		Items:        estimate.ItemSelection{"Wardrobe": 1, "Desk": 0},
		Dismantle:    estimate.ServiceFlags{"Wardrobe": true, "Desk": true},
	}
	req := BuildPricingRequest(spec, estimate.Volumes{})

	if _, ok := req.SelectedItems["Desk"]; ok {
		t.Fatal("zero-quantity item should not be in selected_items")
	}
	if req.DismantleItems["Desk"] {
		t.Fatal("flag for zero-quantity item should be dropped")
	}
	if !req.DismantleItems["Wardrobe"] {
		t.Fatal("valid flag lost")
	}
}

func TestValidSizesForOfficeVsFewItems(t *testing.T) {
	if got := ValidSizesFor(enums.PropertyTypeOffice); len(got) != 4 {
		t.Fatalf("expected 4 office sizes, got %v", got)
	}
	if got := ValidSizesFor(enums.PropertyTypeFewItems); got != nil {
		t.Fatalf("a_few_items should have no size vocabulary, got %v", got)
	}
	if got := BuildPricingRequest(MoveSpecification{PropertyType: enums.PropertyTypeFewItems}, estimate.Volumes{}); got.PropertySize != "a_few_items" {
		t.Fatalf("few-items property_size = %q", got.PropertySize)
	}
}
