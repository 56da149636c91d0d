package pricing

import "github.com/shiftsorted/shiftsorted-backend/pkg/enums"

// propertyTraits is the single source of truth for everything that
// varies by property type: which size field applies, which size values
// are legal, and which internal-access vocabulary the assessments use.
type propertyTraits struct {
	SizeField  string
	ValidSizes []string
	sizeOf     func(PropertySizes) string
}

var houseSizes = []string{"1_bed", "2_bed", "3_bed", "4_bed", "5_bed_plus"}
var flatSizes = []string{"studio", "1_bed", "2_bed", "3_bed", "4_bed"}
var officeSizes = []string{"1_10_workstations", "11_25_workstations", "26_50_workstations", "50_plus"}

var traitsByType = map[enums.PropertyType]propertyTraits{
	enums.PropertyTypeHouse: {
		SizeField:  "house_size",
		ValidSizes: houseSizes,
		sizeOf:     func(s PropertySizes) string { return s.HouseSize },
	},
	enums.PropertyTypeBungalow: {
		SizeField:  "house_size",
		ValidSizes: houseSizes,
		sizeOf:     func(s PropertySizes) string { return s.HouseSize },
	},
	enums.PropertyTypeTownHouse: {
		SizeField:  "house_size",
		ValidSizes: houseSizes,
		sizeOf:     func(s PropertySizes) string { return s.HouseSize },
	},
	enums.PropertyTypeFlat: {
		SizeField:  "flat_size",
		ValidSizes: flatSizes,
		sizeOf:     func(s PropertySizes) string { return s.FlatSize },
	},
	enums.PropertyTypeOffice: {
		SizeField:  "office_size",
		ValidSizes: officeSizes,
		sizeOf:     func(s PropertySizes) string { return s.OfficeSize },
	},
	enums.PropertyTypeFewItems: {
		SizeField:  "",
		ValidSizes: nil,
		sizeOf:     func(PropertySizes) string { return "a_few_items" },
	},
}

func traitsFor(propertyType enums.PropertyType) propertyTraits {
	if traits, ok := traitsByType[propertyType]; ok {
		return traits
	}
	// Unknown types behave like a few items: no size vocabulary.
	return traitsByType[enums.PropertyTypeFewItems]
}

// SizeFieldFor returns the wire name of the size field a property type
// reads its answer from; empty for types without a size question.
func SizeFieldFor(propertyType enums.PropertyType) string {
	return traitsFor(propertyType).SizeField
}

// ValidSizesFor returns the legal property_size values for a type.
func ValidSizesFor(propertyType enums.PropertyType) []string {
	return traitsFor(propertyType).ValidSizes
}

// AccessOptionsFor returns the internal-access vocabulary for a type.
func AccessOptionsFor(propertyType enums.PropertyType) []enums.InternalAccess {
	return enums.InternalAccessOptions(propertyType)
}
