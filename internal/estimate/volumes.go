package estimate

import (
	"math"

	"github.com/shiftsorted/shiftsorted-backend/internal/catalog"
)

// DefaultAdditionalSpaceVolumeM3 is the volume attributed to each
// additional space (loft, garage, ...) when no item inventory exists.
// Policy constant, overridable through pricing config.
const DefaultAdditionalSpaceVolumeM3 = 200

// Volumes aggregates the cubic meters a selection amounts to, plus the
// subsets flagged for dismantling and reassembly.
type Volumes struct {
	TotalVolumeM3       float64 `json:"total_volume_m3"`
	DismantlingVolumeM3 float64 `json:"dismantling_volume_m3"`
	ReassemblyVolumeM3  float64 `json:"reassembly_volume_m3"`
}

// IsZero reports whether no volume was accumulated.
func (v Volumes) IsZero() bool {
	return v.TotalVolumeM3 == 0 && v.DismantlingVolumeM3 == 0 && v.ReassemblyVolumeM3 == 0
}

// ComputeVolumes sums catalog volumes for every selected item. Items
// missing from the catalog contribute zero. Flags only count while the
// item's quantity is positive. All sums are rounded to 2 decimals.
func ComputeVolumes(selection ItemSelection, dismantle, reassemble ServiceFlags) Volumes {
	normalized := selection.Normalize()
	dismantle = SyncFlags(normalized, dismantle)
	reassemble = SyncFlags(normalized, reassemble)

	var volumes Volumes
	for name, qty := range normalized {
		contribution := float64(qty) * catalog.LookupVolume(name)
		volumes.TotalVolumeM3 += contribution
		if dismantle[name] {
			volumes.DismantlingVolumeM3 += contribution
		}
		if reassemble[name] {
			volumes.ReassemblyVolumeM3 += contribution
		}
	}

	volumes.TotalVolumeM3 = round2(volumes.TotalVolumeM3)
	volumes.DismantlingVolumeM3 = round2(volumes.DismantlingVolumeM3)
	volumes.ReassemblyVolumeM3 = round2(volumes.ReassemblyVolumeM3)
	return volumes
}

// Size-based totals used when the customer skips the item inventory.
var fallbackBySize = map[string]float64{
	"studio":     10,
	"1_bed":      15,
	"2_bed":      25,
	"3_bed":      35,
	"4_bed":      45,
	"5_bed_plus": 55,

	"1_10_workstations":  12,
	"11_25_workstations": 30,
	"26_50_workstations": 55,
	"50_plus":            80,

	"a_few_items": 5,
}

// FallbackVolume estimates total volume from the property size alone,
// adding perSpaceM3 for each additional space. Unknown sizes estimate
// to zero plus the additional-space contribution.
func FallbackVolume(propertySize string, additionalSpaces int, perSpaceM3 float64) float64 {
	if perSpaceM3 < 0 {
		perSpaceM3 = 0
	}
	if additionalSpaces < 0 {
		additionalSpaces = 0
	}
	return round2(fallbackBySize[propertySize] + float64(additionalSpaces)*perSpaceM3)
}

// VolumesWithFallback computes item volumes and, when the selection
// contributes nothing, substitutes the size-based estimate for the
// total. Flagged subtotals stay zero on the fallback path since there
// are no items to dismantle.
func VolumesWithFallback(selection ItemSelection, dismantle, reassemble ServiceFlags, propertySize string, additionalSpaces int, perSpaceM3 float64) Volumes {
	volumes := ComputeVolumes(selection, dismantle, reassemble)
	if volumes.TotalVolumeM3 > 0 {
		return volumes
	}
	volumes.TotalVolumeM3 = FallbackVolume(propertySize, additionalSpaces, perSpaceM3)
	return volumes
}

func round2(value float64) float64 {
	if math.IsNaN(value) || value < 0 {
		return 0
	}
	return math.Round(value*100) / 100
}
