package estimate

import "testing"

func TestComputeVolumesExampleScenario(t *testing.T) {
	selection := ItemSelection{"Single Bed": 2, "Double Bed": 1}
	volumes := ComputeVolumes(selection, nil, nil)

	if volumes.TotalVolumeM3 != 3.5 {
		t.Fatalf("total = %v, want 3.5", volumes.TotalVolumeM3)
	}
	if volumes.DismantlingVolumeM3 != 0 || volumes.ReassemblyVolumeM3 != 0 {
		t.Fatalf("unflagged selection should have zero subtotals: %+v", volumes)
	}
}

func TestComputeVolumesFlaggedSubtotals(t *testing.T) {
	selection := ItemSelection{"Single Bed": 2, "Wardrobe": 1}
	dismantle := ServiceFlags{"Wardrobe": true}
	reassemble := ServiceFlags{"Wardrobe": true, "Single Bed": true}

	volumes := ComputeVolumes(selection, dismantle, reassemble)

	if volumes.DismantlingVolumeM3 != 1.2 {
		t.Fatalf("dismantling = %v, want 1.2", volumes.DismantlingVolumeM3)
	}
	if volumes.ReassemblyVolumeM3 != 3.2 {
		t.Fatalf("reassembly = %v, want 3.2", volumes.ReassemblyVolumeM3)
	}
}

func TestComputeVolumesClampsNegativeQuantities(t *testing.T) {
	selection := ItemSelection{"Single Bed": -4, "Double Bed": 1}
	volumes := ComputeVolumes(selection, nil, nil)
	if volumes.TotalVolumeM3 != 1.5 {
		t.Fatalf("total = %v, want 1.5 (negative quantity clamped)", volumes.TotalVolumeM3)
	}
}

func TestComputeVolumesUnknownItemContributesZero(t *testing.T) {
	base := ComputeVolumes(ItemSelection{"Double Bed": 1}, nil, nil)
	withUnknown := ComputeVolumes(ItemSelection{"Double Bed": 1, "Hovercraft": 3}, nil, nil)
	if base.TotalVolumeM3 != withUnknown.TotalVolumeM3 {
		t.Fatalf("unknown item changed total: %v != %v", base.TotalVolumeM3, withUnknown.TotalVolumeM3)
	}
}

func TestComputeVolumesMonotonic(t *testing.T) {
	selection := ItemSelection{"Armchair": 1}
	before := ComputeVolumes(selection, nil, nil)

	selection["Bookcase"] = 2
	after := ComputeVolumes(selection, nil, nil)

	if after.TotalVolumeM3 < before.TotalVolumeM3 {
		t.Fatalf("adding an item decreased total: %v < %v", after.TotalVolumeM3, before.TotalVolumeM3)
	}
}

func TestFlagsClearedWhenQuantityDropsToZero(t *testing.T) {
	sel := NewSelection()
	sel.SetQuantity("Wardrobe", 2)
	sel.FlagDismantle("Wardrobe", true)

	if !sel.Dismantle["Wardrobe"] {
		t.Fatal("expected dismantle flag to stick while quantity > 0")
	}

	sel.SetQuantity("Wardrobe", 0)

	if sel.Dismantle["Wardrobe"] {
		t.Fatal("expected dismantle flag cleared when quantity dropped to 0")
	}
	if sel.Items.Quantity("Wardrobe") != 0 {
		t.Fatal("expected item removed from selection")
	}
}

func TestFlagIgnoredWithoutQuantity(t *testing.T) {
	sel := NewSelection()
	sel.FlagReassemble("Double Bed", true)
	if sel.Reassemble["Double Bed"] {
		t.Fatal("flag should be ignored for unselected item")
	}
}

func TestSyncFlagsDropsStaleEntries(t *testing.T) {
	selection := ItemSelection{"Desk": 1}
	flags := ServiceFlags{"Desk": true, "Wardrobe": true, "Sofa": false}
	synced := SyncFlags(selection, flags)
	if len(synced) != 1 || !synced["Desk"] {
		t.Fatalf("unexpected synced flags: %v", synced)
	}
}

func TestFallbackVolumeForEmptySelection(t *testing.T) {
	volumes := VolumesWithFallback(ItemSelection{}, nil, nil, "2_bed", 2, DefaultAdditionalSpaceVolumeM3)
	want := 25 + 2*float64(DefaultAdditionalSpaceVolumeM3)
	if volumes.TotalVolumeM3 != want {
		t.Fatalf("fallback total = %v, want %v", volumes.TotalVolumeM3, want)
	}
	if volumes.DismantlingVolumeM3 != 0 || volumes.ReassemblyVolumeM3 != 0 {
		t.Fatalf("fallback path should not produce flagged subtotals: %+v", volumes)
	}
}

func TestFallbackVolumeUnknownSize(t *testing.T) {
	if got := FallbackVolume("palace", 1, 200); got != 200 {
		t.Fatalf("unknown size fallback = %v, want 200 (spaces only)", got)
	}
}

func TestItemSelectionBeatsFallback(t *testing.T) {
	volumes := VolumesWithFallback(ItemSelection{"Single Bed": 1}, nil, nil, "4_bed", 3, 200)
	if volumes.TotalVolumeM3 != 1.0 {
		t.Fatalf("expected item total to win over fallback, got %v", volumes.TotalVolumeM3)
	}
}
