// Package catalog holds the static inventory reference table: every
// item a customer can add to a move, its display category, and its
// average packed volume in cubic meters. The table is compiled in and
// never mutated at runtime.
package catalog

import "sort"

// InventoryItem is one entry in the reference table.
type InventoryItem struct {
	ItemName        string  `json:"item_name"`
	Category        string  `json:"category"`
	AverageVolumeM3 float64 `json:"average_volume_m3"`
}

var volumeByName = buildIndex()

func buildIndex() map[string]float64 {
	index := make(map[string]float64, len(items))
	for _, item := range items {
		index[item.ItemName] = item.AverageVolumeM3
	}
	return index
}

// LookupVolume returns the average unit volume for an item name.
// Unknown items contribute zero volume rather than failing the
// estimate, so this never errors.
func LookupVolume(itemName string) float64 {
	return volumeByName[itemName]
}

// Contains reports whether the item name exists in the catalog.
func Contains(itemName string) bool {
	_, ok := volumeByName[itemName]
	return ok
}

// ItemsByCategory groups the catalog for presentation, with items
// sorted by name inside each category.
func ItemsByCategory() map[string][]InventoryItem {
	grouped := map[string][]InventoryItem{}
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	for _, list := range grouped {
		sort.Slice(list, func(i, j int) bool {
			return list[i].ItemName < list[j].ItemName
		})
	}
	return grouped
}

// Categories returns the category names in display order.
func Categories() []string {
	seen := map[string]struct{}{}
	var names []string
	for _, item := range items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		names = append(names, item.Category)
	}
	return names
}
