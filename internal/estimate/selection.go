// Package estimate turns a customer's item selection into the volume
// aggregates the pricing request is built from. Everything here is a
// pure function over its inputs; quantities are clamped at this
// boundary so negative or junk values never reach a pricing request.
package estimate

// ItemSelection maps item names to selected quantities. Absence or a
// zero quantity both mean "not selected".
type ItemSelection map[string]int

// ServiceFlags marks items requesting a per-item service (dismantle or
// reassemble). A flag is only meaningful while the item's quantity is
// positive.
type ServiceFlags map[string]bool

// Normalize returns a copy with quantities clamped to non-negative
// values and zero-quantity entries dropped.
func (s ItemSelection) Normalize() ItemSelection {
	normalized := make(ItemSelection, len(s))
	for name, qty := range s {
		if qty <= 0 {
			continue
		}
		normalized[name] = qty
	}
	return normalized
}

// Quantity returns the clamped quantity for an item.
func (s ItemSelection) Quantity(name string) int {
	if qty := s[name]; qty > 0 {
		return qty
	}
	return 0
}

// SyncFlags returns the flags that are still valid for the selection:
// an item keeps its flag only while its quantity is positive. Dropping
// an item implicitly clears its dismantle/reassemble requests.
func SyncFlags(selection ItemSelection, flags ServiceFlags) ServiceFlags {
	synced := make(ServiceFlags, len(flags))
	for name, flagged := range flags {
		if !flagged {
			continue
		}
		if selection.Quantity(name) > 0 {
			synced[name] = true
		}
	}
	return synced
}

// Selection bundles an item selection with its service flags and keeps
// the flag invariant as quantities change.
type Selection struct {
	Items      ItemSelection
	Dismantle  ServiceFlags
	Reassemble ServiceFlags
}

// NewSelection returns an empty, ready-to-use selection.
func NewSelection() *Selection {
	return &Selection{
		Items:      ItemSelection{},
		Dismantle:  ServiceFlags{},
		Reassemble: ServiceFlags{},
	}
}

// SetQuantity updates an item's quantity, clamping negatives to zero.
// Reducing the quantity to zero clears the item's service flags.
func (s *Selection) SetQuantity(name string, qty int) {
	if qty <= 0 {
		delete(s.Items, name)
		delete(s.Dismantle, name)
		delete(s.Reassemble, name)
		return
	}
	s.Items[name] = qty
}

// FlagDismantle requests dismantling for an item. Ignored unless the
// item has a positive quantity.
func (s *Selection) FlagDismantle(name string, flagged bool) {
	setFlag(s.Dismantle, s.Items, name, flagged)
}

// FlagReassemble requests reassembly for an item. Ignored unless the
// item has a positive quantity.
func (s *Selection) FlagReassemble(name string, flagged bool) {
	setFlag(s.Reassemble, s.Items, name, flagged)
}

func setFlag(flags ServiceFlags, items ItemSelection, name string, flagged bool) {
	if !flagged {
		delete(flags, name)
		return
	}
	if items.Quantity(name) > 0 {
		flags[name] = true
	}
}
