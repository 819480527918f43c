package contextmenu

// Registry holds the menu items of one grid in display order.
type Registry struct {
	grid  Grid
	items []*Item
}

// NewRegistry returns an empty registry bound to g.
func NewRegistry(g Grid) *Registry {
	return &Registry{grid: g}
}

// Add appends item unless it is already registered. Missing Shown and Active
// predicates are filled with Always.
func (r *Registry) Add(item *Item) {
	if item == nil || r.indexOf(item) >= 0 {
		return
	}
	if item.Shown == nil {
		item.Shown = Always
	}
	if item.Active == nil {
		item.Active = Always
	}
	r.items = append(r.items, item)
}

// AddAll adds items in order.
func (r *Registry) AddAll(items []*Item) {
	for _, item := range items {
		r.Add(item)
	}
}

// Remove drops item if present.
func (r *Registry) Remove(item *Item) {
	idx := r.indexOf(item)
	if idx < 0 {
		return
	}
	r.items = append(r.items[:idx], r.items[idx+1:]...)
}

// RemoveAll clears the registry.
func (r *Registry) RemoveAll() {
	r.items = r.items[:0]
}

// List returns the registered items in display order. The slice is shared
// with the registry and must not be modified.
func (r *Registry) List() []*Item {
	return r.items
}

// Len reports the number of registered items.
func (r *Registry) Len() int {
	return len(r.items)
}

// HasVisibleItemsFor reports whether at least one item is shown for the cell.
func (r *Registry) HasVisibleItemsFor(col Column, row Row) bool {
	for _, item := range r.items {
		if item.Shown(r.grid, col, row) {
			return true
		}
	}
	return false
}

func (r *Registry) indexOf(item *Item) int {
	if item == nil {
		return -1
	}
	for i, existing := range r.items {
		if existing == item {
			return i
		}
	}
	return -1
}
