package kernel

// Record is the soft-delete capability shared by orders and shipments. Deleting a
// record flips its flag; the row stays in the store and default reads skip it.
type Record interface {
	Identity() ID
	IsDeleted() bool
}

// ActiveOnly returns the records whose soft-delete flag is unset, preserving order.
func ActiveOnly[T Record](records []T) []T {
	active := make([]T, 0, len(records))
	for _, r := range records {
		if !r.IsDeleted() {
			active = append(active, r)
		}
	}
	return active
}
