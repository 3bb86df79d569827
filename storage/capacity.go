package storage

// Capacity constrains the integer kinds a RangeStorage may count elements
// with. Backends legitimately differ in width: an inline range of a dozen
// slots needs no more than a uint8, while an allocator-backed range counts
// in uintptr. Composites convert between widths through the universal
// uintptr size, checking for overflow.
type Capacity interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// MaxCapacity returns the largest value representable by the capacity type.
func MaxCapacity[C Capacity]() C {
	return ^C(0)
}

// CapacityToSize converts a capacity to the universal size type.
func CapacityToSize[C Capacity](c C) uintptr {
	return uintptr(c)
}

// CapacityFromSize converts a universal size to a capacity, reporting
// whether the value is representable without truncation.
func CapacityFromSize[C Capacity](n uintptr) (C, bool) {
	if n > uintptr(MaxCapacity[C]()) {
		return 0, false
	}
	return C(n), true
}
