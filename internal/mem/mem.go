// Package mem provides the low-level alignment and raw-view helpers shared
// by the storage backends.
package mem

import "unsafe"

// PtrSize is the size and alignment of a slot index word, used by tracking
// storages to overlay a free-list link on unused slot bytes.
const PtrSize = unsafe.Sizeof(uintptr(0))

// AlignUp rounds n up to the next multiple of align. align must be a power
// of two.
func AlignUp(n, align uintptr) uintptr {
	mask := align - 1
	return (n + mask) &^ mask
}

// IsAligned reports whether p satisfies the given power-of-two alignment.
func IsAligned(p unsafe.Pointer, align uintptr) bool {
	return uintptr(p)&(align-1) == 0
}

// AllocAligned returns a zeroed buffer of exactly size bytes whose first
// byte satisfies align. The returned slice shares its backing array with a
// larger allocation, so it stays reachable as long as the slice does.
func AllocAligned(size, align uintptr) []byte {
	if size == 0 {
		size = 1
	}
	if align < 1 {
		align = 1
	}
	raw := make([]byte, size+align-1)
	base := uintptr(unsafe.Pointer(&raw[0]))
	off := AlignUp(base, align) - base
	return raw[off : off+size : off+size]
}

// Bytes returns a byte view of n bytes starting at p. nil when n is zero.
func Bytes(p unsafe.Pointer, n uintptr) []byte {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// Copy moves n bytes from src to dst. The regions must not overlap.
func Copy(dst, src unsafe.Pointer, n uintptr) {
	copy(Bytes(dst, n), Bytes(src, n))
}

// Zero clears n bytes starting at p.
func Zero(p unsafe.Pointer, n uintptr) {
	b := Bytes(p, n)
	for i := range b {
		b[i] = 0
	}
}

// LoadIndex reads a slot-index word from p.
func LoadIndex(p unsafe.Pointer) uintptr {
	return *(*uintptr)(p)
}

// StoreIndex writes a slot-index word to p.
func StoreIndex(p unsafe.Pointer, v uintptr) {
	*(*uintptr)(p) = v
}
