package arena

import (
	"unsafe"

	"github.com/joshuapare/slotkit/internal/mem"
	"github.com/joshuapare/slotkit/storage"
)

// DefaultChunkSize is the size of chunks allocated when no explicit size is
// given. Requests larger than the chunk size get a dedicated chunk.
const DefaultChunkSize = 64 << 10

// Arena is a chunked bump allocator. The zero value is not usable; create
// arenas with New or NewWithChunkSize.
//
// Arena is not safe for concurrent use.
type Arena struct {
	chunkSize uintptr
	chunks    [][]byte
	// bump state of the current (last) chunk
	off uintptr
	// tail of the most recent allocation, for in-place growth and LIFO
	// reclamation; nil when the last operation was not an allocation
	last     unsafe.Pointer
	lastSize uintptr

	metrics Metrics
}

// Metrics is a point-in-time snapshot of the arena's accounting.
type Metrics struct {
	Chunks         int
	Allocations    uint64
	InPlaceGrows   uint64
	BytesRequested uintptr
	BytesReserved  uintptr
}

// New creates an arena with the default chunk size.
func New() *Arena {
	return NewWithChunkSize(DefaultChunkSize)
}

// NewWithChunkSize creates an arena whose chunks hold at least size bytes.
func NewWithChunkSize(size uintptr) *Arena {
	if size == 0 {
		size = DefaultChunkSize
	}
	return &Arena{chunkSize: size}
}

// Metrics returns a snapshot of the arena's accounting counters.
func (a *Arena) Metrics() Metrics {
	m := a.metrics
	m.Chunks = len(a.chunks)
	return m
}

// Reset discards every allocation but keeps the first chunk for reuse.
func (a *Arena) Reset() {
	if len(a.chunks) > 1 {
		a.chunks = a.chunks[:1]
	}
	a.off = 0
	a.last = nil
	a.lastSize = 0
}

// Allocate bumps the current chunk's offset, appending a chunk when the
// request does not fit. The returned memory is zeroed.
func (a *Arena) Allocate(layout storage.Layout) (unsafe.Pointer, error) {
	size := layout.Size
	if size == 0 {
		size = 1
	}
	p := a.bump(size, layout.Align)
	mem.Zero(p, size)
	a.last = p
	a.lastSize = size
	a.metrics.Allocations++
	a.metrics.BytesRequested += size
	return p, nil
}

// Grow extends the buffer to the new layout. A buffer at the bump tail
// grows in place; any other buffer is reallocated and its contents copied.
func (a *Arena) Grow(ptr unsafe.Pointer, old, new storage.Layout) (unsafe.Pointer, error) {
	if new.Size < old.Size {
		return nil, storage.ErrAllocationFailed
	}
	if ptr == a.last && a.growInPlace(new.Size) {
		a.metrics.InPlaceGrows++
		a.metrics.BytesRequested += new.Size - old.Size
		return ptr, nil
	}
	next, err := a.Allocate(new)
	if err != nil {
		return nil, err
	}
	mem.Copy(next, ptr, old.Size)
	return next, nil
}

// Shrink narrows the buffer in place. Arena memory is only reclaimed by
// Reset, so the pointer is returned unchanged and the trailing bytes are
// simply abandoned, except at the bump tail where the offset retracts.
func (a *Arena) Shrink(ptr unsafe.Pointer, old, new storage.Layout) (unsafe.Pointer, error) {
	if new.Size > old.Size {
		return nil, storage.ErrAllocationFailed
	}
	if ptr == a.last {
		a.off -= a.lastSize - new.Size
		a.lastSize = new.Size
	}
	return ptr, nil
}

// Deallocate reclaims only the most recent allocation; everything else is
// abandoned until Reset.
func (a *Arena) Deallocate(ptr unsafe.Pointer, layout storage.Layout) {
	if ptr == a.last {
		a.off -= a.lastSize
		a.last = nil
		a.lastSize = 0
	}
}

// bump carves an aligned block of size bytes out of the current chunk,
// appending a chunk sized max(chunkSize, size+align) when it does not fit.
func (a *Arena) bump(size, align uintptr) unsafe.Pointer {
	if align == 0 {
		align = 1
	}
	if len(a.chunks) > 0 {
		chunk := a.chunks[len(a.chunks)-1]
		base := uintptr(unsafe.Pointer(&chunk[0]))
		off := mem.AlignUp(base+a.off, align) - base
		if off+size <= uintptr(len(chunk)) {
			a.off = off + size
			return unsafe.Pointer(&chunk[off])
		}
	}
	chunkSize := a.chunkSize
	if size+align > chunkSize {
		chunkSize = size + align
	}
	chunk := make([]byte, chunkSize)
	a.chunks = append(a.chunks, chunk)
	a.metrics.BytesReserved += chunkSize
	base := uintptr(unsafe.Pointer(&chunk[0]))
	off := mem.AlignUp(base, align) - base
	a.off = off + size
	return unsafe.Pointer(&chunk[off])
}

// growInPlace extends the tail allocation to newSize within the current
// chunk, reporting false when the chunk has no room.
func (a *Arena) growInPlace(newSize uintptr) bool {
	chunk := a.chunks[len(a.chunks)-1]
	base := uintptr(unsafe.Pointer(&chunk[0]))
	start := uintptr(a.last) - base
	if start+newSize > uintptr(len(chunk)) {
		return false
	}
	grown := newSize - a.lastSize
	mem.Zero(unsafe.Pointer(&chunk[start+a.lastSize]), grown)
	a.off = start + newSize
	a.lastSize = newSize
	return true
}

var _ storage.Allocator = (*Arena)(nil)
