package inline

import (
	"unsafe"

	"github.com/joshuapare/slotkit/internal/mem"
	"github.com/joshuapare/slotkit/storage"
)

// invalidIndex terminates the embedded free list.
const invalidIndex = ^uintptr(0)

// TrackingHandle identifies one slot of a Tracking storage by index, plus
// the metadata captured at allocation. The index is within bounds as an
// invariant of every valid handle.
type TrackingHandle struct {
	index uintptr
	meta  storage.Metadata
}

// Index returns the slot index, exposed for diagnostics and tests.
func (h TrackingHandle) Index() uintptr {
	return h.index
}

// Tracking is an inline storage of N equal slots managed by an embedded
// free list. A free slot stores the index of the next free slot in the same
// bytes a live value would occupy; the two interpretations never coexist.
// Allocation pops the list head and deallocation pushes back, so both are
// constant time and reuse is strictly LIFO. There is no search and no
// compaction; all slots are equal-sized, so fragmentation cannot occur.
type Tracking struct {
	shape  storage.Layout
	stride uintptr
	slots  uintptr
	next   uintptr
	buf    []byte
}

// NewTracking creates a tracking storage of slots slots, each accepting any
// layout that fits shape. All slots start on the free list.
func NewTracking(shape storage.Layout, slots int) *Tracking {
	t := &Tracking{shape: shape, slots: uintptr(slots)}
	t.initGeometry()
	t.buf = mem.AllocAligned(t.stride*t.slots, t.align())
	t.threadFreeList()
	return t
}

// NewTrackingOver lays the slot array over a caller-provided region, which
// must be large and aligned enough for slots slots of the given shape. The
// region's previous contents are overwritten by the free list links.
func NewTrackingOver(buf []byte, shape storage.Layout, slots int) (*Tracking, error) {
	t := &Tracking{shape: shape, slots: uintptr(slots)}
	t.initGeometry()
	size := t.stride * t.slots
	if len(buf) == 0 || uintptr(len(buf)) < size {
		return nil, storage.ErrAllocationFailed
	}
	if !mem.IsAligned(unsafe.Pointer(&buf[0]), t.align()) {
		return nil, storage.ErrAllocationFailed
	}
	t.buf = buf[:size:size]
	t.threadFreeList()
	return t, nil
}

// Allocate validates the layout against one slot's shape and pops the free
// list head. Fails when the shape does not fit or all slots are live.
func (t *Tracking) Allocate(layout storage.Layout, meta storage.Metadata) (TrackingHandle, error) {
	if !layout.FitsIn(t.shape) {
		return TrackingHandle{}, storage.ErrAllocationFailed
	}
	if t.next == invalidIndex {
		return TrackingHandle{}, storage.ErrAllocationFailed
	}
	index := t.next
	t.next = mem.LoadIndex(t.slot(index))
	return TrackingHandle{index: index, meta: meta}, nil
}

// Resolve returns the address of the handle's slot.
func (t *Tracking) Resolve(h TrackingHandle) unsafe.Pointer {
	return t.slot(h.index)
}

// Meta returns the metadata captured at allocation or the last Retag.
func (t *Tracking) Meta(h TrackingHandle) storage.Metadata {
	return h.meta
}

// Retag reinterprets the same slot under new metadata.
func (t *Tracking) Retag(h TrackingHandle, meta storage.Metadata) TrackingHandle {
	return TrackingHandle{index: h.index, meta: meta}
}

// Deallocate pushes the slot back onto the free list head (LIFO reuse).
func (t *Tracking) Deallocate(h TrackingHandle, layout storage.Layout) {
	mem.StoreIndex(t.slot(h.index), t.next)
	t.next = h.index
}

// FreeSlots walks the free list and returns the number of slots available
// for allocation.
func (t *Tracking) FreeSlots() int {
	n := 0
	for index := t.next; index != invalidIndex; index = mem.LoadIndex(t.slot(index)) {
		n++
	}
	return n
}

// Slots returns the fixed slot count.
func (t *Tracking) Slots() int {
	return int(t.slots)
}

// initGeometry widens the slot stride and alignment so a slot can hold
// either a value of the declared shape or a free-list index word.
func (t *Tracking) initGeometry() {
	size := t.shape.Size
	if size < mem.PtrSize {
		size = mem.PtrSize
	}
	t.stride = mem.AlignUp(size, t.align())
}

func (t *Tracking) align() uintptr {
	if t.shape.Align > mem.PtrSize {
		return t.shape.Align
	}
	return mem.PtrSize
}

// threadFreeList links every slot onto the free list, head at slot 0.
func (t *Tracking) threadFreeList() {
	t.next = invalidIndex
	for i := t.slots; i > 0; i-- {
		index := i - 1
		mem.StoreIndex(t.slot(index), t.next)
		t.next = index
	}
}

func (t *Tracking) slot(index uintptr) unsafe.Pointer {
	return unsafe.Pointer(&t.buf[index*t.stride])
}

var _ storage.ElementStorage[TrackingHandle] = (*Tracking)(nil)
