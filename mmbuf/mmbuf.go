// Package mmbuf provides anonymous memory-mapped byte regions, used as
// caller-provided backing buffers for the inline storages' Over
// constructors. Regions are page-aligned, zero-filled, and live outside
// the Go heap, so the garbage collector never moves or scans them. On
// platforms without mmap the region falls back to a heap allocation.
package mmbuf

// Region is one mapped region. Close releases it; a closed Region must not
// be read or written.
type Region struct {
	data  []byte
	unmap func([]byte) error
}

// Bytes returns the region's contents. The slice is invalid after Close.
func (r *Region) Bytes() []byte {
	return r.data
}

// Close unmaps the region. Closing twice is a no-op.
func (r *Region) Close() error {
	if r.data == nil {
		return nil
	}
	data := r.data
	r.data = nil
	return r.unmap(data)
}
