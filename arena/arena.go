// Package arena implements the bump allocator that backs every long-lived
// game allocation: tile bitmaps, level objects, undo snapshots, and the
// framebuffer. Temporaries (the blue-noise sampler's grid) borrow space
// between a watermark save and restore. There is no individual free; the
// arena lives until process exit.
//
// The arena is confined to the host goroutine. Worker callbacks must not
// allocate from it.
package arena

import (
	"fmt"
	"unsafe"
)

// Watermark records the arena's used offset so intermediate allocations can
// be released as a group.
type Watermark struct {
	used int
}

// Arena is a bump allocator over a single fixed block.
type Arena struct {
	base []byte
	used int
}

// New creates an arena over a zeroed block of the given size in bytes.
func New(size int) *Arena {
	if size <= 0 {
		panic(fmt.Sprintf("arena size must be positive, got %d", size))
	}
	return &Arena{base: make([]byte, size)}
}

// Alloc returns a zeroed, 8-byte-aligned slice of the requested size.
// Exhaustion is a programmer error: sizes are fixed at startup, so running
// out means the block was sized wrong.
func (a *Arena) Alloc(size int) []byte {
	if size < 0 {
		panic(fmt.Sprintf("arena alloc with negative size %d", size))
	}
	aligned := (size + 7) &^ 7
	if a.used+aligned > len(a.base) {
		panic(fmt.Sprintf("arena exhausted: requested %d bytes with %d remaining", size, len(a.base)-a.used))
	}
	block := a.base[a.used : a.used+size : a.used+size]
	a.used += aligned

	// Space below a restored watermark is reused, so zero on every handout.
	for i := range block {
		block[i] = 0
	}
	return block
}

// AllocUint32 returns a zeroed slice of count 32-bit words. Pixel buffers
// allocate through this so the rasterizer can address whole pixels.
func (a *Arena) AllocUint32(count int) []uint32 {
	if count == 0 {
		return nil
	}
	raw := a.Alloc(count * 4)
	return unsafe.Slice((*uint32)(unsafe.Pointer(&raw[0])), count)
}

// Mark saves the current used offset.
func (a *Arena) Mark() Watermark {
	return Watermark{used: a.used}
}

// Restore releases every allocation made since the watermark was taken.
// Restoring a mark from the future is a programmer error.
func (a *Arena) Restore(m Watermark) {
	if m.used > a.used || m.used < 0 {
		panic(fmt.Sprintf("arena restore to offset %d outside used range %d", m.used, a.used))
	}
	a.used = m.used
}

// Used reports the current bump offset in bytes.
func (a *Arena) Used() int {
	return a.used
}

// Size reports the total block size in bytes.
func (a *Arena) Size() int {
	return len(a.base)
}
