package dvbdb

// Pixmap is an 8-bit indexed bitmap backed by a slice carved out of a
// PixmapAllocator arena. It never reallocates: Database.EpochReset reclaims
// the whole arena at epoch start and each Pixmap is a fixed-size window into
// it for the epoch's lifetime.
type Pixmap struct {
	width, height int32
	data          []byte
}

// Width returns the pixmap width in pixels.
func (p *Pixmap) Width() int32 { return p.width }

// Height returns the pixmap height in pixels.
func (p *Pixmap) Height() int32 { return p.height }

// Data returns the backing index buffer, row-major, one byte per pixel.
func (p *Pixmap) Data() []byte { return p.data }

// Fill sets every pixel to the given CLUT index.
func (p *Pixmap) Fill(index byte) {
	for i := range p.data {
		p.data[i] = index
	}
}

// Set writes one pixel's CLUT index.
func (p *Pixmap) Set(x, y int32, index byte) {
	p.data[y*p.width+x] = index
}

// At reads one pixel's CLUT index.
func (p *Pixmap) At(x, y int32) byte {
	return p.data[y*p.width+x]
}

// PixmapAllocator is a bump allocator over one fixed-size byte arena,
// reset in a single O(1) operation at the start of each epoch rather
// than freeing pixmaps individually — dvbsubdecoder's PixmapAllocator
// and Allocator were not present in the retrieval pack; this is
// authored fresh per DESIGN.md, matching the "fixed memory, no growth"
// invariant spec.md calls out for the object-bitmap/pixmap storage.
type PixmapAllocator struct {
	arena []byte
	used  int
}

// NewPixmapAllocator allocates the arena once, at construction.
func NewPixmapAllocator(size int) *PixmapAllocator {
	return &PixmapAllocator{arena: make([]byte, size)}
}

// Reset reclaims the whole arena.
func (a *PixmapAllocator) Reset() { a.used = 0 }

// Allocate carves out a width*height window of the arena. ok is false
// if the arena doesn't have enough room left this epoch.
func (a *PixmapAllocator) Allocate(width, height int32) (*Pixmap, bool) {
	n := int(width) * int(height)
	if n < 0 || a.used+n > len(a.arena) {
		return nil, false
	}
	buf := a.arena[a.used : a.used+n]
	a.used += n
	return &Pixmap{width: width, height: height, data: buf}, true
}
