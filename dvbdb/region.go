package dvbdb

// ObjectRef associates one object (by id) with its drawing position
// within a region. dvbsubdecoder links these as an intrusive free list
// allocated from a shared 256-slot ObjectPool; here each Region simply
// owns a slice of its own ObjectRefs and Database tracks the shared
// 256-slot budget as a plain counter (DESIGN.md's redesign note).
type ObjectRef struct {
	ObjectID uint16
	PosX     int32
	PosY     int32
}

// Region is one composition region: a CLUT-indexed pixmap plus the
// object refs painted into it.
type Region struct {
	id                  uint8
	version             uint8
	compatibilityLevel  uint8
	depth               RegionDepth
	clutID              uint8
	backgroundIndex     uint8
	pixmap              *Pixmap
	objectRefs          []ObjectRef
}

func (r *Region) reset(id uint8) {
	r.id = id
	r.version = InvalidVersion
	r.compatibilityLevel = 0
	r.depth = 0
	r.clutID = 0
	r.backgroundIndex = 0
	r.pixmap = nil
	r.objectRefs = r.objectRefs[:0]
}

// ID returns the region identifier.
func (r *Region) ID() uint8 { return r.id }

// Version returns the version of the last RCS that (re)defined this
// region, or InvalidVersion.
func (r *Region) Version() uint8 { return r.version }

// Init (re)configures a region from a Region Composition Segment entry.
// RCS parsing calls it when the region is new, its version changed, or
// the fill flag is set; pixmap comes
// from the caller (the database owns the pixmap arena).
func (r *Region) Init(version, compatibilityLevel uint8, depth RegionDepth, clutID, backgroundIndex uint8, pixmap *Pixmap) {
	r.version = version
	r.compatibilityLevel = compatibilityLevel
	r.depth = depth
	r.clutID = clutID
	r.backgroundIndex = backgroundIndex
	r.pixmap = pixmap
	r.objectRefs = r.objectRefs[:0]
	if pixmap != nil {
		pixmap.Fill(backgroundIndex)
	}
}

// CompatibilityLevel returns the region's signaled compatibility level.
func (r *Region) CompatibilityLevel() uint8 { return r.compatibilityLevel }

// Depth returns the region's pixel depth.
func (r *Region) Depth() RegionDepth { return r.depth }

// ClutID returns the id of the CLUT this region's pixels index into.
func (r *Region) ClutID() uint8 { return r.clutID }

// BackgroundIndex returns the CLUT index used to fill the region when
// (re)initialized.
func (r *Region) BackgroundIndex() uint8 { return r.backgroundIndex }

// Pixmap returns the region's backing pixmap.
func (r *Region) Pixmap() *Pixmap { return r.pixmap }

// Width returns the region's pixel width, 0 if no pixmap is attached.
func (r *Region) Width() int32 {
	if r.pixmap == nil {
		return 0
	}
	return r.pixmap.Width()
}

// Height returns the region's pixel height, 0 if no pixmap is attached.
func (r *Region) Height() int32 {
	if r.pixmap == nil {
		return 0
	}
	return r.pixmap.Height()
}

// ObjectRefs returns the region's object list, in the order objects
// were added by RCS parsing.
func (r *Region) ObjectRefs() []ObjectRef { return r.objectRefs }

// RegionPool is a fixed-capacity keyed table of up to
// MaxSupportedRegions regions, a concrete stand-in for
// dvbsubdecoder's ObjectTablePool<Region>.
type RegionPool struct {
	regions [MaxSupportedRegions]Region
	used    int
}

// Reset empties the pool.
func (p *RegionPool) Reset() {
	for i := range p.regions {
		p.regions[i] = Region{}
	}
	p.used = 0
}

// Count returns the number of regions currently defined.
func (p *RegionPool) Count() int { return p.used }

// CanAdd reports whether there's room for one more region.
func (p *RegionPool) CanAdd() bool { return p.used < len(p.regions) }

// Add allocates a fresh region with the given id. ok is false if the
// pool is already full.
func (p *RegionPool) Add(id uint8) (*Region, bool) {
	if !p.CanAdd() {
		return nil, false
	}
	p.regions[p.used].reset(id)
	r := &p.regions[p.used]
	p.used++
	return r, true
}

// GetByID returns the region with the given id, if defined.
func (p *RegionPool) GetByID(id uint8) (*Region, bool) {
	for i := 0; i < p.used; i++ {
		if p.regions[i].id == id {
			return &p.regions[i], true
		}
	}
	return nil, false
}

// GetByIndex returns the region at the given slot.
func (p *RegionPool) GetByIndex(index int) (*Region, bool) {
	if index < 0 || index >= p.used {
		return nil, false
	}
	return &p.regions[index], true
}
