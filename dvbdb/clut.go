package dvbdb

import "github.com/bugVanisher/dvbsub/internal/ycbcrt"

// InvalidVersion marks a Region/CLUT/Display/Page as never having been
// assigned a version, so the first real version (0-15) always compares
// as different.
const InvalidVersion = 0xFF

// Clut is a color lookup table keyed by 2/4/8-bit indices, pre-seeded
// with the three default tables the subtitling standard defines for
// streams that reference a CLUT id before an explicit CDS defines it.
type Clut struct {
	id      uint8
	version uint8
	clut2   [4]uint32
	clut4   [16]uint32
	clut8   [256]uint32
}

func newClut(id uint8) *Clut {
	c := &Clut{}
	c.reset(id)
	return c
}

func (c *Clut) reset(id uint8) {
	c.id = id
	c.version = InvalidVersion
	c.clut2 = ycbcrt.Default2Bit()
	c.clut4 = ycbcrt.Default4Bit()
	c.clut8 = ycbcrt.Default8Bit()
}

// ID returns the CLUT identifier.
func (c *Clut) ID() uint8 { return c.id }

// Version returns the version signaled by the last CDS that updated
// this CLUT, or InvalidVersion if it has only ever held default entries.
func (c *Clut) Version() uint8 { return c.version }

// SetVersion records the CDS version this CLUT now reflects.
func (c *Clut) SetVersion(v uint8) { c.version = v }

// Set2Bit overwrites one entry of the 2-bit table.
func (c *Clut) Set2Bit(index uint8, argb uint32) { c.clut2[index&0x3] = argb }

// Set4Bit overwrites one entry of the 4-bit table.
func (c *Clut) Set4Bit(index uint8, argb uint32) { c.clut4[index&0xF] = argb }

// Set8Bit overwrites one entry of the 8-bit table.
func (c *Clut) Set8Bit(index uint8, argb uint32) { c.clut8[index] = argb }

// Array2Bit returns the full 2-bit table.
func (c *Clut) Array2Bit() [4]uint32 { return c.clut2 }

// Array4Bit returns the full 4-bit table.
func (c *Clut) Array4Bit() [16]uint32 { return c.clut4 }

// Array8Bit returns the full 8-bit table.
func (c *Clut) Array8Bit() [256]uint32 { return c.clut8 }

// ClutPool is a fixed-capacity keyed table of up to MaxSupportedCluts
// CLUTs, a concrete stand-in for dvbsubdecoder's
// ObjectTablePool<Clut>.
type ClutPool struct {
	cluts [MaxSupportedCluts]Clut
	used  int
}

// Reset empties the pool.
func (p *ClutPool) Reset() { p.used = 0 }

// Count returns the number of CLUTs currently defined.
func (p *ClutPool) Count() int { return p.used }

// CanAdd reports whether there's room for one more CLUT.
func (p *ClutPool) CanAdd() bool { return p.used < len(p.cluts) }

// GetOrAdd returns the CLUT with the given id, creating it (seeded with
// the default tables) if it doesn't exist yet. ok is false only if the
// pool is full and the id doesn't already exist.
func (p *ClutPool) GetOrAdd(id uint8) (*Clut, bool) {
	if c, found := p.GetByID(id); found {
		return c, true
	}
	if !p.CanAdd() {
		return nil, false
	}
	p.cluts[p.used].reset(id)
	c := &p.cluts[p.used]
	p.used++
	return c, true
}

// GetByID returns the CLUT with the given id, if defined.
func (p *ClutPool) GetByID(id uint8) (*Clut, bool) {
	for i := 0; i < p.used; i++ {
		if p.cluts[i].id == id {
			return &p.cluts[i], true
		}
	}
	return nil, false
}

// GetByIndex returns the CLUT at the given slot.
func (p *ClutPool) GetByIndex(index int) (*Clut, bool) {
	if index < 0 || index >= p.used {
		return nil, false
	}
	return &p.cluts[index], true
}
