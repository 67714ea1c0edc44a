// Package ycbcrt converts DVB subtitling YCbCrT (luminance, chrominance,
// transparency) color entries to straight (non-premultiplied) ARGB, and builds the
// three default CLUT tables (2/4/8-bit) defined by the subtitling
// standard for streams that reference a CLUT_id before defining one.
package ycbcrt

// Percentage bytes used throughout the default CLUT construction,
// named the way Clut.cpp names its percentage constants.
const (
	p100 uint8 = 0xFF
	p75  uint8 = 0xBF
	p67  uint8 = 0xAA
	p50  uint8 = 0x7F
	p33  uint8 = 0x55
	p17  uint8 = 0x2B
	p0   uint8 = 0x00
)

func clamp8(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ToARGB converts a YCbCrT entry to 8-8-8-8 ARGB. Alpha is the
// complement of transparency (A = 255 - T), matching the default
// table's own construction in Clut.cpp. The Y'CbCr -> RGB matrix is
// the standard ITU-R BT.601 full-range transform.
func ToARGB(y, cb, cr, t uint8) uint32 {
	yy := int32(y)
	cbb := int32(cb) - 128
	crr := int32(cr) - 128

	r := clamp8(yy + (91881*crr)>>16)
	g := clamp8(yy - (22554*cbb)>>16 - (46802*crr)>>16)
	b := clamp8(yy + (116130*cbb)>>16)
	a := 255 - t

	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Default2Bit returns the default 2-bit (4-entry) CLUT: entry 0 is
// fully transparent, the rest are a black/white/mid-gray ramp, built as
// a direct 4-case table the way Clut.cpp's 2-bit default is a 4-case
// switch rather than a generic loop.
func Default2Bit() [4]uint32 {
	return [4]uint32{
		ToARGB(0, 128, 128, p100),
		ToARGB(0, 128, 128, p0),
		ToARGB(p100, 128, 128, p0),
		ToARGB(p50, 128, 128, p0),
	}
}

// Default4Bit returns the default 4-bit (16-entry) CLUT. Entry 0 is
// transparent; entries 1-15 split on the top bit of the index between a
// full-intensity ramp and a half-intensity ramp, matching Clut.cpp's
// 4-bit default table construction.
func Default4Bit() [16]uint32 {
	var out [16]uint32
	out[0] = ToARGB(0, 128, 128, p100)
	for i := 1; i < 16; i++ {
		level := uint8(i & 0x7)
		var y uint8
		if i&0x8 != 0 {
			y = uint8(uint32(p100) * uint32(level) / 7)
		} else {
			y = uint8(uint32(p50) * uint32(level) / 7)
		}
		out[i] = ToARGB(y, 128, 128, p0)
	}
	return out
}

// Default8Bit returns the default 8-bit (256-entry) CLUT, built from
// the nested-conditional form in Clut.cpp: entry 0 is transparent, the
// low nibble of the index steers a chrominance offset and the high
// nibble a luminance/chrominance ramp.
func Default8Bit() [256]uint32 {
	var out [256]uint32
	out[0] = ToARGB(0, 128, 128, p100)
	for i := 1; i < 256; i++ {
		y := uint8(i)
		crOffset := int32(i%16-8) * 8
		cbOffset := int32((i/16)%16-8) * 8
		cr := clamp8(128 + crOffset)
		cb := clamp8(128 + cbOffset)
		out[i] = ToARGB(y, cb, cr, p0)
	}
	return out
}
