package segment

import (
	"github.com/bugVanisher/dvbsub/dvbdb"
	"github.com/bugVanisher/dvbsub/internal/bitio"
	"github.com/bugVanisher/dvbsub/internal/ycbcrt"
)

const (
	clutEntryFlag2Bit     = 1 << 7
	clutEntryFlag4Bit     = 1 << 6
	clutEntryFlag8Bit     = 1 << 5
	clutEntryFlagFullRange = 1 << 0
)

// parseCDS implements CLUT Definition Segment parsing, ported from
// ParserCDS.cpp: a version check against the already-defined CLUT (or a
// freshly default-seeded one), then one pass over packed entries. Each
// entry is either full-range (4 raw bytes) or packed into 2 bytes at
// Y:6/Cr:4/Cb:4/T:2 precision, scaled back up to 8 bits per channel
// before the YCbCrT->ARGB conversion.
func parseCDS(db *dvbdb.Database, r *bitio.Reader) error {
	clutID, err := r.ReadUint8()
	if err != nil {
		return err
	}
	verByte, err := r.ReadUint8()
	if err != nil {
		return err
	}
	version := (verByte >> 4) & 0x0F

	clut, ok := db.Cluts().GetOrAdd(clutID)
	if !ok {
		return wrapf(ErrClutPoolExhausted, "clut_id=%d", clutID)
	}
	if clut.Version() == version {
		return nil
	}
	clut.SetVersion(version)

	for r.BytesLeft() > 0 {
		entryID, err := r.ReadUint8()
		if err != nil {
			return err
		}
		flags, err := r.ReadUint8()
		if err != nil {
			return err
		}

		var y, cb, cr, t uint8
		if flags&clutEntryFlagFullRange != 0 {
			if y, err = r.ReadUint8(); err != nil {
				return err
			}
			if cr, err = r.ReadUint8(); err != nil {
				return err
			}
			if cb, err = r.ReadUint8(); err != nil {
				return err
			}
			if t, err = r.ReadUint8(); err != nil {
				return err
			}
		} else {
			b0, err := r.ReadUint8()
			if err != nil {
				return err
			}
			b1, err := r.ReadUint8()
			if err != nil {
				return err
			}
			y6 := b0 >> 2
			cr4 := (b0&0x03)<<2 | (b1 >> 6)
			cb4 := (b1 >> 2) & 0x0F
			t2 := b1 & 0x03

			y = y6<<2 | y6>>4
			cr = cr4<<4 | cr4
			cb = cb4<<4 | cb4
			t = t2<<6 | t2<<4 | t2<<2 | t2
		}

		argb := ycbcrt.ToARGB(y, cb, cr, t)
		if flags&clutEntryFlag2Bit != 0 {
			clut.Set2Bit(entryID, argb)
		}
		if flags&clutEntryFlag4Bit != 0 {
			clut.Set4Bit(entryID, argb)
		}
		if flags&clutEntryFlag8Bit != 0 {
			clut.Set8Bit(entryID, argb)
		}
	}

	return nil
}
