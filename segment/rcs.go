package segment

import (
	"github.com/bugVanisher/dvbsub/dvbdb"
	"github.com/bugVanisher/dvbsub/internal/bitio"
)

// parseRCS implements Region Composition Segment parsing, ported from
// ParserRCS.cpp: region geometry/depth/CLUT binding, then the region's
// object list.
func parseRCS(db *dvbdb.Database, r *bitio.Reader) error {
	regionID, err := r.ReadUint8()
	if err != nil {
		return err
	}
	flags1, err := r.ReadUint8()
	if err != nil {
		return err
	}
	version := (flags1 >> 4) & 0x0F
	fillFlag := (flags1>>3)&0x01 != 0

	width, err := r.ReadUint16BE()
	if err != nil {
		return err
	}
	height, err := r.ReadUint16BE()
	if err != nil {
		return err
	}

	flags2, err := r.ReadUint8()
	if err != nil {
		return err
	}
	compatLevel := (flags2 >> 5) & 0x07
	// Only 2 bits are actually needed for the three depth codes
	// (0x01/0x02/0x03), matching ParserRCS.cpp's own 0x03 mask.
	depth := dvbdb.RegionDepth((flags2 >> 2) & 0x03)

	clutID, err := r.ReadUint8()
	if err != nil {
		return err
	}
	background8Bit, err := r.ReadUint8()
	if err != nil {
		return err
	}
	if _, err := r.ReadUint8(); err != nil { // 4-bit/2-bit background pixel codes, unused: Region keeps one canonical background index
		return err
	}

	region, found := db.Regions().GetByID(regionID)
	if !found {
		var ok bool
		region, ok = db.Regions().Add(regionID)
		if !ok {
			return wrapf(ErrTooManyRegions, "region_id=%d", regionID)
		}
	}

	if !found || region.Version() != version || fillFlag {
		// A region binds to a CLUT by id alone; if no CDS has defined
		// that id yet, addRegionAndClut's original behavior is to
		// create one seeded with the default tables rather than leave
		// the region pointing at nothing.
		if _, ok := db.Cluts().GetOrAdd(clutID); !ok {
			return wrapf(ErrClutPoolExhausted, "region_id=%d clut_id=%d", regionID, clutID)
		}

		db.RemoveRegionObjects(region)
		pixmap, ok := db.AllocatePixmap(int32(width), int32(height))
		if !ok {
			return wrapf(ErrPixmapArenaExhausted, "region_id=%d %dx%d", regionID, width, height)
		}
		region.Init(version, compatLevel, depth, clutID, background8Bit, pixmap)
	} else {
		// Same version, no forced refill: skip the rest of the object
		// list, it would just redescribe what's already there.
		return nil
	}

	for r.BytesLeft() > 0 {
		objID, err := r.ReadUint16BE()
		if err != nil {
			return err
		}
		typeByte, err := r.ReadUint8()
		if err != nil {
			return err
		}
		objType := dvbdb.ObjectType((typeByte >> 6) & 0x03)
		provider := (typeByte >> 4) & 0x03

		xRaw, err := r.ReadUint16BE()
		if err != nil {
			return err
		}
		yRaw, err := r.ReadUint16BE()
		if err != nil {
			return err
		}
		x := int32(xRaw & 0x0FFF)
		y := int32(yRaw & 0x0FFF)

		if objType == dvbdb.ObjectTypeBasicCharacter || objType == dvbdb.ObjectTypeCompositeStr {
			if _, err := r.ReadUint8(); err != nil { // foreground pixel code
				return err
			}
			if _, err := r.ReadUint8(); err != nil { // background pixel code
				return err
			}
		}

		// Only basic-bitmap objects sourced from the subtitling stream
		// itself are placed; character/composite-string rendering and
		// other providers are outside this decoder's scope (spec.md §1's
		// pinned-interface Non-goal) but their framing is still consumed
		// above so the reader stays in sync.
		if objType != dvbdb.ObjectTypeBasicBitmap || provider != 0 {
			continue
		}

		if !db.AddRegionObject(region, objID, x, y) {
			logger.Warn().Msg("region object-ref budget exhausted, remaining objects dropped")
			break
		}
	}

	return nil
}
